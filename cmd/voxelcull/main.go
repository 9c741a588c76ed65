package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"voxelcull/internal/metrics"
	"voxelcull/internal/render"
	"voxelcull/internal/scene"
	"voxelcull/internal/settings"
	"voxelcull/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xlab/closer"
)

const (
	winWidth  = 900
	winHeight = 600

	worldSeed   = 1337
	worldRadius = 8 // chunks generated around the origin

	metricsAddr = ":9091"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	if err := gl.Init(); err != nil {
		panic(err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	graph, err := scene.NewGLGraph()
	if err != nil {
		panic(err)
	}

	store := openSettings()

	camera := render.NewFlyCamera(winWidth, winHeight)
	camera.Position = mgl32.Vec3{8, 48, 8}
	camera.Yaw = 45

	blocks := buildWorld(graph)

	manager := render.NewManager(camera, graph, store)
	loadExtraProfiles(manager)

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	go serveMetrics()

	loop := newLoop(window, camera, manager, graph, blocks, collector)
	loop.run()

	closer.Close()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winWidth, winHeight, "voxelcull", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

// openSettings opens the persistent settings store, falling back to an
// in-memory one when the cache directory is unusable.
func openSettings() settings.Store {
	dir, err := os.UserCacheDir()
	if err == nil {
		bs, berr := settings.OpenBadger(filepath.Join(dir, "voxelcull", "settings"))
		if berr == nil {
			closer.Bind(func() {
				if cerr := bs.Close(); cerr != nil {
					log.Printf("close settings store: %v", cerr)
				}
			})
			return bs
		}
		err = berr
	}
	log.Printf("settings store unavailable, using memory: %v", err)
	return settings.NewMemStore()
}

// buildWorld generates perlin terrain and registers scene handles for every
// materialized block. Surface blocks also get a billboard for the far tier.
func buildWorld(graph *scene.GLGraph) *world.BlockStore {
	store := world.NewBlockStore()
	gen := world.NewTerrainGenerator(worldSeed)
	if err := gen.Populate(store, world.ChunkCoord{}, worldRadius); err != nil {
		panic(err)
	}

	store.Range(func(pos world.BlockCoord, e *world.BlockEntry) bool {
		p := mgl32.Vec3{float32(pos.X), float32(pos.Y), float32(pos.Z)}
		e.Mesh = graph.AddMesh(p)
		if pos.Y == gen.HeightAt(pos.X, pos.Z) {
			e.Billboard = graph.AddBillboard(p)
		}
		return true
	})

	log.Printf("world ready: %d blocks", store.Len())
	return store
}

// loadExtraProfiles registers presets from profiles.yaml next to the
// binary, when present. Malformed files fail soft.
func loadExtraProfiles(m *render.Manager) {
	extra, err := render.LoadProfilesFile("profiles.yaml")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("extra profiles skipped: %v", err)
		}
		return
	}
	for _, p := range extra {
		m.RegisterProfile(p)
	}
	log.Printf("loaded %d extra profiles", len(extra))
}

func serveMetrics() {
	http.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(metricsAddr, nil); err != nil {
		log.Printf("metrics server: %v", err)
	}
}
