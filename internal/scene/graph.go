// Package scene defines the scene-graph surface the culling system talks to
// and provides an OpenGL draw-list implementation of it.
package scene

// Handle identifies a renderable registered with a Graph. The zero handle
// means "absent".
type Handle uint64

// Graph is the host that accepts and rejects renderables. Attach and Detach
// are idempotent; attaching an unknown handle is a no-op.
type Graph interface {
	Attach(h Handle)
	Detach(h Handle)
}
