package settings_test

import (
	"testing"

	"voxelcull/internal/settings"
)

func TestMemStore(t *testing.T) {
	s := settings.NewMemStore()

	got, err := s.Get("missing")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("unset key = %q, want empty", got)
	}

	if err := s.Set("render.profile", "high"); err != nil {
		t.Fatal(err)
	}
	got, err = s.Get("render.profile")
	if err != nil {
		t.Fatal(err)
	}
	if got != "high" {
		t.Errorf("Get = %q, want high", got)
	}

	if err := s.Set("render.profile", "low"); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get("render.profile")
	if got != "low" {
		t.Errorf("overwrite lost: got %q", got)
	}
}

func TestBadgerStorePersists(t *testing.T) {
	dir := t.TempDir()

	s, err := settings.OpenBadger(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("render.profile", "ultra"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen and read the value back.
	s, err = settings.OpenBadger(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.Get("render.profile")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ultra" {
		t.Errorf("reopened Get = %q, want ultra", got)
	}

	got, err = s.Get("never.set")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("unset key = %q, want empty", got)
	}
}
