package registry

import (
	"testing"

	"github.com/vovakirdan/stroids/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}
	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List did not include stub_a")
	}
}

type describedGame struct{ stubGame }

func (d *describedGame) Description() string { return "spawns anywhere" }

func TestRegisterCapturesDescription(t *testing.T) {
	Register("stub_described", func() Game { return &describedGame{stubGame{id: "stub_described"}} })

	info, ok := Info("stub_described")
	if !ok {
		t.Fatal("Info should find stub_described")
	}
	if info.Description != "spawns anywhere" || info.Title != "Stub stub_described" {
		t.Errorf("Info = %+v", info)
	}

	Register("stub_plain", func() Game { return &stubGame{id: "stub_plain"} })
	plain, _ := Info("stub_plain")
	if plain.Description != "" {
		t.Errorf("game without Describer got description %q", plain.Description)
	}
	if _, ok := Info("no_such_game"); ok {
		t.Error("Info reported an unknown game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
