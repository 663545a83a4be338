package registry

import (
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                             { return g.id }
func (g *stubGame) Title() string                          { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)               {}
func (g *stubGame) Step(core.InputFrame) core.StepResult   { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                    {}
func (g *stubGame) State() core.GameState                  { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || !Exists("stub_b") {
		t.Fatal("Registered games should exist")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q, want stub_a", g.ID())
	}

	list := List()
	if len(list) != 2 || list[0].ID != "stub_a" || list[1].Title != "Stub stub_b" {
		t.Errorf("List = %+v, want sorted stubs with titles", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("Expected error for unknown game")
	}
	if Exists("missing") {
		t.Error("Exists should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
