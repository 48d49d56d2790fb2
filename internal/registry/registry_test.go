package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/catzzz/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                                      { return s.id }
func (s stubGame) Title() string                                   { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)                        {}
func (s stubGame) Step(time.Time, core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Canvas)                             {}
func (s stubGame) HUD() string                                     { return "" }
func (s stubGame) State() core.GameState                           { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered stubs should exist")
	}
	if Exists("stub-missing") {
		t.Error("unregistered ID should not exist")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create of an unknown ID should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-list-z", func() Game { return stubGame{id: "stub-list-z"} })
	Register("stub-list-y", func() Game { return stubGame{id: "stub-list-y"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-list-y" {
			found = true
			if info.Title != "Stub stub-list-y" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("stub-list-y missing from List")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}
