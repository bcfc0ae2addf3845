package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Subtitle() string { return "for tests" }
func (g stubGame) Size() (int, int) { return 320, 320 }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Update(time.Duration, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Draw(core.Canvas, time.Duration) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegistryOrderAndCreate(t *testing.T) {
	for _, id := range []string{"zz-extra", "bomber", "flappy", "snake"} {
		id := id
		Register(id, func() Game { return stubGame{id: id} })
	}

	list := List()
	var order []string
	for _, info := range list {
		order = append(order, info.ID)
	}
	expected := []string{"flappy", "snake", "bomber", "zz-extra"}
	if len(order) != len(expected) {
		t.Fatalf("List() = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}

	info, ok := Info("snake")
	if !ok || info.Title != "Stub snake" || info.W != 320 {
		t.Errorf("Info(snake) = %+v, %v", info, ok)
	}

	if _, err := Create("nope"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(nope) error = %v, expected ErrUnknownGame", err)
	}
	if g, err := Create("bomber"); err != nil || g.ID() != "bomber" {
		t.Errorf("Create(bomber) = %v, %v", g, err)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("snake", func() Game { return stubGame{id: "snake"} })
}
