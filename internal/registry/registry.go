// Package registry is the games index. Games register themselves in init()
// functions so frontends can list and instantiate them without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/anago-arcade/anago/internal/core"
)

// Game is implemented by every arcade game. Games are pure logic; the
// frontend owns timing, device input and the concrete canvas.
type Game interface {
	// ID returns a unique identifier (e.g. "snake"), used by the CLI and
	// score storage.
	ID() string

	// Title returns the display name (e.g. "Anago Snake").
	Title() string

	// Subtitle returns the one-line blurb shown in the games index.
	Subtitle() string

	// Size returns the logical surface size in pixels.
	Size() (w, h int)

	// Reset mounts a fresh session: state Ready, score and best at zero.
	Reset(cfg core.RuntimeConfig)

	// Update applies the latched input and advances the world by dt.
	// Entities only move while the session is Playing.
	Update(dt time.Duration, in core.InputFrame) core.StepResult

	// Draw repaints the whole scene. It must not mutate game state.
	Draw(dst core.Canvas, now time.Duration)

	// State returns lifecycle, score and best.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Subtitle string
	W, H     int
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("registry: unknown game")

// lobbyOrder is the order of the games index; unknown IDs follow by ID.
var lobbyOrder = []string{"flappy", "snake", "invaders", "breakout", "bomber"}

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	w, h := g.Size()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Subtitle: g.Subtitle(), W: w, H: h}
}

func rank(id string) int {
	for i, known := range lobbyOrder {
		if known == id {
			return i
		}
	}
	return len(lobbyOrder)
}

// List returns all registered games in games-index order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		ri, rj := rank(result[i].ID), rank(result[j].ID)
		if ri != rj {
			return ri < rj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
