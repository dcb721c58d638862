// Package registry provides a global registry for simulation scenarios.
// Scenarios register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-thrust/internal/config"
	"github.com/vovakirdan/tui-thrust/internal/core"
)

// Simulation is the interface every scenario implements.
// Simulations contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Simulation interface {
	// ID returns the scenario identifier (e.g., "barrier").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds (or rebuilds) the physics scene.
	// An error means the scene configuration is unusable.
	Reset(cfg core.RuntimeConfig) error

	// Step consumes one frame of input and advances the world unless paused.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current scene into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current simulation status.
	State() core.SimState
}

// Info contains metadata about a registered scenario.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a simulation for the given scene configuration.
type Factory func(scene config.SceneConfig) Simulation

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Typically called from an init() function.
// Panics if a scenario with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
// Returns an error if the ID is not registered.
func Create(id string, scene config.SceneConfig) (Simulation, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scenario %q", id)
	}

	return f(scene), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
