// Package registry provides a global registry for game frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/session"
)

// Env carries everything a frontend needs to run a session.
type Env struct {
	Config config.Config
	Seed   int64            // 0 = time-based
	Store  session.RunSaver // nil disables score saving
	Logger *log.Logger
	// LogToFile is set when the logger writes to a file rather than stderr.
	LogToFile bool
}

// Frontend presents the game on one kind of display.
type Frontend interface {
	// ID returns a unique identifier for this frontend (e.g., "window", "tui").
	// Used for the --frontend flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, env Env) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// Returns an error if the frontend ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
