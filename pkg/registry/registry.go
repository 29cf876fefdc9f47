package registry

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/recipebook/pkg/domain"
)

// Registry maps recipe names to recipes.
// Entries enter only through Add and leave only through Clear.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	recipes map[string]domain.Recipe
	hooks   Hooks
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithHooks registers observability callbacks.
func WithHooks(hooks Hooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// WithLogger sets the structured logger used for rejections.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a new empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		recipes: make(map[string]domain.Recipe),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsValid reports whether a recipe may be registered.
func IsValid(recipe domain.Recipe) bool {
	return domain.Validate(recipe) == nil
}

// Add registers a valid recipe under its name, replacing any previous entry.
// Invalid recipes are refused and leave the registry unchanged.
func (r *Registry) Add(recipe domain.Recipe) bool {
	if err := domain.Validate(recipe); err != nil {
		r.logger.Warn("recipe rejected", "recipe", recipe.Name(), "error", err)
		r.hooks.reject(recipe, err)
		return false
	}

	r.mu.Lock()
	_, replaced := r.recipes[recipe.Name()]
	r.recipes[recipe.Name()] = recipe
	size := len(r.recipes)
	r.mu.Unlock()

	r.logger.Debug("recipe added", "recipe", recipe.Name(), "replaced", replaced)
	r.hooks.add(recipe, replaced, size)
	return true
}

// Lookup returns the recipe registered under name.
// A missing name is reported through ok, never as an error.
func (r *Registry) Lookup(name string) (domain.Recipe, bool) {
	r.mu.RLock()
	recipe, ok := r.recipes[name]
	r.mu.RUnlock()

	r.hooks.lookup(name, ok)
	return recipe, ok
}

// For looks up a recipe by a dynamically typed key, as found in decoded
// documents or request payloads. Keys that are not strings fail with
// domain.ErrInvalidArgument.
func (r *Registry) For(key any) (domain.Recipe, bool, error) {
	name, ok := key.(string)
	if !ok {
		return domain.Recipe{}, false, fmt.Errorf("%w: expected recipe name to be a string, got %T", domain.ErrInvalidArgument, key)
	}
	recipe, found := r.Lookup(name)
	return recipe, found, nil
}

// Clear removes every registered recipe.
func (r *Registry) Clear() {
	r.mu.Lock()
	removed := len(r.recipes)
	clear(r.recipes)
	r.mu.Unlock()

	r.logger.Debug("registry cleared", "removed", removed)
	r.hooks.clear(removed)
}

// Names returns the registered recipe names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.recipes))
	for name := range r.recipes {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered recipes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recipes)
}
