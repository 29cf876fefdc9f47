package ports

import "github.com/aretw0/recipebook/pkg/domain"

// Registry defines the recipe lookup table consumed by builders and adapters.
type Registry interface {
	// Add validates and stores a recipe. Returns false, leaving the registry
	// untouched, when the recipe is invalid.
	Add(recipe domain.Recipe) bool

	// Lookup returns the recipe stored under name, or ok == false.
	Lookup(name string) (domain.Recipe, bool)

	// For is Lookup for dynamically typed keys.
	// Returns domain.ErrInvalidArgument if key is not a string.
	For(key any) (domain.Recipe, bool, error)

	// Clear removes every recipe.
	Clear()

	// Names lists the registered names in sorted order.
	Names() []string
}
