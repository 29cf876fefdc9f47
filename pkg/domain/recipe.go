package domain

import "slices"

// Recipe is an immutable recipe definition.
// The zero value is an empty (and therefore invalid) recipe.
type Recipe struct {
	name        string
	ingredients []string
	methodSteps []string
}

// NewRecipe builds a Recipe from the given values without validating them.
// Blank names and empty lists are accepted here; validity is checked on registration.
func NewRecipe(name string, ingredients, methodSteps []string) Recipe {
	return Recipe{
		name:        name,
		ingredients: slices.Clone(ingredients),
		methodSteps: slices.Clone(methodSteps),
	}
}

// Name returns the recipe name.
func (r Recipe) Name() string {
	return r.name
}

// Ingredients returns a copy of the ingredient list in insertion order.
func (r Recipe) Ingredients() []string {
	return slices.Clone(r.ingredients)
}

// MethodSteps returns a copy of the method steps in insertion order.
func (r Recipe) MethodSteps() []string {
	return slices.Clone(r.methodSteps)
}

// Equal reports whether two recipes carry the same name, ingredients and steps.
func (r Recipe) Equal(other Recipe) bool {
	return r.name == other.name &&
		slices.Equal(r.ingredients, other.ingredients) &&
		slices.Equal(r.methodSteps, other.methodSteps)
}
