package dsl

import (
	"fmt"

	"github.com/aretw0/recipebook/pkg/domain"
)

// Ingredient appends an ingredient to the recipe being described.
func (b *Builder) Ingredient(text string) {
	if b.staging == nil {
		b.fail(fmt.Errorf("%w: ingredient %q", domain.ErrNoActiveRecipe, text))
		return
	}
	b.staging.AddIngredient(text)
}

// Method groups the steps of a recipe. It runs body immediately.
func (b *Builder) Method(body func()) {
	if body != nil {
		body()
	}
}

// Step appends a method step to the recipe being described.
func (b *Builder) Step(text string) {
	if b.staging == nil {
		b.fail(fmt.Errorf("%w: step %q", domain.ErrNoActiveRecipe, text))
		return
	}
	b.staging.AddStep(text)
}
