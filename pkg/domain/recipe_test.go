package domain_test

import (
	"testing"

	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewRecipe_AcceptsAnyValues(t *testing.T) {
	r := domain.NewRecipe("", nil, nil)

	assert.Equal(t, "", r.Name())
	assert.Empty(t, r.Ingredients())
	assert.Empty(t, r.MethodSteps())
}

func TestRecipe_Accessors(t *testing.T) {
	r := domain.NewRecipe("Pancake",
		[]string{"Store-bought pancake mix", "Water"},
		[]string{"Mix the ingredients", "Cook them in a pan"},
	)

	assert.Equal(t, "Pancake", r.Name())
	assert.Equal(t, []string{"Store-bought pancake mix", "Water"}, r.Ingredients())
	assert.Equal(t, []string{"Mix the ingredients", "Cook them in a pan"}, r.MethodSteps())
}

func TestRecipe_IsolatedFromCallerSlices(t *testing.T) {
	ingredients := []string{"Tofu"}
	steps := []string{"Serve"}
	r := domain.NewRecipe("Miso Soup", ingredients, steps)

	// Mutating the inputs must not leak into the recipe.
	ingredients[0] = "Beef"
	steps[0] = "Burn"
	assert.Equal(t, []string{"Tofu"}, r.Ingredients())
	assert.Equal(t, []string{"Serve"}, r.MethodSteps())

	// Nor must mutating what the accessors hand out.
	got := r.Ingredients()
	got[0] = "Beef"
	assert.Equal(t, []string{"Tofu"}, r.Ingredients())
}

func TestStaging_Recipe(t *testing.T) {
	s := domain.NewStaging("Pancake")
	s.AddIngredient("Water")
	s.AddStep("Cook")

	r := s.Recipe()
	s.AddIngredient("Flour")

	assert.True(t, r.Equal(domain.NewRecipe("Pancake", []string{"Water"}, []string{"Cook"})))
}
