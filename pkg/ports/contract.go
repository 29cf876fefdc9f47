package ports

import (
	"testing"

	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRegistryContract runs a suite of tests to verify that a Registry implementation
// adheres to the defined interface contract. The registry is cleared between cases.
func RunRegistryContract(t *testing.T, reg Registry) {
	pancake := domain.NewRecipe("Pancake",
		[]string{"Store-bought pancake mix", "Water"},
		[]string{"Mix the ingredients", "Cook them in a pan"},
	)

	t.Run("Add and Lookup", func(t *testing.T) {
		reg.Clear()

		require.True(t, reg.Add(pancake), "valid recipe should be accepted")

		got, ok := reg.Lookup("Pancake")
		require.True(t, ok)
		assert.Equal(t, "Pancake", got.Name())
		assert.Equal(t, pancake.Ingredients(), got.Ingredients())
		assert.Equal(t, pancake.MethodSteps(), got.MethodSteps())
	})

	t.Run("Add Invalid", func(t *testing.T) {
		reg.Clear()

		invalid := []domain.Recipe{
			domain.NewRecipe("", []string{"Water"}, []string{"Cook"}),
			domain.NewRecipe("   ", []string{"Water"}, []string{"Cook"}),
			domain.NewRecipe("Empty", nil, []string{"Cook"}),
			domain.NewRecipe("Empty", []string{"Water"}, nil),
		}
		for _, r := range invalid {
			assert.False(t, reg.Add(r), "recipe %q should be rejected", r.Name())
		}
		assert.Empty(t, reg.Names())
	})

	t.Run("Add Invalid Keeps Previous", func(t *testing.T) {
		reg.Clear()
		require.True(t, reg.Add(pancake))

		assert.False(t, reg.Add(domain.NewRecipe("Pancake", nil, nil)))

		got, ok := reg.Lookup("Pancake")
		require.True(t, ok)
		assert.True(t, got.Equal(pancake))
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		reg.Clear()
		require.True(t, reg.Add(pancake))

		second := domain.NewRecipe("Pancake", []string{"Flour", "Milk", "Egg"}, []string{"Whisk", "Fry"})
		require.True(t, reg.Add(second))

		got, ok := reg.Lookup("Pancake")
		require.True(t, ok)
		assert.True(t, got.Equal(second))
		assert.Equal(t, []string{"Pancake"}, reg.Names())
	})

	t.Run("Lookup Missing", func(t *testing.T) {
		reg.Clear()

		got, ok := reg.Lookup("no_recipe")
		assert.False(t, ok)
		assert.Equal(t, domain.Recipe{}, got)
	})

	t.Run("For Non-String", func(t *testing.T) {
		reg.Clear()

		for _, key := range []any{1, 3.5, nil, []string{"Pancake"}} {
			_, _, err := reg.For(key)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument, "key %v", key)
		}

		_, ok, err := reg.For("no_recipe")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Clear", func(t *testing.T) {
		reg.Clear()
		require.True(t, reg.Add(pancake))
		require.True(t, reg.Add(domain.NewRecipe("Miso Soup", []string{"Tofu"}, []string{"Serve"})))

		reg.Clear()

		for _, name := range []string{"Pancake", "Miso Soup"} {
			_, ok := reg.Lookup(name)
			assert.False(t, ok, "%q should be gone after Clear", name)
		}
		assert.Empty(t, reg.Names())
	})
}
