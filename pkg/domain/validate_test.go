package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		recipe domain.Recipe
		fields []string
	}{
		{
			name:   "valid",
			recipe: domain.NewRecipe("Pancake", []string{"Water"}, []string{"Cook"}),
		},
		{
			name:   "empty name",
			recipe: domain.NewRecipe("", []string{"Water"}, []string{"Cook"}),
			fields: []string{"name"},
		},
		{
			name:   "whitespace name",
			recipe: domain.NewRecipe(" \t\n", []string{"Water"}, []string{"Cook"}),
			fields: []string{"name"},
		},
		{
			name:   "no ingredients",
			recipe: domain.NewRecipe("Pancake", nil, []string{"Cook"}),
			fields: []string{"ingredients"},
		},
		{
			name:   "no steps",
			recipe: domain.NewRecipe("Pancake", []string{"Water"}, []string{}),
			fields: []string{"method_steps"},
		},
		{
			name:   "everything wrong",
			recipe: domain.Recipe{},
			fields: []string{"name", "ingredients", "method_steps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.Validate(tt.recipe)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			errs := domain.ValidationErrors(err)
			require.Len(t, errs, len(tt.fields))
			for i, field := range tt.fields {
				var vErr *domain.ValidationError
				require.True(t, errors.As(errs[i], &vErr))
				assert.Equal(t, field, vErr.Field)
			}
		})
	}
}

func TestAggregateError_Message(t *testing.T) {
	err := domain.Validate(domain.NewRecipe("X", nil, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `recipe "X": 2 validation errors`)
	assert.Contains(t, err.Error(), `field "ingredients"`)
	assert.Contains(t, err.Error(), `field "method_steps"`)
}

func TestValidate_Properties(t *testing.T) {
	nonBlank := rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,20}`)
	items := rapid.SliceOfN(rapid.String(), 1, 8)

	t.Run("complete recipes are valid", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			r := domain.NewRecipe(nonBlank.Draw(rt, "name"), items.Draw(rt, "ingredients"), items.Draw(rt, "steps"))
			if err := domain.Validate(r); err != nil {
				rt.Fatalf("expected valid recipe, got %v", err)
			}
		})
	})

	t.Run("blank names are invalid", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			name := strings.Repeat(" ", rapid.IntRange(0, 5).Draw(rt, "spaces"))
			r := domain.NewRecipe(name, items.Draw(rt, "ingredients"), items.Draw(rt, "steps"))
			if domain.Validate(r) == nil {
				rt.Fatalf("expected blank name %q to be rejected", name)
			}
		})
	})

	t.Run("empty lists are invalid", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			name := nonBlank.Draw(rt, "name")
			if domain.Validate(domain.NewRecipe(name, nil, items.Draw(rt, "steps"))) == nil {
				rt.Fatal("expected missing ingredients to be rejected")
			}
			if domain.Validate(domain.NewRecipe(name, items.Draw(rt, "ingredients"), nil)) == nil {
				rt.Fatal("expected missing steps to be rejected")
			}
		})
	})
}
