package markdown_test

import (
	"strings"
	"testing"

	"github.com/aretw0/recipebook/internal/presentation/markdown"
	"github.com/aretw0/recipebook/pkg/domain"
)

func TestRecipe(t *testing.T) {
	r := domain.NewRecipe("Pancake",
		[]string{"Store-bought pancake mix", "Water"},
		[]string{"Mix the ingredients", "Cook them in a pan"},
	)

	want := "# Pancake\n\n" +
		"## Ingredients\n\n" +
		"- Store-bought pancake mix\n" +
		"- Water\n" +
		"\n## Method\n\n" +
		"1. Mix the ingredients\n" +
		"2. Cook them in a pan\n"

	if got := markdown.Recipe(r); got != want {
		t.Errorf("Recipe() mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestRecipe_Escaping(t *testing.T) {
	tests := []struct {
		name     string
		recipe   domain.Recipe
		contains []string
	}{
		{
			name:     "Emphasis",
			recipe:   domain.NewRecipe("*Best* pie", []string{"salt_and_pepper"}, []string{"Cook"}),
			contains: []string{`# \*Best\* pie`, `- salt\_and\_pepper`},
		},
		{
			name:     "Newlines",
			recipe:   domain.NewRecipe("Soup", []string{"Water"}, []string{"Boil\nthen serve"}),
			contains: []string{"1. Boil then serve"},
		},
		{
			name:     "Links And HTML",
			recipe:   domain.NewRecipe("Pie", []string{"[crust](http://x)", "<b>sugar</b>"}, []string{"Bake"}),
			contains: []string{`- \[crust\](http://x)`, `- \<b\>sugar\</b\>`},
		},
		{
			name:     "Block Markers",
			recipe:   domain.NewRecipe("Pie", []string{"- flour", "+ salt"}, []string{"1. Bake", "2) Cool"}),
			contains: []string{`- \- flour`, `- \+ salt`, `1. 1\. Bake`, `2. 2\) Cool`},
		},
		{
			name:     "Heading Marker",
			recipe:   domain.NewRecipe("#1 Stew", []string{"Beef"}, []string{"Stew"}),
			contains: []string{`# \#1 Stew`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markdown.Recipe(tt.recipe)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Expected output to contain %q, got:\n%s", s, got)
				}
			}
		})
	}
}

func TestIndex(t *testing.T) {
	got := markdown.Index("Recipes", []string{"Miso Soup", "Pancake"})
	if got != "# Recipes\n\n- Miso Soup\n- Pancake\n" {
		t.Errorf("unexpected index:\n%s", got)
	}

	if empty := markdown.Index("Recipes", nil); !strings.Contains(empty, "_No recipes._") {
		t.Errorf("expected empty marker, got:\n%s", empty)
	}
}
