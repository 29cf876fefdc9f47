/*
Package recipebook is an in-memory recipe registry with a small declarative
description language for populating it.

Recipes are described through nested blocks (recipe, ingredient, method, step),
validated, and stored in a lookup table keyed by name. A recipe is accepted only
when its trimmed name is not blank and it has at least one ingredient and one
method step. Registering a name twice keeps the latest recipe.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/recipebook"
		"github.com/aretw0/recipebook/pkg/dsl"
	)

	func main() {
		book := recipebook.New()

		err := book.Describe(func(b *dsl.Builder) {
			b.Recipe("Pancake", func() {
				b.Ingredient("Store-bought pancake mix")
				b.Ingredient("Water")

				b.Method(func() {
					b.Step("Mix the ingredients")
					b.Step("Cook them in a pan")
				})
			})
		})
		if err != nil {
			panic(err)
		}

		if pancake, ok := book.Lookup("Pancake"); ok {
			fmt.Println(pancake.Ingredients())
		}
	}

Recipe books can also be loaded from YAML or JSON files with Book.LoadFile;
see package file for the format. The cmd/recipebook CLI validates, lists, shows
and serves recipe books.
*/
package recipebook
