/*
Package dsl provides a Go DSL (Domain Specific Language) for describing recipes.

A Builder owns one staging slot. Recipe opens a description block, the calls made
inside the block (Ingredient, Method, Step) write into the staging record, and when
the block returns the record is turned into an immutable domain.Recipe and submitted
to the registry's validating Add.

Example usage:

	reg := registry.New()
	b := dsl.New(reg)

	err := b.Describe(func() {
		b.Recipe("Pancake", func() {
			b.Ingredient("Store-bought pancake mix")
			b.Ingredient("Water")

			b.Method(func() {
				b.Step("Mix the ingredients")
				b.Step("Cook them in a pan")
			})
		})
	})

Calls inside a block do not return errors. The first precondition violation
(an Ingredient or Step outside a Recipe block, or a Recipe block opened inside
another one) is kept and reported by Err and Describe. Recipe blocks cannot be
nested: the inner block is refused and the outer staging record is left intact.

A recipe that fails validation is not an error. It is simply not registered,
which a later Lookup makes visible.

A Builder is not safe for concurrent use.
*/
package dsl
