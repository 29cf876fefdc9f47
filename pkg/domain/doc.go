/*
Package domain contains the core entities of the recipe book.

It defines the immutable Recipe value, the mutable Staging record used while a
description block is being assembled, the validation rule applied before a recipe
is accepted, and the sentinel errors shared by the other packages. The package has
no I/O and no dependencies outside the standard library.

# Key Entities

  - Recipe: a name plus ordered ingredients and method steps. Never mutated after construction.
  - Staging: the in-progress record a dsl.Builder writes into during one description block.
  - ValidationError / AggregateError: the reasons a recipe was refused.
*/
package domain
