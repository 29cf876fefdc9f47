/*
Package file loads recipe books from YAML or JSON files.

A recipe book lists recipes under a top-level "recipes" key:

	recipes:
	  - name: Pancake
	    ingredients:
	      - Store-bought pancake mix
	      - Water
	    method:
	      - Mix the ingredients
	      - Cook them in a pan

Each entry is replayed through a dsl.Builder, so recipes from files pass the same
validating registration as recipes described in Go.
*/
package file
