package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a lookup key is not a string.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrPrecondition groups builder calls made in the wrong state.
var ErrPrecondition = errors.New("precondition violation")

// ErrNoActiveRecipe is recorded when an ingredient or step is added outside a recipe block.
var ErrNoActiveRecipe = fmt.Errorf("%w: no recipe is being described", ErrPrecondition)

// ErrNestedRecipe is recorded when a recipe block is opened inside another one.
var ErrNestedRecipe = fmt.Errorf("%w: recipe blocks cannot be nested", ErrPrecondition)

// ValidationError represents a single rule a recipe failed.
type ValidationError struct {
	Field  string // "name", "ingredients" or "method_steps"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// AggregateError collects every validation failure of one recipe.
type AggregateError struct {
	Recipe string
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("recipe %q: %s", e.Recipe, e.Errors[0])
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "recipe %q: %d validation errors:", e.Recipe, len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err)
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns the individual failures if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
