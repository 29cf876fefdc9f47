package domain

import "strings"

// Validate checks the registration rules for a recipe and reports every failure.
// A recipe is valid when its trimmed name is not empty and it has at least one
// ingredient and at least one method step.
func Validate(r Recipe) error {
	var errs []error

	if strings.TrimSpace(r.name) == "" {
		errs = append(errs, &ValidationError{Field: "name", Reason: "must not be blank"})
	}
	if len(r.ingredients) == 0 {
		errs = append(errs, &ValidationError{Field: "ingredients", Reason: "at least one ingredient is required"})
	}
	if len(r.methodSteps) == 0 {
		errs = append(errs, &ValidationError{Field: "method_steps", Reason: "at least one step is required"})
	}

	if len(errs) > 0 {
		return &AggregateError{Recipe: r.name, Errors: errs}
	}
	return nil
}
