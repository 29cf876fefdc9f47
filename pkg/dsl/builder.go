package dsl

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/aretw0/recipebook/pkg/ports"
)

// Builder manages recipe descriptions for a registry.
type Builder struct {
	registry ports.Registry
	staging  *domain.Staging
	err      error
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the structured logger for the builder.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a builder that submits finished recipes to reg.
func New(reg ports.Registry, opts ...Option) *Builder {
	b := &Builder{
		registry: reg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Describe runs body immediately and returns the first precondition
// violation recorded while it ran. Errors from earlier calls are discarded.
func (b *Builder) Describe(body func()) error {
	b.err = nil
	if body != nil {
		body()
	}
	return b.err
}

// Recipe describes a single recipe. It installs a fresh staging record named
// name, runs body, submits the result to the registry and clears the slot.
// Whether the registry accepted the recipe is only observable through Lookup.
func (b *Builder) Recipe(name string, body func()) {
	if b.staging != nil {
		b.fail(fmt.Errorf("%w: %q opened inside %q", domain.ErrNestedRecipe, name, b.staging.Name))
		return
	}

	staging := domain.NewStaging(name)
	b.SetStaging(staging)
	defer b.SetStaging(nil)

	if body != nil {
		body()
	}

	if b.registry.Add(staging.Recipe()) {
		b.logger.Debug("recipe described", "recipe", name,
			"ingredients", len(staging.Ingredients),
			"steps", len(staging.MethodSteps))
	}
}

// Staging returns the record currently being described, or nil.
func (b *Builder) Staging() *domain.Staging {
	return b.staging
}

// SetStaging replaces the current staging record. Passing nil clears the slot.
func (b *Builder) SetStaging(s *domain.Staging) {
	b.staging = s
}

// Err returns the first precondition violation recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) {
	b.logger.Error("invalid recipe description", "error", err)
	if b.err == nil {
		b.err = err
	}
}
