package recipebook

import (
	"io"
	"log/slog"

	"github.com/aretw0/recipebook/pkg/adapters/file"
	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/aretw0/recipebook/pkg/dsl"
	"github.com/aretw0/recipebook/pkg/observability"
	"github.com/aretw0/recipebook/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Version is the current release of the recipebook module and CLI.
const Version = "0.3.0"

// Book is the high-level entry point of the library.
// It owns a registry and hands out a fresh dsl.Builder for every description.
type Book struct {
	registry   *registry.Registry
	logger     *slog.Logger
	promReg    prometheus.Registerer
	metrics    *observability.Metrics
	extraHooks *registry.Hooks
}

// Option defines a functional option for configuring the Book.
type Option func(*Book)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Book) {
		b.logger = logger
	}
}

// WithMetrics records registry activity into Prometheus collectors registered with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(b *Book) {
		b.promReg = reg
	}
}

// WithHooks registers additional registry callbacks. They run after the
// metrics hooks when WithMetrics is also given.
func WithHooks(hooks registry.Hooks) Option {
	return func(b *Book) {
		b.extraHooks = &hooks
	}
}

// New creates an empty recipe book.
func New(opts ...Option) *Book {
	b := &Book{}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var hooks []registry.Hooks
	if b.promReg != nil {
		b.metrics = observability.NewMetrics(b.promReg)
		hooks = append(hooks, b.metrics.Hooks())
	}
	if b.extraHooks != nil {
		hooks = append(hooks, *b.extraHooks)
	}
	b.registry = registry.New(
		registry.WithLogger(b.logger),
		registry.WithHooks(registry.Combine(hooks...)),
	)

	return b
}

// Describe runs body with a new builder bound to the book's registry and
// returns the first precondition violation recorded while it ran.
func (b *Book) Describe(body func(d *dsl.Builder)) error {
	d := b.builder()
	return d.Describe(func() { body(d) })
}

// LoadFile describes every recipe of a YAML or JSON recipe book.
func (b *Book) LoadFile(path string) (*file.LoadReport, error) {
	report, err := file.Load(path, b.builder())
	if err != nil {
		return report, err
	}
	b.logger.Info("recipe book loaded", "path", path,
		"accepted", len(report.Accepted()),
		"rejected", len(report.Rejected()))
	return report, nil
}

// Lookup returns the recipe registered under name.
func (b *Book) Lookup(name string) (domain.Recipe, bool) {
	return b.registry.Lookup(name)
}

// Clear removes every recipe from the book.
func (b *Book) Clear() {
	b.registry.Clear()
}

// Registry returns the underlying registry.
func (b *Book) Registry() *registry.Registry {
	return b.registry
}

// Metrics returns the Prometheus collectors, or nil when WithMetrics was not used.
func (b *Book) Metrics() *observability.Metrics {
	return b.metrics
}

func (b *Book) builder() *dsl.Builder {
	return dsl.New(b.registry, dsl.WithLogger(b.logger))
}
