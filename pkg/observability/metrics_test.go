package observability_test

import (
	"testing"

	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/aretw0/recipebook/pkg/observability"
	"github.com/aretw0/recipebook/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_FollowRegistry(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	reg := registry.New(registry.WithHooks(m.Hooks()))

	reg.Add(domain.NewRecipe("Pancake", []string{"Water"}, []string{"Cook"}))
	reg.Add(domain.NewRecipe("Miso Soup", []string{"Tofu"}, []string{"Serve"}))
	reg.Add(domain.NewRecipe("Pancake", []string{"Milk"}, []string{"Fry"}))
	reg.Add(domain.NewRecipe("", nil, nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Added))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejected))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registered))

	reg.Lookup("Pancake")
	reg.Lookup("nothing")
	reg.Lookup("nothing")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("miss")))

	reg.Clear()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Clears))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Registered))
}
