package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-datagen/pkg/provider"
)

func staticGraph() provider.Graph {
	return provider.Graph{
		"person": provider.Module{
			"firstName": func() any { return "Ada" },
		},
	}
}

func TestRegistryRegister(t *testing.T) {
	registry := provider.NewRegistry()

	require.NoError(t, registry.Register("en", staticGraph()))
	assert.True(t, registry.Has("en"))
	assert.False(t, registry.Has("fr"))
}

func TestRegistryRejectsDuplicateLocale(t *testing.T) {
	registry := provider.NewRegistry()

	require.NoError(t, registry.Register("en", staticGraph()))
	err := registry.Register("en", staticGraph())
	assert.Error(t, err)
}

func TestRegistryRejectsEmptyLocaleAndNilGraph(t *testing.T) {
	registry := provider.NewRegistry()

	assert.Error(t, registry.Register("", staticGraph()))
	assert.Error(t, registry.Register("en", nil))
}

func TestRegistryGraphUnknownLocale(t *testing.T) {
	registry := provider.NewRegistry()

	_, err := registry.Graph("xx-INVALID")
	assert.ErrorIs(t, err, provider.ErrInvalidLocale)
}

func TestRegistryLocalesSorted(t *testing.T) {
	registry := provider.NewRegistry()
	registry.MustRegister("fr", staticGraph())
	registry.MustRegister("en", staticGraph())
	registry.MustRegister("de", staticGraph())

	assert.Equal(t, []string{"de", "en", "fr"}, registry.Locales())
}
