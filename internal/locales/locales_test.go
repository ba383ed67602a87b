package locales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-datagen/internal/locales"
)

func TestBuiltinRegistersEnglish(t *testing.T) {
	registry := locales.Builtin()

	assert.True(t, registry.Has("en"))
	assert.Contains(t, registry.Locales(), "en")
}

func TestEnglishGraphCoversExpectedModules(t *testing.T) {
	registry := locales.Builtin()
	graph, err := registry.Graph("en")
	require.NoError(t, err)

	for _, module := range []string{"person", "internet", "address", "phone", "company", "lorem", "finance", "color", "date", "uuid"} {
		assert.Contains(t, graph, module)
	}
}

// Invoking every builtin generator catches wiring mistakes (nil generators,
// panicking calls) in one sweep.
func TestEnglishGeneratorsProduceValues(t *testing.T) {
	registry := locales.Builtin()
	graph, err := registry.Graph("en")
	require.NoError(t, err)

	for moduleName, module := range graph {
		for name, generator := range module {
			require.NotNil(t, generator, "%s.%s", moduleName, name)
			value := generator()
			assert.NotNil(t, value, "%s.%s returned nil", moduleName, name)
			if s, ok := value.(string); ok {
				assert.NotEmpty(t, s, "%s.%s returned an empty string", moduleName, name)
			}
		}
	}
}

func TestEnglishValuesAreIndependentAcrossCalls(t *testing.T) {
	registry := locales.Builtin()
	graph, err := registry.Graph("en")
	require.NoError(t, err)

	uuid := graph["uuid"]["v4"]
	assert.NotEqual(t, uuid(), uuid())
}
