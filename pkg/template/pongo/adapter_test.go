package pongo_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-datagen/pkg/template/pongo"
)

func TestRenderStringSubstitutesDottedPaths(t *testing.T) {
	engine := pongo.New()

	data := map[string]any{
		"person": map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
		},
	}

	got, err := engine.RenderString("{{person.firstName}} {{person.lastName}}", data)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got)
}

func TestRenderStringToleratesWhitespaceInsideBraces(t *testing.T) {
	engine := pongo.New()

	data := map[string]any{
		"rec": map[string]any{"id": 7},
	}

	got, err := engine.RenderString("row {{  rec.id  }}", data)
	require.NoError(t, err)
	assert.Equal(t, "row 7", got)
}

func TestRenderStringWritesToSinks(t *testing.T) {
	engine := pongo.New()

	var buf bytes.Buffer
	got, err := engine.RenderString("{{rec.id}}", map[string]any{"rec": map[string]any{"id": 1}}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, got, buf.String())
}

func TestRenderStringRejectsBlockConstructs(t *testing.T) {
	engine := pongo.New()

	_, err := engine.RenderString("{{#person.firstName}}x{{/person.firstName}}", map[string]any{})
	assert.Error(t, err)
}

func TestRenderStringRejectsUnsupportedContextType(t *testing.T) {
	engine := pongo.New()

	_, err := engine.RenderString("static", 42)
	assert.Error(t, err)
}

func TestRenderStringGlobalData(t *testing.T) {
	engine := pongo.New(pongo.WithGlobalData(map[string]any{"app": "datagen"}))

	got, err := engine.RenderString("{{app}}", nil)
	require.NoError(t, err)
	assert.Equal(t, "datagen", got)
}
