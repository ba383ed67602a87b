package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestMergeConfigPreservesZeroRecords(t *testing.T) {
	base := jobConfig{Template: "tpl.txt", Records: intPtr(0)}
	flags := jobConfig{Records: intPtr(1000), Locale: "en", Format: "plain"}

	merged := mergeConfig(base, flags)

	require.NotNil(t, merged.Records)
	assert.Equal(t, 0, *merged.Records)
	assert.Equal(t, "tpl.txt", merged.Template)
}

func TestMergeConfigFillsUnsetFields(t *testing.T) {
	base := jobConfig{Template: "tpl.txt"}
	flags := jobConfig{Records: intPtr(1000), Locale: "en", Format: "plain"}

	merged := mergeConfig(base, flags)

	require.NotNil(t, merged.Records)
	assert.Equal(t, 1000, *merged.Records)
	assert.Equal(t, "en", merged.Locale)
	assert.Equal(t, "plain", merged.Format)
}

func TestLoadConfigParsesZeroRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: tpl.txt\nrecords: 0\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Records)
	assert.Equal(t, 0, *cfg.Records)
	assert.Equal(t, "tpl.txt", cfg.Template)
}
