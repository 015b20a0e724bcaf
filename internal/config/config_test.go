package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "春联.docx", cfg.Couplet.Output)
	assert.Equal(t, "2025新春对联", cfg.Couplet.Title)
	assert.Len(t, cfg.Couplet.Scrolls, 2)
	assert.Equal(t, "src/session.ts", cfg.Fixup.Target)
	assert.Empty(t, cfg.Fixup.Rules)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkstone.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[couplet]
output = "out/couplets.docx"

[fixup]
target = "src/main.ts"
`), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "out/couplets.docx", cfg.Couplet.Output)
	assert.Equal(t, "src/main.ts", cfg.Fixup.Target)
	// Untouched keys keep their defaults.
	assert.Equal(t, "2025新春对联", cfg.Couplet.Title)
	assert.Len(t, cfg.Couplet.Scrolls, 2)
}

func TestLoad_ScrollsReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkstone.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[couplet]
title = "乙巳蛇年"

[[couplet.scrolls]]
upper = "金蛇狂舞辞旧岁"
lower = "紫燕翻飞贺新春"
streamer = "蛇年大吉"
`), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Couplet.Scrolls, 1)
	assert.Equal(t, "金蛇狂舞辞旧岁", cfg.Couplet.Scrolls[0].Upper)

	doc := cfg.Document()
	assert.Equal(t, "乙巳蛇年", doc.Title)
	require.Len(t, doc.Lines(), 3)
	assert.Equal(t, "横批：蛇年大吉", doc.Lines()[2])
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(`
[fixup]
target = "lib/banner.ts"
`), 0600))
	t.Chdir(dir)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "lib/banner.ts", cfg.Fixup.Target)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkstone.toml")
	require.NoError(t, os.WriteFile(path, []byte("[couplet\noutput="), 0600))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
