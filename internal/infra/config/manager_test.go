package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diazbsofia/homesolution/internal/domain"
)

func TestManager_GetLocalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), domain.ConfigFileName)
		writeFile(t, path, "[log]\nlevel = \"debug\"")

		info := NewManagerWithGlobalDir(path, "").GetLocalConfigInfo()
		assert.Equal(t, path, info.Path)
		assert.Equal(t, "[log]\nlevel = \"debug\"", info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), domain.ConfigFileName)

		info := NewManagerWithGlobalDir(path, "").GetLocalConfigInfo()
		assert.Equal(t, path, info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		info := NewManagerWithGlobalDir("", "").GetGlobalConfigInfo()
		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})

	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[output]\nformat = \"json\"")

		info := NewManagerWithGlobalDir("", globalDir).GetGlobalConfigInfo()
		assert.True(t, info.Exists)
		assert.Contains(t, info.Content, "json")
	})
}

func TestManager_InitLocalConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	manager := NewManagerWithGlobalDir(path, "")

	require.NoError(t, manager.InitLocalConfig(domain.NewDefaultConfig()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[assign]")
	assert.Contains(t, string(content), `policy = "first-free"`)

	// The generated file loads cleanly.
	cfg, err := NewLoaderWithGlobalDir(path, "").Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)

	err = manager.InitLocalConfig(domain.NewDefaultConfig())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", "homesol")
	manager := NewManagerWithGlobalDir("", globalDir)

	require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))
	assert.True(t, manager.GetGlobalConfigInfo().Exists)

	assert.Error(t, NewManagerWithGlobalDir("", "").InitGlobalConfig(domain.NewDefaultConfig()))
}
