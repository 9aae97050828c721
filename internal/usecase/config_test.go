package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diazbsofia/homesolution/internal/domain"
	"github.com/diazbsofia/homesolution/internal/testutil"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		m := &testutil.MockConfigManager{LocalInfo: domain.ConfigInfo{Path: "/work/homesol.toml"}}
		out, err := NewInitConfig(m).Execute(context.Background(), InitConfigInput{})
		require.NoError(t, err)
		assert.Equal(t, "/work/homesol.toml", out.Path)
		assert.True(t, m.InitLocal)
		assert.False(t, m.InitGlobal)
		require.NotNil(t, m.InitedWith)
	})

	t.Run("global", func(t *testing.T) {
		m := &testutil.MockConfigManager{GlobalInfo: domain.ConfigInfo{Path: "/home/u/.config/homesol/homesol.toml"}}
		out, err := NewInitConfig(m).Execute(context.Background(), InitConfigInput{Global: true})
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.config/homesol/homesol.toml", out.Path)
		assert.True(t, m.InitGlobal)
	})

	t.Run("already exists", func(t *testing.T) {
		m := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}
		_, err := NewInitConfig(m).Execute(context.Background(), InitConfigInput{})
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}

func TestShowConfig_Execute(t *testing.T) {
	m := &testutil.MockConfigManager{
		LocalInfo:  domain.ConfigInfo{Path: "homesol.toml", Content: "[log]", Exists: true},
		GlobalInfo: domain.ConfigInfo{Path: "/g/homesol.toml"},
	}
	loader := testutil.NewMockConfigLoader()

	out, err := NewShowConfig(m, loader).Execute(context.Background(), ShowConfigInput{})
	require.NoError(t, err)
	assert.True(t, out.LocalConfig.Exists)
	assert.False(t, out.GlobalConfig.Exists)
	assert.Equal(t, domain.DefaultLogLevel, out.Effective.Log.Level)

	loader.LoadErr = domain.ErrInvalidArgument
	_, err = NewShowConfig(m, loader).Execute(context.Background(), ShowConfigInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
