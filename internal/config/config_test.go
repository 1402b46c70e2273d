package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, time.Second, cfg.TurnTick)
	assert.Equal(t, "medium", cfg.DefaultDifficulty)
	assert.Empty(t, cfg.HostPassword)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TURN_TICK", "250ms")
	t.Setenv("HOST_PASSWORD", "hunter22")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.TurnTick)
	assert.Equal(t, "hunter22", cfg.HostPassword)
}

func TestLoadRejectsBadTick(t *testing.T) {
	t.Setenv("TURN_TICK", "0s")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TURN_TICK", "soon")
	_, err = Load()
	assert.Error(t, err)
}
