package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadPollConfigFromEnv_Defaults(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{})
	defer restore()

	cfg := LoadPollConfigFromEnv()
	assert.Equal(t, 2*time.Second, cfg.PublicInterval)
	assert.Equal(t, 3*time.Second, cfg.AdminInterval)
}

func TestPollConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := PollConfig{PublicInterval: 2 * time.Second, AdminInterval: 3 * time.Second}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("zero public interval", func(t *testing.T) {
		cfg := PollConfig{PublicInterval: 0, AdminInterval: 3 * time.Second}
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero admin interval", func(t *testing.T) {
		cfg := PollConfig{PublicInterval: 2 * time.Second, AdminInterval: 0}
		assert.Error(t, cfg.Validate())
	})
}
