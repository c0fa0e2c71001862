package config

import (
	"fmt"
	"time"
)

// PollConfig holds leaderboard polling cadences.
type PollConfig struct {
	// PublicInterval is the refresh cadence of the public podium view.
	PublicInterval time.Duration
	// AdminInterval is the refresh cadence of the admin view.
	AdminInterval time.Duration
}

// LoadPollConfigFromEnv loads polling configuration from environment variables.
func LoadPollConfigFromEnv() PollConfig {
	return PollConfig{
		PublicInterval: GetEnvDuration("POLL_PUBLIC_INTERVAL", 2*time.Second),
		AdminInterval:  GetEnvDuration("POLL_ADMIN_INTERVAL", 3*time.Second),
	}
}

// Validate validates polling configuration.
func (c PollConfig) Validate() error {
	if c.PublicInterval <= 0 {
		return fmt.Errorf("PublicInterval must be greater than 0")
	}
	if c.AdminInterval <= 0 {
		return fmt.Errorf("AdminInterval must be greater than 0")
	}
	return nil
}
