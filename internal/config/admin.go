package config

import "fmt"

// AdminConfig holds the fixed admin gate credentials.
//
// This gate is not a security boundary: the defaults are the historical
// constants of the admin view and there is no lockout or rate limiting.
type AdminConfig struct {
	// Username is the expected admin username.
	Username string
	// Password is the expected admin password.
	Password string
}

// LoadAdminConfigFromEnv loads admin gate configuration from environment variables.
func LoadAdminConfigFromEnv() AdminConfig {
	return AdminConfig{
		Username: GetEnv("ADMIN_USERNAME", "admin"),
		Password: GetEnv("ADMIN_PASSWORD", "password123"),
	}
}

// Validate validates admin gate configuration.
func (c AdminConfig) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("Username must not be empty")
	}
	if c.Password == "" {
		return fmt.Errorf("Password must not be empty")
	}
	return nil
}
