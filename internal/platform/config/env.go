// Package config loads DATALAB_ environment settings for the commands.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every env tag, so `env:"SITE_HTTP_ADDR"` reads
// DATALAB_SITE_HTTP_ADDR.
const Prefix = "DATALAB_"

// ParseEnv loads target from prefixed environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
