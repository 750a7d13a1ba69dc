package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Load fills cfg from environment variables according to its envconfig tags.
// Every service defines its own config struct next to its main and passes it
// here; there is no shared ambient configuration.
func Load(cfg interface{}) error {
	if err := envconfig.Process("", cfg); err != nil {
		return errors.Wrap(err, "parse environment configuration")
	}
	return nil
}
