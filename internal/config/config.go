// Package config loads zpass defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/zarlcorp/zpass/internal/passgen"
)

// Config holds generation defaults. Command-line flags override these.
type Config struct {
	Length      int  `env:"ZPASS_LENGTH" envDefault:"12"`
	NoUppercase bool `env:"ZPASS_NO_UPPERCASE"`
	NoDigits    bool `env:"ZPASS_NO_DIGITS"`
	NoSpecial   bool `env:"ZPASS_NO_SPECIAL"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when the environment is empty.
func Default() Config {
	return Config{Length: passgen.DefaultLength}
}

// Policy converts the configuration into a generation policy.
func (c Config) Policy() passgen.Policy {
	return passgen.Policy{
		Length:    c.Length,
		Uppercase: !c.NoUppercase,
		Digits:    !c.NoDigits,
		Special:   !c.NoSpecial,
	}
}
