package random

import (
	"log"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/antithesishq/antithesis-random-go/generator"
)

const errorLogLinePrefix = "[* antithesis-random-go *]"

// Config selects the generator behind the default engine.
type Config struct {
	// Seed makes the default engine reproducible. A base-10 integer is used
	// as an integer seed, anything else as a string seed.
	Seed string `env:"ANTITHESIS_RANDOM_SEED"`
	// Secure selects the cryptographic generator when no seed is set.
	Secure bool `env:"ANTITHESIS_RANDOM_SECURE" envDefault:"false"`
}

// LoadConfig reads Config from the environment. Unparsable values are
// logged and the zero Config is returned.
func LoadConfig() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Printf("%s Ignoring random configuration: %v", errorLogLinePrefix, err)
		return Config{}
	}
	return cfg
}

// Generator builds the generator described by cfg. Seeded generators are
// wrapped with generator.Locked since the default engine is shared.
func (cfg Config) Generator() generator.Generator {
	if cfg.Seed != "" {
		if n, err := strconv.ParseInt(cfg.Seed, 10, 64); err == nil {
			return generator.Locked(generator.NewSeeded(n))
		}
		return generator.Locked(generator.NewSeededString(cfg.Seed))
	}
	if cfg.Secure {
		gen, err := generator.NewSecure()
		if err == nil {
			return gen
		}
		log.Printf("%s Falling back to the standard source: %v", errorLogLinePrefix, err)
	}
	return generator.Standard()
}
