package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/kochabx/restkit/log"
)

// Config manages application configuration
type Config struct {
	mu       sync.RWMutex   // protects concurrent access to target
	viper    *viper.Viper   // viper instance for configuration management
	validate Validator      // validator for configuration validation
	target   any            // destination the configuration is unmarshalled into
	loader   Loader         // loader is responsible for loading configuration
	file     string         // explicit config file path, used when no loader is set
	defaults map[string]any // viper defaults registered before the first load
	onChange func()         // invoked after a successful reload
}

// New creates a new Config instance with the given options
// If no loader is provided, a FileLoader is created for the WithFile path,
// or else with:
//   - filename: "config.yaml"
//   - paths: ["."]
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:    viper.New(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		target:   target,
	}

	for _, opt := range opts {
		opt(c)
	}

	for k, v := range c.defaults {
		c.viper.SetDefault(k, v)
	}

	switch {
	case c.loader != nil:
	case c.file != "":
		c.loader = NewFileLoader(c.file, nil, c.viper, c.validate)
	default:
		c.loader = NewFileLoader("config.yaml", []string{"."}, c.viper, c.validate)
	}

	return c
}

// Load reads the configuration using the configured loader
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// Reload reloads the configuration from the loader
func (c *Config) Reload() error {
	return c.Load()
}

// Read runs fn with the target under a read lock
func (c *Config) Read(fn func(target any)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fn(c.target)
}

// Watch reloads the target whenever the underlying file changes
func (c *Config) Watch() error {
	return c.loader.Watch(func() {
		log.Info().Msg("config change detected")

		if err := c.Reload(); err != nil {
			log.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		log.Info().Msg("config reloaded successfully")
		if c.onChange != nil {
			c.onChange()
		}
	})
}

// GetViper returns the underlying viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}
