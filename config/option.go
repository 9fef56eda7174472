package config

import (
	"maps"

	"github.com/spf13/viper"
)

// Option is a function that configures a Config
type Option func(*Config)

// WithViper sets a custom viper instance
func WithViper(v *viper.Viper) Option {
	return func(c *Config) {
		c.viper = v
	}
}

// WithValidator sets a custom validator; nil disables validation
func WithValidator(v Validator) Option {
	return func(c *Config) {
		c.validate = v
	}
}

// WithLoader sets the configuration loader
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}

// WithFile loads from the file at path instead of ./config.yaml
func WithFile(path string) Option {
	return func(c *Config) {
		c.file = path
	}
}

// WithDefaults registers viper defaults, keyed by dotted path
func WithDefaults(defaults map[string]any) Option {
	return func(c *Config) {
		if c.defaults == nil {
			c.defaults = make(map[string]any, len(defaults))
		}
		maps.Copy(c.defaults, defaults)
	}
}

// WithOnChange sets a callback run after every successful reload
func WithOnChange(fn func()) Option {
	return func(c *Config) {
		c.onChange = fn
	}
}
