package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// FileLoader loads configuration from a YAML, JSON or TOML file
type FileLoader struct {
	viper    *viper.Viper
	validate Validator
	name     string
	paths    []string
}

// NewFileLoader creates a new file loader.
// With no search paths, name is used as the file path itself.
func NewFileLoader(name string, paths []string, v *viper.Viper, validate Validator) *FileLoader {
	if len(paths) == 0 {
		v.SetConfigFile(name)
	} else {
		for _, configPath := range paths {
			v.AddConfigPath(configPath)
		}
		v.SetConfigName(name)
		v.SetConfigType(strings.TrimPrefix(path.Ext(name), "."))
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &FileLoader{
		viper:    v,
		paths:    paths,
		name:     name,
		validate: validate,
	}
}

// Load implements Loader interface
func (l *FileLoader) Load(target any) error {
	if err := l.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", l.name, err)
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return fmt.Errorf("parse config %s: %w", l.name, err)
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return fmt.Errorf("validate config %s: %w", l.name, err)
		}
	}

	return nil
}

// Watch implements Loader interface
func (l *FileLoader) Watch(callback func()) error {
	l.viper.OnConfigChange(func(e fsnotify.Event) {
		if callback != nil && e.Op != fsnotify.Chmod {
			callback()
		}
	})

	l.viper.WatchConfig()
	return nil
}
