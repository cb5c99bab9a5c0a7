package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the service configuration for profile. Later layers win:
//
//  1. built-in defaults
//  2. {dir}/base.yaml
//  3. {dir}/{profile}.yaml
//  4. APP_-prefixed environment variables
//
// An env var is matched against the keys already known from the earlier
// layers, so APP_BULK_MAX_WORKERS sets bulk.max_workers rather than
// bulk.max.workers. Unknown vars fall back to splitting on every underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, err
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())
	provider := env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := known[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// envKeys indexes dotted koanf keys by their env form, e.g.
// "server_request_timeout" -> "server.request_timeout".
func envKeys(keys []string) map[string]string {
	idx := make(map[string]string, len(keys))
	for _, key := range keys {
		idx[strings.ReplaceAll(key, ".", "_")] = key
	}
	return idx
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
