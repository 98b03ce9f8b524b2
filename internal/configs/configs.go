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

const envPrefix = "TRACKER_"

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Snapshot SnapshotConfig `koanf:"snapshot"`
	Log      LogConfig      `koanf:"log"`
	Defaults DefaultsConfig `koanf:"defaults"`
}

type DatabaseConfig struct {
	DSN string `koanf:"dsn"`
}

type SnapshotConfig struct {
	Path         string `koanf:"path"`
	Format       string `koanf:"format"`
	ExportOnExit bool   `koanf:"export_on_exit"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DefaultsConfig holds the user ids a new task gets when none are given.
type DefaultsConfig struct {
	CreatorID  uint `koanf:"creator_id"`
	ExecutorID uint `koanf:"executor_id"`
}

func defaults() map[string]any {
	return map[string]any{
		"database.dsn": "task-tracker.db",

		"snapshot.path":           "tasks.json",
		"snapshot.format":         "",
		"snapshot.export_on_exit": true,

		"log.level":  "warn",
		"log.format": "text",

		"defaults.creator_id":  1,
		"defaults.executor_id": 1,
	}
}

// Load layers configuration, later layers winning: built-in defaults, the
// YAML file at path (skipped when path is empty), then TRACKER_* variables.
//
//	TRACKER_DATABASE_DSN            -> database.dsn
//	TRACKER_SNAPSHOT_EXPORT_ON_EXIT -> snapshot.export_on_exit
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Snapshot.Format = resolveFormat(cfg.Snapshot.Format, cfg.Snapshot.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn must not be empty"))
	}
	if c.Snapshot.ExportOnExit && c.Snapshot.Path == "" {
		errs = append(errs, errors.New("snapshot.path must not be empty when snapshot.export_on_exit is set"))
	}
	switch c.Snapshot.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("snapshot.format must be one of: json, yaml; got %q", c.Snapshot.Format))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// resolveFormat picks the snapshot format from the file extension when none
// is configured.
func resolveFormat(format, path string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
