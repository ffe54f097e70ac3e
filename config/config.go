// Package config loads and saves the tool's provider settings from
// config.toml in the user's config directory. The ledger itself is
// never stored here; only where to find it.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/budgetme/budgetme/storage"
)

// appDir is the directory name under the user config dir holding both
// the config file and, by default, the local ledger document.
const appDir = "budgetme"

// StorageKind selects the storage backend. An explicit discriminant,
// so the "both sections populated" state is unambiguous.
type StorageKind string

const (
	// KindLocal stores the ledger on the local filesystem.
	KindLocal StorageKind = "local"
	// KindAWS stores the ledger in an S3-compatible object store.
	KindAWS StorageKind = "aws"
)

// Config is the persisted tool configuration.
type Config struct {
	// Provider selects which backend section is active.
	Provider StorageKind `toml:"provider"`

	Local LocalConfig `toml:"local"`
	AWS   AWSConfig   `toml:"aws"`
}

// LocalConfig configures the filesystem backend.
type LocalConfig struct {
	// Path is the directory holding data.json. Supports a leading ~.
	Path string `toml:"path"`
}

// AWSConfig configures the object-store backend.
type AWSConfig struct {
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket_name"`
	Region    string `toml:"region"`
}

// Default returns a fresh configuration: local storage under the user
// config dir, and a generated bucket name ready for a switch to aws.
func Default() *Config {
	return &Config{
		Provider: KindLocal,
		Local:    LocalConfig{Path: defaultDataDir()},
		AWS: AWSConfig{
			Bucket: GenerateBucketName(),
			Region: "us-east-1",
		},
	}
}

// DefaultPath returns the config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, "config.toml"), nil
}

// Load reads the config file at path, or returns Default when the
// file does not exist yet.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file, creating its directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// SetProvider switches the active backend. Only "local" and "aws" are
// valid.
func (c *Config) SetProvider(kind string) error {
	switch StorageKind(kind) {
	case KindLocal, KindAWS:
		c.Provider = StorageKind(kind)
		return nil
	default:
		return fmt.Errorf("invalid provider %q, valid are aws or local", kind)
	}
}

// StorageProvider constructs the active backend.
func (c *Config) StorageProvider() (storage.Provider, error) {
	switch c.Provider {
	case KindLocal, "":
		path := c.Local.Path
		if path == "" {
			path = defaultDataDir()
		}
		return storage.NewLocal(path), nil
	case KindAWS:
		return storage.NewS3(c.AWS.AccessKey, c.AWS.SecretKey, c.AWS.Bucket, c.AWS.Region), nil
	default:
		return nil, fmt.Errorf("invalid provider %q, valid are aws or local", c.Provider)
	}
}

func (c *Config) validate() error {
	switch c.Provider {
	case KindLocal, KindAWS, "":
		return nil
	default:
		return fmt.Errorf("invalid provider %q, valid are aws or local", c.Provider)
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return appDir
	}
	return filepath.Join(base, appDir)
}

const bucketAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBucketName returns a bucket-xxxxxxxx name with a random
// lowercase alphanumeric suffix.
func GenerateBucketName() string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = bucketAlphabet[rand.Intn(len(bucketAlphabet))]
	}
	return "bucket-" + string(suffix)
}
