// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/filesystem"
	"github.com/prism-vault/prism/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "PRISM_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The PRISM_CONFIG_PATH environment variable takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Prism))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Prism))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Vault resolves the root of the document store from configuration.
// Relative paths are made absolute against the working directory.
func Vault() string {
	path := viper.GetString(key.VaultPath)
	if path == "" {
		path = "."
	}

	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// SyncReport resolves the path of the persisted report of the last synchronization.
func SyncReport() string {
	return filepath.Join(Cache(), "sync_report.json")
}
