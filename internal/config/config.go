// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server settings
	ListenAddr string
	Debug      bool

	// CORS origins allowed to call the API from a browser.
	CORSOrigins []string

	// Scenario store
	ScenarioCap int

	// Vault
	DataDirectory   string
	VaultFile       string
	VaultPassphrase string
}

// Default returns configuration with sensible defaults.
func Default() *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &Config{
		ListenAddr:    ":8080",
		Debug:         false,
		CORSOrigins:   []string{"*"},
		ScenarioCap:   50,
		DataDirectory: filepath.Join(wd, "data"),
		VaultFile:     filepath.Join(wd, "data", "scenarios.vault"),
	}
}

// Load builds the configuration from defaults, a .env file when present,
// and FINCALC_* environment variables.
func Load() *Config {
	// A missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	cfg := Default()

	if addr := os.Getenv("FINCALC_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if debug := os.Getenv("FINCALC_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}
	if origins := os.Getenv("FINCALC_CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitAndTrim(origins)
	}
	if capStr := os.Getenv("FINCALC_SCENARIO_CAP"); capStr != "" {
		if n, err := strconv.Atoi(capStr); err == nil && n > 0 {
			cfg.ScenarioCap = n
		}
	}
	if dataDir := os.Getenv("FINCALC_DATA_DIR"); dataDir != "" {
		cfg.DataDirectory = dataDir
		cfg.VaultFile = filepath.Join(dataDir, "scenarios.vault")
	}
	if vaultFile := os.Getenv("FINCALC_VAULT_FILE"); vaultFile != "" {
		cfg.VaultFile = vaultFile
	}
	cfg.VaultPassphrase = os.Getenv("FINCALC_VAULT_PASSPHRASE")

	return cfg
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
