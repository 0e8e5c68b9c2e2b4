/*
Package config manages TOML config for AbbrevServe services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/preproc-tools/abbrevserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Dict    DictConfig    `toml:"dict"`
	Segment SegmentConfig `toml:"segment"`
	Service ServiceConfig `toml:"service"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxTextLen int `toml:"max_text_len"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	// Path to an extra entry file, one canonical form per line. Merged over
	// the builtin set. Empty means builtins only.
	Path string `toml:"path"`
}

// SegmentConfig holds sentence chunking defaults for document ingestion.
type SegmentConfig struct {
	ChunkWordLength int `toml:"chunk_word_length"`
	SentOverlap     int `toml:"sent_overlap"`
}

// ServiceConfig holds remote service client options.
type ServiceConfig struct {
	BaseURL     string `toml:"base_url"`
	APIKey      string `toml:"api_key"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxTextLen: 1 << 20,
		},
		Dict: DictConfig{
			Path: "",
		},
		Segment: SegmentConfig{
			ChunkWordLength: 100,
			SentOverlap:     1,
		},
		Service: ServiceConfig{
			BaseURL:     "http://localhost:8000",
			TimeoutSecs: 60,
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml with
// fallback priority: ~/.config/abbrevserve, then the executable dir.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return filepath.Join(execDir, "config.toml"), nil
	}
	return filepath.Join(homeDir, ".config", "abbrevserve", "config.toml"), nil
}

// InitConfig loads config from file or creates default if missing.
// Never fails hard: any problem falls back to builtin defaults.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}
	return LoadConfig(configPath), nil
}

// LoadConfig loads from a TOML file over the builtin defaults, so fields
// absent from the file keep their default values.
func LoadConfig(configPath string) *Config {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig()
	}
	return cfg
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/abbrevserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			log.Debugf("Loading config from custom path: %s", customConfigPath)
			return LoadConfig(customConfigPath), customConfigPath
		}
		log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		return DefaultConfig(), ""
	}
	return cfg, defaultPath
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
