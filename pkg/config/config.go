// Package config provides configuration management for the galois CLI tool
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/galoiskit/galois/internal/validation"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	CRC      CRCConfig       `json:"crc"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for cipher commands
type DefaultSettings struct {
	KeyBits      int    `json:"key_bits"`      // Default: 256
	OutputFormat string `json:"output_format"` // hex, base64
}

// CRCConfig controls chunked checksum computation
type CRCConfig struct {
	ChunkSize int `json:"chunk_size"` // Default: 1 MiB
	Workers   int `json:"workers"`    // 0 means GOMAXPROCS
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool `json:"use_color"`
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager loads the configuration from its default location. A
// missing file yields the defaults; nothing is written.
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerAt is NewConfigManager for an explicit file path.
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{configPath: configPath}

	if err := cm.LoadConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cm.config = DefaultConfig()
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			KeyBits:      256,
			OutputFormat: "hex",
		},
		CRC: CRCConfig{
			ChunkSize: 1 << 20,
			Workers:   0,
		},
		UI: UIConfig{
			UseColor: true,
		},
	}
}

// Validate checks every setting
func (c *Config) Validate() error {
	if err := validation.ValidateKeyBits(c.Defaults.KeyBits); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if err := validation.ValidateOutputFormat(c.Defaults.OutputFormat); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if err := validation.ValidateChunkSize(c.CRC.ChunkSize); err != nil {
		return fmt.Errorf("crc: %w", err)
	}
	if err := validation.ValidateWorkers(c.CRC.Workers); err != nil {
		return fmt.Errorf("crc: %w", err)
	}
	return nil
}

// LoadConfig loads the configuration from disk. Fields absent from the file
// keep their default values.
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cm.configPath, err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the file the configuration is read from and saved to
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	if customPath := os.Getenv("GALOIS_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "galois", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "galois", "config.json"), nil
}
