package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avezina/go-certgen/internal/fileutil"
	"github.com/avezina/go-certgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds file-based defaults for certificate generation.
type Config struct {
	Assets AssetsConfig `yaml:"assets"`
	Output OutputConfig `yaml:"output"`
	Text   TextConfig   `yaml:"text"`
	Batch  BatchConfig  `yaml:"batch"`
	Data   DataConfig   `yaml:"data"`
}

// AssetsConfig locates the shared template and font.
type AssetsConfig struct {
	Template string `yaml:"template"` // Template PDF path
	Font     string `yaml:"font"`     // TTF font path
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = "certificates")
}

// TextConfig defines default text styling.
type TextConfig struct {
	FontSize float64 `yaml:"fontSize"` // Points, 1-200 (0 = library default)
	Color    string  `yaml:"color"`    // "R,G,B" in 0-255 space
}

// BatchConfig defines batch execution options.
type BatchConfig struct {
	Workers int    `yaml:"workers"` // Max concurrent renders (0 = auto)
	Mode    string `yaml:"mode"`    // "test" or "production"
}

// DataConfig defines the recipient source.
type DataConfig struct {
	File     string `yaml:"file"`     // CSV file with name,email rows
	TestName string `yaml:"testName"` // Recipient name for test mode
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, user config dir/certgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "certgen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
