package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"movieinfo/internal/services"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the input/output file locations and the optional log directory.
type Paths struct {
	InputFile  string `toml:"input_file"`
	OutputFile string `toml:"output_file"`
	LogDir     string `toml:"log_dir"`
}

// OMDb contains configuration for the OMDb lookup endpoint.
type OMDb struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

// Input contains configuration for reading the title list.
type Input struct {
	Encoding string `toml:"encoding"`
}

// Extract contains configuration for the enrichment run.
type Extract struct {
	OnError string `toml:"on_error"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for movieinfo.
//
// Configuration sections:
//   - Paths: input/output CSV files and optional log directory
//   - OMDb: lookup endpoint and per-request timeout
//   - Input: character encoding of the title list
//   - Extract: row failure policy
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	OMDb    OMDb    `toml:"omdb"`
	Input   Input   `toml:"input"`
	Extract Extract `toml:"extract"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/movieinfo/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults are used instead.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, services.Wrap(services.ErrConfiguration, "config", "validate", resolvedPath, err)
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(defaultConfigFileName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Paths.OutputFile)}
	if c.Paths.LogDir != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// Overrides holds command-line replacements for configured values. Empty
// fields leave the configuration unchanged.
type Overrides struct {
	InputFile  string
	OutputFile string
	OnError    string
}

// Apply merges o into c, then normalizes and validates the result.
func (c *Config) Apply(o Overrides) error {
	if v := strings.TrimSpace(o.InputFile); v != "" {
		c.Paths.InputFile = v
	}
	if v := strings.TrimSpace(o.OutputFile); v != "" {
		c.Paths.OutputFile = v
	}
	if v := strings.TrimSpace(o.OnError); v != "" {
		c.Extract.OnError = v
	}
	if err := c.normalize(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
	}
	return nil
}

// LookupTimeout returns the per-row OMDb request timeout.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.OMDb.TimeoutSeconds) * time.Second
}

// AbortOnError reports whether the first failed lookup should stop the run.
func (c *Config) AbortOnError() bool {
	return c.Extract.OnError == OnErrorAbort
}

// expandPath resolves a leading tilde. Relative paths are kept relative so data
// files resolve against the working directory at run time.
func expandPath(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	return filepath.Clean(pathValue), nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
