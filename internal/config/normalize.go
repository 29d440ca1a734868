package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOMDb()
	c.normalizeInput()
	c.normalizeExtract()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.InputFile) == "" {
		c.Paths.InputFile = defaultInputFile
	}
	if c.Paths.InputFile, err = expandPath(c.Paths.InputFile); err != nil {
		return fmt.Errorf("paths.input_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputFile) == "" {
		c.Paths.OutputFile = defaultOutputFile
	}
	if c.Paths.OutputFile, err = expandPath(c.Paths.OutputFile); err != nil {
		return fmt.Errorf("paths.output_file: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOMDb() {
	c.OMDb.BaseURL = strings.TrimSpace(c.OMDb.BaseURL)
	if value, ok := os.LookupEnv(envOMDbBaseURL); ok && strings.TrimSpace(value) != "" {
		c.OMDb.BaseURL = strings.TrimSpace(value)
	}
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = defaultOMDbBaseURL
	}
	if c.OMDb.TimeoutSeconds == 0 {
		c.OMDb.TimeoutSeconds = defaultOMDbTimeout
	}
	c.OMDb.UserAgent = strings.TrimSpace(c.OMDb.UserAgent)
	if c.OMDb.UserAgent == "" {
		c.OMDb.UserAgent = defaultOMDbUserAgent
	}
}

func (c *Config) normalizeInput() {
	enc := strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	switch enc {
	case "", "utf8", EncodingUTF8:
		enc = EncodingUTF8
	case "utf16", EncodingUTF16:
		enc = EncodingUTF16
	case "cp1252", EncodingWindows1252:
		enc = EncodingWindows1252
	case "iso-8859-1", EncodingLatin1:
		enc = EncodingLatin1
	}
	c.Input.Encoding = enc
}

func (c *Config) normalizeExtract() {
	c.Extract.OnError = strings.ToLower(strings.TrimSpace(c.Extract.OnError))
	if c.Extract.OnError == "" {
		c.Extract.OnError = defaultOnError
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
