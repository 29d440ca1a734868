package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOMDb(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateExtract(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.InputFile) == "" {
		return errors.New("paths.input_file must be set")
	}
	if strings.TrimSpace(c.Paths.OutputFile) == "" {
		return errors.New("paths.output_file must be set")
	}
	if c.Paths.InputFile == c.Paths.OutputFile {
		return errors.New("paths.output_file must differ from paths.input_file")
	}
	return nil
}

func (c *Config) validateOMDb() error {
	u, err := url.Parse(c.OMDb.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("omdb.base_url is invalid: %q", c.OMDb.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("omdb.base_url must be http or https: %q", c.OMDb.BaseURL)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("omdb.base_url must not carry a query string: %q", c.OMDb.BaseURL)
	}
	if c.OMDb.TimeoutSeconds <= 0 {
		return errors.New("omdb.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateInput() error {
	switch c.Input.Encoding {
	case EncodingUTF8, EncodingUTF16, EncodingWindows1252, EncodingLatin1:
		return nil
	default:
		return fmt.Errorf("input.encoding must be one of %s, %s, %s, %s (got %q)",
			EncodingUTF8, EncodingUTF16, EncodingWindows1252, EncodingLatin1, c.Input.Encoding)
	}
}

func (c *Config) validateExtract() error {
	switch c.Extract.OnError {
	case OnErrorBlank, OnErrorAbort:
		return nil
	default:
		return fmt.Errorf("extract.on_error must be %q or %q (got %q)", OnErrorBlank, OnErrorAbort, c.Extract.OnError)
	}
}
