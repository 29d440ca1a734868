package testsupport

import (
	"path/filepath"
	"testing"

	"movieinfo/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose paths live in a unique temp directory.
// The input file is not created unless WithInput is supplied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.InputFile = filepath.Join(base, "data", "movies_dataset.csv")
	cfgVal.Paths.OutputFile = filepath.Join(base, "data", "result_dataSet.csv")
	cfgVal.OMDb.TimeoutSeconds = 2
	cfgVal.OMDb.UserAgent = "movieinfo/test"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithInput writes contents to the configured input file.
func WithInput(contents string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Paths.InputFile, contents)
	}
}

// WithBaseURL points the config at a test lookup server.
func WithBaseURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.OMDb.BaseURL = url
	}
}

// WithOnError sets the extract failure policy.
func WithOnError(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Extract.OnError = policy
	}
}

// WithLogFormat selects console or json log output.
func WithLogFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Format = format
	}
}

// WithLogDir enables file logging under the temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Paths.InputFile))
}
