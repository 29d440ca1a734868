package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"movieinfo/internal/config"
	"movieinfo/internal/movies"
	"movieinfo/internal/omdb"
	"movieinfo/internal/services"
	"movieinfo/internal/tabular"
)

// probeQuery is the title used to exercise the lookup endpoint.
var probeQuery = movies.Query{Title: "Frozen", Year: "2013"}

// CheckInputFile verifies the input exists, is readable, and has a Title column.
func CheckInputFile(name, path, encoding string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	r, err := tabular.Open(path, encoding)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	_ = r.Close()
	detail := "Title column found"
	if !r.HasYear() {
		detail = "Title column found, no Year column"
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, detail)}
}

// CheckOutputDirectory verifies the directory that will hold path is writable.
func CheckOutputDirectory(name, path string) Result {
	return CheckWritableDirectory(name, filepath.Dir(path))
}

// CheckWritableDirectory verifies dir is writable. When dir does not exist
// yet, its nearest existing ancestor must be.
func CheckWritableDirectory(name, dir string) Result {
	probe := dir
	for {
		info, err := os.Stat(probe)
		if err == nil {
			if !info.IsDir() {
				return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s is not a directory)", dir, probe)}
			}
			break
		}
		if !os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dir, err)}
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing ancestor)", dir)}
		}
		probe = parent
	}
	if err := unix.Access(probe, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", probe, err)}
	}
	if probe != dir {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", dir)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (write ok)", dir)}
}

// CheckOMDb performs one probe lookup against the configured endpoint.
func CheckOMDb(ctx context.Context, cfg *config.Config) Result {
	const name = "OMDb endpoint"

	timeout := cfg.LookupTimeout()
	client, err := omdb.New(cfg.OMDb.BaseURL, omdb.WithTimeout(timeout), omdb.WithUserAgent(cfg.OMDb.UserAgent))
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	record, err := client.Lookup(checkCtx, probeQuery)
	latency := time.Since(start).Round(time.Millisecond)
	if err != nil {
		return Result{Name: name, Detail: summarizeLookupError(client.BaseURL(), err)}
	}
	if !record.Found() {
		msg := strings.TrimSpace(record.ErrorMessage())
		if msg == "" {
			msg = "no match"
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (reachable in %v, probe: %s)", client.BaseURL(), latency, msg)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (reachable in %v)", client.BaseURL(), latency)}
}

func summarizeLookupError(base string, err error) string {
	var statusErr *omdb.HTTPStatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("%s (error: HTTP %d)", base, statusErr.StatusCode)
	}
	return fmt.Sprintf("%s (error: %s)", base, services.FailureReason(err))
}
