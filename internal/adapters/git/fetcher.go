// Package git fetches package repositories with the git CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTail bounds how much of git's error output is attached to a failure.
const stderrTail = 2048

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher implements ports.Fetcher by running "git clone".
type Fetcher struct {
	// Binary is the git executable. Defaults to "git" looked up in PATH.
	Binary string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFetcher creates a Fetcher using the git found in PATH.
func NewFetcher() *Fetcher {
	return &Fetcher{Binary: "git", locks: make(map[string]*sync.Mutex)}
}

// Fetch clones locator into dest. Work on the same destination is serialized.
func (f *Fetcher) Fetch(ctx context.Context, locator, dest string, out io.Writer) error {
	unlock := f.lock(dest)
	defer unlock()

	if _, err := os.Stat(dest); err == nil {
		return fetchError(zerr.Wrap(domain.ErrFetchFailed, "destination already exists"), locator, dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fetchError(zerr.Wrap(domain.ErrFetchFailed, err.Error()), locator, dest)
	}

	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return fetchError(zerr.Wrap(domain.ErrFetchFailed, err.Error()), locator, dest)
	}

	if out == nil {
		out = io.Discard
	}
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, f.binary(), "clone", "--", locator, dest) //nolint:gosec // locator comes from the workspace registry
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Stdout = out
	cmd.Stderr = io.MultiWriter(out, &stderr)

	if err := cmd.Run(); err != nil {
		// Leave nothing half-cloned behind.
		_ = os.RemoveAll(dest)

		fetchErr := fetchError(zerr.Wrap(domain.ErrFetchFailed, err.Error()), locator, dest)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fetchErr = zerr.With(fetchErr, "exit_code", exitErr.ExitCode())
		}
		if msg := tail(stderr.String()); msg != "" {
			fetchErr = zerr.With(fetchErr, "stderr", msg)
		}
		return fetchErr
	}

	return nil
}

func (f *Fetcher) binary() string {
	if f.Binary == "" {
		return "git"
	}
	return f.Binary
}

// lock acquires the mutex guarding dest and returns its release function.
func (f *Fetcher) lock(dest string) func() {
	key := filepath.Clean(dest)

	f.mu.Lock()
	if f.locks == nil {
		f.locks = make(map[string]*sync.Mutex)
	}
	m, ok := f.locks[key]
	if !ok {
		m = &sync.Mutex{}
		f.locks[key] = m
	}
	f.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func fetchError(err error, locator, dest string) error {
	err = zerr.With(err, "locator", locator)
	return zerr.With(err, "dest", dest)
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		s = s[len(s)-stderrTail:]
	}
	return s
}
