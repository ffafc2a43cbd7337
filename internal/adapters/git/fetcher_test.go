package git_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/risteon/ic-workspace/internal/adapters/git"
	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// initRepo creates an empty repository that can be cloned from the local filesystem.
func initRepo(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	out, err := exec.Command("git", "init", "--quiet", src).CombinedOutput()
	require.NoError(t, err, string(out))
	return src
}

func TestFetcher_Fetch(t *testing.T) {
	requireGit(t)
	src := initRepo(t)
	dest := filepath.Join(t.TempDir(), "packages", "core")

	var out bytes.Buffer
	err := git.NewFetcher().Fetch(context.Background(), src, dest, &out)

	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dest, ".git"))
}

func TestFetcher_FetchFailureCleansUp(t *testing.T) {
	requireGit(t)
	dest := filepath.Join(t.TempDir(), "core")

	err := git.NewFetcher().Fetch(context.Background(), filepath.Join(t.TempDir(), "missing"), dest, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.NoDirExists(t, dest)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, dest, meta["dest"])
	assert.Contains(t, meta, "exit_code")
	assert.Contains(t, meta, "stderr")
}

func TestFetcher_DestinationExists(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "keep"), nil, 0o600))

	err := git.NewFetcher().Fetch(context.Background(), "unused", dest, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.FileExists(t, filepath.Join(dest, "keep"))
}

func TestFetcher_MissingBinary(t *testing.T) {
	f := &git.Fetcher{Binary: filepath.Join(t.TempDir(), "no-such-git")}
	dest := filepath.Join(t.TempDir(), "core")

	err := f.Fetch(context.Background(), "unused", dest, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.NoDirExists(t, dest)
}

func TestFetcher_CanceledContext(t *testing.T) {
	requireGit(t)
	src := initRepo(t)
	dest := filepath.Join(t.TempDir(), "core")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := git.NewFetcher().Fetch(ctx, src, dest, nil)
	require.Error(t, err)
	assert.NoDirExists(t, dest)
}

func TestFetcher_SameDestinationSerialized(t *testing.T) {
	requireGit(t)
	src := initRepo(t)
	dest := filepath.Join(t.TempDir(), "core")
	f := git.NewFetcher()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = f.Fetch(context.Background(), src, dest, nil)
		}()
	}
	wg.Wait()

	// Exactly one clone wins; the others see an existing destination.
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
	}
	assert.Equal(t, 1, succeeded)
	assert.DirExists(t, filepath.Join(dest, ".git"))
}
