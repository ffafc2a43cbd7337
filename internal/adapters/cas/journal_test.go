package cas_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/risteon/ic-workspace/internal/adapters/cas"
	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name string) domain.FetchRecord {
	return domain.FetchRecord{
		Package:         name,
		Locator:         "https://example.com/" + name + ".git",
		DeclarationHash: "00000000deadbeef",
		FetchedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestJournal_PutAndGet(t *testing.T) {
	j, err := cas.NewJournal(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)

	require.NoError(t, j.Put(record("core")))

	got, err := j.Get("core")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record("core"), *got)

	missing, err := j.Get("utils")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJournal_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".icws", "journal.json")

	j1, err := cas.NewJournal(path)
	require.NoError(t, err)
	require.NoError(t, j1.Put(record("core")))
	require.FileExists(t, path)

	j2, err := cas.NewJournal(path)
	require.NoError(t, err)
	got, err := j2.Get("core")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://example.com/core.git", got.Locator)
	assert.True(t, got.FetchedAt.Equal(record("core").FetchedAt))
}

func TestJournal_PutReplaces(t *testing.T) {
	j, err := cas.NewJournal(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)

	first := record("core")
	second := record("core")
	second.Locator = "https://mirror.example.com/core.git"

	require.NoError(t, j.Put(first))
	require.NoError(t, j.Put(second))

	got, err := j.Get("core")
	require.NoError(t, err)
	assert.Equal(t, second.Locator, got.Locator)
}

func TestJournal_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	j, err := cas.NewJournal(path)
	require.NoError(t, err)
	got, err := j.Get("core")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestJournal_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cas.NewJournal(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrJournalUnmarshalFailed)
}

func TestJournal_WriteFailure(t *testing.T) {
	state := filepath.Join(t.TempDir(), ".icws")

	j, err := cas.NewJournal(filepath.Join(state, "journal.json"))
	require.NoError(t, err)

	// The state directory turns into a regular file after the journal was opened.
	require.NoError(t, os.WriteFile(state, nil, 0o600))

	err = j.Put(record("core"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrJournalWriteFailed)
}

func TestJournal_ConcurrentPut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	j, err := cas.NewJournal(path)
	require.NoError(t, err)

	names := []string{"a", "b", "c", "d", "e", "f"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, j.Put(record(name)))
		}()
	}
	wg.Wait()

	reloaded, err := cas.NewJournal(path)
	require.NoError(t, err)
	for _, name := range names {
		got, err := reloaded.Get(name)
		require.NoError(t, err)
		assert.NotNil(t, got, name)
	}
}

func TestOpener_Open(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())

	j, err := cas.NewOpener().Open(layout)
	require.NoError(t, err)
	require.NoError(t, j.Put(record("core")))

	assert.FileExists(t, layout.JournalPath())
}
