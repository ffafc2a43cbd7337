package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/risteon/ic-workspace/internal/adapters/fs"
	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkPackage(t *testing.T, layout domain.Layout, name, declaration string) {
	t.Helper()
	dir := layout.PackagePath(domain.NewInternedString(name))
	require.NoError(t, os.MkdirAll(dir, 0o750))
	if declaration != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, layout.DependenciesFile), []byte(declaration), 0o600))
	}
}

func TestScanner_ScanCreatesPackagesDir(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())

	names, err := fs.NewScanner().Scan(layout)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.DirExists(t, layout.PackagesPath())
}

func TestScanner_ScanListsPackageDirectories(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	mkPackage(t, layout, "utils", "")
	mkPackage(t, layout, "core", "")
	mkPackage(t, layout, ".git", "")
	require.NoError(t, os.WriteFile(layout.BuildFilePath(), []byte("ADD_SUBDIRECTORY(core)\n"), 0o600))

	names, err := fs.NewScanner().Scan(layout)
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "utils"}, domain.Strings(names))
}

func TestScanner_ScanUnreadable(t *testing.T) {
	root := t.TempDir()
	layout := domain.DefaultLayout(root)
	// A file where the packages directory should be.
	require.NoError(t, os.WriteFile(layout.PackagesPath(), nil, 0o600))

	_, err := fs.NewScanner().Scan(layout)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkspaceUnreadable)
}

func TestScanner_ReadDependencies(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	mkPackage(t, layout, "app", `[
  "utils",
  "core", // required by everything
  "core",
]`)

	deps, err := fs.NewScanner().ReadDependencies(layout, domain.NewInternedString("app"))
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "utils"}, domain.Strings(deps))
}

func TestScanner_ReadDependenciesEmpty(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	mkPackage(t, layout, "leaf", "[]")

	deps, err := fs.NewScanner().ReadDependencies(layout, domain.NewInternedString("leaf"))
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestScanner_ReadDependenciesErrors(t *testing.T) {
	tests := []struct {
		name        string
		declaration string
		want        error
	}{
		{"missing", "", domain.ErrDeclarationNotFound},
		{"object", `{"core": 1}`, domain.ErrDeclarationParseFailed},
		{"numbers", `[1, 2]`, domain.ErrDeclarationParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := domain.DefaultLayout(t.TempDir())
			mkPackage(t, layout, "pkg", tt.declaration)

			_, err := fs.NewScanner().ReadDependencies(layout, domain.NewInternedString("pkg"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScanner_Exists(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	mkPackage(t, layout, "core", "")
	scanner := fs.NewScanner()

	assert.True(t, scanner.Exists(layout, domain.NewInternedString("core")))
	assert.False(t, scanner.Exists(layout, domain.NewInternedString("utils")))
}

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`["core"]`), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`["utils"]`), 0o600))

	h := fs.NewHasher()
	hashA, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hashA2, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := h.ComputeFileHash(b)
	require.NoError(t, err)

	assert.Len(t, hashA, 16)
	assert.Equal(t, hashA, hashA2)
	assert.NotEqual(t, hashA, hashB)
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileHashFailed)
}
