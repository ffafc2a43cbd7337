package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/risteon/ic-workspace/internal/adapters/config"
	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any())

	root := t.TempDir()
	layout, err := config.NewLoader(log).Load(root)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLayout(root), layout)
}

func TestLoad_Success(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
version: "1"
packages: deps
registry: registry.json
dependencies: deps.json
buildFile: packages.cmake
fetch:
  parallelism: 3
`)

	layout, err := config.NewLoader(nil).Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, layout.Root)
	assert.Equal(t, filepath.Join(root, "deps"), layout.PackagesPath())
	assert.Equal(t, filepath.Join(root, "registry.json"), layout.RegistryPath())
	assert.Equal(t, "deps.json", layout.DependenciesFile)
	assert.Equal(t, filepath.Join(root, "deps", "packages.cmake"), layout.BuildFilePath())
	assert.Equal(t, 3, layout.FetchParallelism)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "packages: vendor\n")

	layout, err := config.NewLoader(nil).Load(root)
	require.NoError(t, err)

	assert.Equal(t, "vendor", layout.PackagesDir)
	assert.Equal(t, domain.DefaultRegistryFile, layout.RegistryFile)
	assert.Equal(t, domain.DefaultDependenciesFile, layout.DependenciesFile)
	assert.Equal(t, domain.DefaultBuildFile, layout.BuildFile)
	assert.Zero(t, layout.FetchParallelism)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed yaml", "packages: [unterminated", domain.ErrConfigParseFailed},
		{"unsupported version", "version: \"2\"\n", domain.ErrConfigInvalid},
		{"negative parallelism", "fetch:\n  parallelism: -1\n", domain.ErrConfigInvalid},
		{"dependencies with separator", "dependencies: sub/deps.json\n", domain.ErrConfigInvalid},
		{"build file dot dot", "buildFile: ..\n", domain.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			_, err := config.NewLoader(nil).Load(root)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	root := t.TempDir()
	// A directory in place of the file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(root, domain.ConfigFileName), 0o750))

	_, err := config.NewLoader(nil).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
