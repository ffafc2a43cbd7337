package cmake_test

import (
	"os"
	"testing"

	"github.com/risteon/ic-workspace/internal/adapters/cmake"
	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	order := domain.NewInternedStrings([]string{"core", "utils", "app"})

	got := string(cmake.Render(order))

	assert.Equal(t, "ADD_SUBDIRECTORY(core)\nADD_SUBDIRECTORY(utils)\nADD_SUBDIRECTORY(app)\n", got)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, cmake.Render(nil))
}

func TestWriter_Write(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	w := cmake.NewWriter()

	require.NoError(t, w.Write(layout, domain.NewInternedStrings([]string{"core", "app"})))

	data, err := os.ReadFile(layout.BuildFilePath())
	require.NoError(t, err)
	assert.Equal(t, "ADD_SUBDIRECTORY(core)\nADD_SUBDIRECTORY(app)\n", string(data))

	// A second write replaces the content.
	require.NoError(t, w.Write(layout, domain.NewInternedStrings([]string{"core"})))
	data, err = os.ReadFile(layout.BuildFilePath())
	require.NoError(t, err)
	assert.Equal(t, "ADD_SUBDIRECTORY(core)\n", string(data))

	entries, err := os.ReadDir(layout.PackagesPath())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriter_WriteFailure(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	require.NoError(t, os.WriteFile(layout.PackagesPath(), nil, 0o600))

	err := cmake.NewWriter().Write(layout, domain.NewInternedStrings([]string{"core"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFileWriteFailed)
}
