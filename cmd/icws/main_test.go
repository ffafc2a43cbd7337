package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/risteon/ic-workspace/internal/adapters/telemetry"
	"github.com/risteon/ic-workspace/internal/app"
	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports/mocks"
	"github.com/risteon/ic-workspace/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader   *mocks.MockConfigLoader
	registry *mocks.MockRegistryLoader
	scanner  *mocks.MockPackageScanner
	journals *mocks.MockJournalOpener
	writer   *mocks.MockBuildFileWriter
	reporter *mocks.MockReporter
	logger   *mocks.MockLogger
	provider ComponentProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:   mocks.NewMockConfigLoader(ctrl),
		registry: mocks.NewMockRegistryLoader(ctrl),
		scanner:  mocks.NewMockPackageScanner(ctrl),
		journals: mocks.NewMockJournalOpener(ctrl),
		writer:   mocks.NewMockBuildFileWriter(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	res := resolver.NewResolver(
		h.registry,
		h.scanner,
		mocks.NewMockFetcher(ctrl),
		mocks.NewMockHasher(ctrl),
		h.journals,
		telemetry.NewNoOp(),
		h.logger,
	)
	application := app.New(h.loader, res, h.writer, h.reporter, telemetry.NewNoOp(), h.logger)

	h.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: h.logger}, func() {}, nil
	}
	return h
}

// workspace makes the mocked adapters describe a workspace with the given packages.
func (h *harness) workspace(root string, packages map[string][]string) {
	layout := domain.DefaultLayout(root)
	h.loader.EXPECT().Load(root).Return(layout, nil)
	h.registry.EXPECT().Load(layout).Return(domain.Registry{}, nil)
	h.journals.EXPECT().Open(layout).Return(nil, errors.New("no journal"))
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	var names []domain.InternedString
	for name, deps := range packages {
		id := domain.NewInternedString(name)
		names = append(names, id)
		h.scanner.EXPECT().ReadDependencies(layout, id).Return(domain.NewInternedStrings(deps), nil)
	}
	h.scanner.EXPECT().Scan(layout).Return(domain.CanonicalizeIDs(names), nil)
}

func TestRun_Version(t *testing.T) {
	h := newHarness(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), h.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "icws version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_Status(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	h.workspace(root, map[string][]string{"core": nil})
	h.reporter.EXPECT().Status(gomock.Any()).Return(nil)

	exitCode := run(context.Background(), []string{"status", "-f", root}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 0, exitCode)
}

func TestRun_CheckWritesBuildFile(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	h.workspace(root, map[string][]string{"core": nil, "app": {"core"}})
	h.reporter.EXPECT().Summary(gomock.Any()).Return(nil)
	h.writer.EXPECT().Write(domain.DefaultLayout(root), domain.NewInternedStrings([]string{"core", "app"})).Return(nil)
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	exitCode := run(context.Background(), []string{"check", "--root", root}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 0, exitCode)
}

func TestRun_CycleExitsNonZero(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	h.workspace(root, map[string][]string{"a": {"b"}, "b": {"a"}})
	h.reporter.EXPECT().Summary(gomock.Any()).Return(nil)
	// Logged once by the resolver, not again by main.
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"check", "-f", root}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 1, exitCode)
}

func TestRun_ExecutionError(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	h.loader.EXPECT().Load(root).Return(domain.Layout{}, domain.ErrConfigInvalid)
	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	exitCode := run(context.Background(), []string{"status", "-f", root}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 1, exitCode)
}

func TestRun_RelativeRoot(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	t.Chdir(filepath.Dir(root))

	abs, err := filepath.Abs(filepath.Base(root))
	require.NoError(t, err)
	h.workspace(abs, nil)
	h.reporter.EXPECT().Status(gomock.Any()).Return(nil)

	exitCode := run(context.Background(), []string{"status", "-f", filepath.Base(root)}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 0, exitCode)
}
