// Package resolver drives the fetch loop that brings a workspace to a fixed point.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"github.com/sahilm/fuzzy"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxSuggestions bounds the "did you mean" hints per unknown identifier.
const maxSuggestions = 3

// Resolver classifies a workspace, fetches what is missing and orders the result.
type Resolver struct {
	registry  ports.RegistryLoader
	scanner   ports.PackageScanner
	fetcher   ports.Fetcher
	hasher    ports.Hasher
	journals  ports.JournalOpener
	telemetry ports.Telemetry
	logger    ports.Logger

	now func() time.Time
}

// NewResolver creates a new Resolver.
func NewResolver(
	registry ports.RegistryLoader,
	scanner ports.PackageScanner,
	fetcher ports.Fetcher,
	hasher ports.Hasher,
	journals ports.JournalOpener,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		registry:  registry,
		scanner:   scanner,
		fetcher:   fetcher,
		hasher:    hasher,
		journals:  journals,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// run holds the state of one Resolve call.
type run struct {
	layout   domain.Layout
	snapshot *domain.Snapshot
	class    domain.Classification
	journal  ports.FetchJournal
	res      *domain.Resolution

	// attempted guarantees that each identifier is looked at once per run.
	attempted map[domain.InternedString]bool
}

// fetchJob is one identifier handed to the fetch client.
type fetchJob struct {
	name    domain.InternedString
	locator string
	err     error
}

// Resolve loads the workspace described by layout and returns its resolution.
//
// In domain.ModeFetch the requested additions and every Missing dependency are
// fetched, batch by batch, until no Missing dependency is left that has not been
// attempted. Every identifier is attempted at most once, so the loop terminates
// even when fetches fail. In domain.ModeStatus nothing is fetched.
//
// Fetch failures, unknown identifiers and absent declarations are reported as
// warnings and in the returned resolution. Only an inaccessible workspace, an
// unparsable registry or cancellation of ctx make Resolve fail.
func (r *Resolver) Resolve(
	ctx context.Context,
	layout domain.Layout,
	additions []string,
	mode domain.Mode,
) (*domain.Resolution, error) {
	registry, err := r.loadRegistry(layout)
	if err != nil {
		return nil, err
	}

	names, err := r.scanner.Scan(layout)
	if err != nil {
		return nil, err
	}

	snapshot, err := domain.NewSnapshot(r.readPackages(layout, names), registry)
	if err != nil {
		return nil, err
	}

	st := &run{
		layout:    layout,
		snapshot:  snapshot,
		class:     domain.Classify(snapshot),
		journal:   r.openJournal(layout),
		attempted: make(map[domain.InternedString]bool),
		res: &domain.Resolution{
			Layout:      layout,
			Fetches:     make(map[domain.InternedString]domain.FetchStatus),
			FetchErrors: make(map[domain.InternedString]error),
			Passes:      1,
			Suggestions: make(map[domain.InternedString][]string),
			Journal:     make(map[domain.InternedString]domain.FetchRecord),
		},
	}

	if mode == domain.ModeFetch {
		requested := domain.CanonicalizeIDs(domain.NewInternedStrings(additions))
		if err := r.fetchLoop(ctx, st, requested); err != nil {
			return nil, err
		}
	}

	r.finish(st)
	return st.res, nil
}

func (r *Resolver) loadRegistry(layout domain.Layout) (domain.Registry, error) {
	registry, err := r.registry.Load(layout)
	if errors.Is(err, domain.ErrRegistryNotFound) {
		r.logger.Warn(fmt.Sprintf("registry %s not found, no package can be fetched", layout.RegistryPath()))
		return domain.Registry{}, nil
	}
	return registry, err
}

func (r *Resolver) openJournal(layout domain.Layout) ports.FetchJournal {
	journal, err := r.journals.Open(layout)
	if err != nil {
		r.logger.Warn("fetch journal unavailable: " + err.Error())
		return nil
	}
	return journal
}

// readPackages builds package records. A package whose declaration cannot be
// read gets an empty dependency set.
func (r *Resolver) readPackages(layout domain.Layout, names []domain.InternedString) []domain.Package {
	packages := make([]domain.Package, 0, len(names))
	for _, name := range names {
		deps, err := r.scanner.ReadDependencies(layout, name)
		switch {
		case errors.Is(err, domain.ErrDeclarationNotFound):
			r.logger.Warn(fmt.Sprintf("package %s has no %s, assuming no dependencies", name, layout.DependenciesFile))
		case err != nil:
			r.logger.Warn(fmt.Sprintf("ignoring dependencies of %s: %v", name, err))
			deps = nil
		}
		packages = append(packages, domain.Package{Name: name, Dependencies: deps})
	}
	return packages
}

func (r *Resolver) fetchLoop(ctx context.Context, st *run, requested []domain.InternedString) error {
	queue := domain.CanonicalizeIDs(append(slices.Clone(requested), st.class.Missing...))

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "resolution interrupted")
		}

		present, jobs := r.triage(ctx, st, queue)

		if err := r.fetchBatch(ctx, st, jobs); err != nil {
			return err
		}

		var added []domain.InternedString
		added = append(added, present...)
		for _, job := range jobs {
			if job.err == nil {
				added = append(added, job.name)
			}
		}
		if len(added) == 0 {
			break
		}

		st.snapshot = st.snapshot.With(r.readPackages(st.layout, domain.CanonicalizeIDs(added))...)
		st.class = domain.Classify(st.snapshot)
		st.res.Passes++

		queue = queue[:0]
		for _, name := range st.class.Missing {
			if !st.attempted[name] {
				queue = append(queue, name)
			}
		}
	}

	return nil
}

// triage decides what happens to each queued identifier. It returns the identifiers
// whose directory already exists and the ones that have to be fetched.
func (r *Resolver) triage(
	ctx context.Context,
	st *run,
	queue []domain.InternedString,
) ([]domain.InternedString, []*fetchJob) {
	var (
		present []domain.InternedString
		jobs    []*fetchJob
	)

	for _, name := range queue {
		if st.attempted[name] {
			continue
		}
		st.attempted[name] = true

		if st.snapshot.Has(name) {
			st.res.Fetches[name] = domain.FetchStatusPresent
			r.logger.Info(fmt.Sprintf("%s already exists", name))
			continue
		}

		locator, ok := st.snapshot.Registry().Locator(name)
		if !ok {
			st.res.Fetches[name] = domain.FetchStatusUnknown
			r.logger.Warn(fmt.Sprintf("unknown package %s: no registry entry", name))
			continue
		}

		if r.scanner.Exists(st.layout, name) {
			st.res.Fetches[name] = domain.FetchStatusPresent
			r.logger.Info(fmt.Sprintf("%s already exists", name))
			_, vertex := r.telemetry.Record(ctx, "fetch "+name.String())
			vertex.Cached()
			vertex.Complete(nil)
			present = append(present, name)
			continue
		}

		jobs = append(jobs, &fetchJob{name: name, locator: locator})
	}

	return present, jobs
}

// fetchBatch runs the fetch client for every job in parallel. A failed fetch
// never cancels its siblings.
func (r *Resolver) fetchBatch(ctx context.Context, st *run, jobs []*fetchJob) error {
	if len(jobs) == 0 {
		return nil
	}

	limit := st.layout.FetchParallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, job := range jobs {
		g.Go(func() error {
			vctx, vertex := r.telemetry.Record(gctx, "fetch "+job.name.String())
			r.logger.Info(fmt.Sprintf("fetching %s from %s", job.name, job.locator))
			job.err = r.fetcher.Fetch(vctx, job.locator, st.layout.PackagePath(job.name), vertex.Stdout())
			vertex.Complete(job.err)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "resolution interrupted")
	}

	for _, job := range jobs {
		if job.err != nil {
			st.res.Fetches[job.name] = domain.FetchStatusFailed
			st.res.FetchErrors[job.name] = job.err
			r.logger.Warn(fmt.Sprintf("failed to fetch %s: %v", job.name, job.err))
			continue
		}
		st.res.Fetches[job.name] = domain.FetchStatusFetched
		r.record(st, job)
	}

	return nil
}

// record writes the journal entry of a fresh fetch.
func (r *Resolver) record(st *run, job *fetchJob) {
	if st.journal == nil {
		return
	}

	hash, err := r.hasher.ComputeFileHash(st.layout.DeclarationPath(job.name))
	if err != nil {
		hash = ""
	}

	rec := domain.FetchRecord{
		Package:         job.name.String(),
		Locator:         job.locator,
		DeclarationHash: hash,
		FetchedAt:       r.now().UTC(),
	}
	if err := st.journal.Put(rec); err != nil {
		r.logger.Warn(fmt.Sprintf("cannot record fetch of %s: %v", job.name, err))
	}
}

// finish runs the final ordering pass and fills in the derived report data.
func (r *Resolver) finish(st *run) {
	res := st.res
	res.Snapshot = st.snapshot
	res.Classification = st.class
	res.Outcome = domain.Order(st.snapshot, st.class)

	if res.Outcome.IsCyclic() {
		r.logger.Error(res.Outcome.Err())
	}

	registryNames := st.snapshot.Registry().Names()
	for _, name := range res.Unknown() {
		if hints := suggest(name.String(), registryNames); len(hints) > 0 {
			res.Suggestions[name] = hints
		}
	}

	r.checkDrift(st)
}

// checkDrift compares every journaled declaration hash with the file on disk.
func (r *Resolver) checkDrift(st *run) {
	if st.journal == nil {
		return
	}

	for _, name := range st.snapshot.Names() {
		rec, err := st.journal.Get(name.String())
		if err != nil || rec == nil {
			continue
		}
		st.res.Journal[name] = *rec

		current, err := r.hasher.ComputeFileHash(st.layout.DeclarationPath(name))
		if err != nil {
			current = ""
		}
		if current != rec.DeclarationHash {
			st.res.Drifted = append(st.res.Drifted, name)
		}
	}
}

// suggest returns registry names that look like name. A candidate matches when
// either string is a fuzzy subsequence of the other.
func suggest(name string, candidates []string) []string {
	var hints []string
	for _, m := range fuzzy.Find(name, candidates) {
		hints = append(hints, m.Str)
	}
	for _, c := range candidates {
		if slices.Contains(hints, c) {
			continue
		}
		if len(fuzzy.Find(c, []string{name})) > 0 {
			hints = append(hints, c)
		}
	}
	if len(hints) > maxSuggestions {
		hints = hints[:maxSuggestions]
	}
	return hints
}
