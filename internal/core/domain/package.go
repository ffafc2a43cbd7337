package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Package is a physically present unit of source with its declared dependencies.
type Package struct {
	Name InternedString
	// Dependencies is sorted and free of duplicates. It may name the package itself.
	Dependencies []InternedString
}

// NewPackage creates a package record with canonicalized dependencies.
func NewPackage(name string, deps ...string) Package {
	return Package{
		Name:         NewInternedString(name),
		Dependencies: CanonicalizeIDs(NewInternedStrings(deps)),
	}
}

// ValidatePackageName rejects names that cannot be used as a single directory entry.
// Dot-prefixed names are rejected too: the workspace scan skips hidden directories.
func ValidatePackageName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return zerr.With(zerr.Wrap(ErrInvalidPackageName, "cannot be used as a directory name"), "package", name)
	}
	return nil
}

// Registry maps package identifiers to fetch locators.
type Registry map[InternedString]string

// NewRegistry builds a Registry from plain strings.
func NewRegistry(entries map[string]string) Registry {
	r := make(Registry, len(entries))
	for name, locator := range entries {
		r[NewInternedString(name)] = locator
	}
	return r
}

// Locator returns the fetch locator of a package.
func (r Registry) Locator(name InternedString) (string, bool) {
	locator, ok := r[name]
	return locator, ok
}

// Names returns the sorted registry keys.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name.String())
	}
	slices.Sort(names)
	return names
}

// Snapshot is an immutable view of the workspace: the package records present on
// disk and the registry, as of one resolution pass.
type Snapshot struct {
	packages map[InternedString]Package
	names    []InternedString
	registry Registry
}

// NewSnapshot creates a snapshot from package records and a registry.
// It returns an error if two records share a name.
func NewSnapshot(packages []Package, registry Registry) (*Snapshot, error) {
	s := &Snapshot{
		packages: make(map[InternedString]Package, len(packages)),
		names:    make([]InternedString, 0, len(packages)),
		registry: maps.Clone(registry),
	}
	if s.registry == nil {
		s.registry = Registry{}
	}

	for _, p := range packages {
		if _, exists := s.packages[p.Name]; exists {
			return nil, zerr.With(zerr.Wrap(ErrPackageAlreadyExists, "duplicate package record"), "package", p.Name.String())
		}
		p.Dependencies = CanonicalizeIDs(p.Dependencies)
		s.packages[p.Name] = p
		s.names = append(s.names, p.Name)
	}
	slices.SortFunc(s.names, InternedString.Compare)

	return s, nil
}

// With returns a new snapshot with the given records added or replaced.
// The receiver is left untouched.
func (s *Snapshot) With(packages ...Package) *Snapshot {
	merged := make(map[InternedString]Package, len(s.packages)+len(packages))
	maps.Copy(merged, s.packages)
	for _, p := range packages {
		merged[p.Name] = p
	}

	next, _ := NewSnapshot(slices.Collect(maps.Values(merged)), s.registry)
	return next
}

// Has reports whether a package record exists for name.
func (s *Snapshot) Has(name InternedString) bool {
	_, ok := s.packages[name]
	return ok
}

// Package returns the record for name.
func (s *Snapshot) Package(name InternedString) (Package, bool) {
	p, ok := s.packages[name]
	return p, ok
}

// Names returns the sorted identifiers of all known packages.
func (s *Snapshot) Names() []InternedString {
	return slices.Clone(s.names)
}

// Len returns the number of known packages.
func (s *Snapshot) Len() int {
	return len(s.names)
}

// Packages yields records in name order.
func (s *Snapshot) Packages() iter.Seq[Package] {
	return func(yield func(Package) bool) {
		for _, name := range s.names {
			if !yield(s.packages[name]) {
				return
			}
		}
	}
}

// Registry returns the registry the snapshot was built with.
func (s *Snapshot) Registry() Registry {
	return s.registry
}
