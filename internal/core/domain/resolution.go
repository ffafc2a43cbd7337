package domain

import (
	"time"
)

// Mode selects what a resolution run is allowed to do.
type Mode int

const (
	// ModeStatus only classifies and orders the current workspace.
	ModeStatus Mode = iota
	// ModeFetch fetches requested and missing packages until a fixed point is reached.
	ModeFetch
)

// FetchStatus is the per-identifier result of the fetch loop.
type FetchStatus string

const (
	// FetchStatusFetched means the package was materialized by the fetch client.
	FetchStatusFetched FetchStatus = "fetched"
	// FetchStatusPresent means the package directory already existed; nothing was fetched.
	FetchStatusPresent FetchStatus = "present"
	// FetchStatusUnknown means the identifier has no registry entry and was skipped.
	FetchStatusUnknown FetchStatus = "unknown"
	// FetchStatusFailed means the fetch client reported an error.
	FetchStatusFailed FetchStatus = "failed"
)

// IsSuccess reports whether the package is present after the attempt.
func (s FetchStatus) IsSuccess() bool {
	return s == FetchStatusFetched || s == FetchStatusPresent
}

// Resolution is the final state of one resolution run.
type Resolution struct {
	Layout         Layout
	Snapshot       *Snapshot
	Classification Classification
	Outcome        Outcome
	// Fetches records what happened to every identifier the fetch loop looked at.
	Fetches map[InternedString]FetchStatus
	// FetchErrors holds the error of every identifier with FetchStatusFailed.
	FetchErrors map[InternedString]error
	// Passes counts the classification passes run, including the final one.
	Passes int
	// Suggestions maps Unknown identifiers to similarly named registry entries.
	Suggestions map[InternedString][]string
	// Journal holds the fetch record of every known package that has one.
	Journal map[InternedString]FetchRecord
	// Drifted lists known packages whose declaration changed since they were fetched.
	Drifted []InternedString
}

// Unknown returns the Unknown identifiers of the final pass together with requested
// identifiers that had no registry entry.
func (r *Resolution) Unknown() []InternedString {
	unknown := append([]InternedString(nil), r.Classification.Unknown...)
	for name, status := range r.Fetches {
		if status == FetchStatusUnknown {
			unknown = append(unknown, name)
		}
	}
	return CanonicalizeIDs(unknown)
}

// Failed returns the identifiers whose fetch failed, sorted.
func (r *Resolution) Failed() []InternedString {
	var failed []InternedString
	for name, status := range r.Fetches {
		if status == FetchStatusFailed {
			failed = append(failed, name)
		}
	}
	return CanonicalizeIDs(failed)
}

// Fetched returns the identifiers materialized during this run, sorted.
func (r *Resolution) Fetched() []InternedString {
	var fetched []InternedString
	for name, status := range r.Fetches {
		if status == FetchStatusFetched {
			fetched = append(fetched, name)
		}
	}
	return CanonicalizeIDs(fetched)
}

// FetchRecord describes where a package came from.
type FetchRecord struct {
	Package         string    `json:"package"`
	Locator         string    `json:"locator"`
	DeclarationHash string    `json:"declarationHash,omitempty"`
	FetchedAt       time.Time `json:"fetchedAt"`
}
