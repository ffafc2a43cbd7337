package resolver

import "time"

// SetClock replaces the time source used for fetch records.
// This is exported for testing purposes only.
func (r *Resolver) SetClock(now func() time.Time) {
	r.now = now
}

// Suggest exposes the suggestion matcher for testing purposes only.
func Suggest(name string, candidates []string) []string {
	return suggest(name, candidates)
}
