// Package domain contains the core domain models and the dependency graph engine
// of the workspace resolver.
package domain

import (
	"container/heap"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Classification partitions every dependency identifier that has no package record.
type Classification struct {
	// Missing identifiers are absent from the workspace but fetchable through the registry.
	Missing []InternedString
	// Unknown identifiers are absent from both the workspace and the registry.
	Unknown []InternedString
}

// IsResolved reports whether every referenced dependency is present.
func (c Classification) IsResolved() bool {
	return len(c.Missing) == 0 && len(c.Unknown) == 0
}

// IsUnknown reports whether name was classified Unknown.
func (c Classification) IsUnknown(name InternedString) bool {
	_, found := slices.BinarySearchFunc(c.Unknown, name, InternedString.Compare)
	return found
}

// IsMissing reports whether name was classified Missing.
func (c Classification) IsMissing(name InternedString) bool {
	_, found := slices.BinarySearchFunc(c.Missing, name, InternedString.Compare)
	return found
}

// Classify labels every dependency referenced by a record of s that is not itself a
// record: Missing when the registry can supply it, Unknown otherwise.
func Classify(s *Snapshot) Classification {
	var c Classification
	seen := make(map[InternedString]bool)

	for p := range s.Packages() {
		for _, dep := range p.Dependencies {
			if seen[dep] || s.Has(dep) {
				continue
			}
			seen[dep] = true
			if _, ok := s.Registry().Locator(dep); ok {
				c.Missing = append(c.Missing, dep)
			} else {
				c.Unknown = append(c.Unknown, dep)
			}
		}
	}

	slices.SortFunc(c.Missing, InternedString.Compare)
	slices.SortFunc(c.Unknown, InternedString.Compare)
	return c
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	// OutcomeOrdered means every known package was placed in a build order.
	OutcomeOrdered OutcomeKind = iota
	// OutcomeCyclic means no complete build order exists: the known packages contain a
	// dependency cycle or wait on a dependency that is not present yet.
	OutcomeCyclic
)

// String returns the lower-case name of the kind.
func (k OutcomeKind) String() string {
	if k == OutcomeCyclic {
		return "cyclic"
	}
	return "ordered"
}

// Outcome is the result of ordering one snapshot: either a complete build order or a
// cycle signal. A cyclic outcome never carries a partial order.
type Outcome struct {
	kind    OutcomeKind
	order   []InternedString
	cycles  [][]InternedString
	unmet   map[InternedString][]InternedString
	pending map[InternedString][]InternedString
}

// Kind returns the outcome tag.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// IsCyclic reports whether ordering failed.
func (o Outcome) IsCyclic() bool {
	return o.kind == OutcomeCyclic
}

// Order returns the build order, or nil for a cyclic outcome.
func (o Outcome) Order() []InternedString {
	return slices.Clone(o.order)
}

// Cycles returns one dependency loop per group of packages that depend on each other.
// Each loop starts at its smallest member and follows dependency edges; loops are
// sorted by their first member.
func (o Outcome) Cycles() [][]InternedString {
	res := make([][]InternedString, len(o.cycles))
	for i, c := range o.cycles {
		res[i] = slices.Clone(c)
	}
	return res
}

// Unmet returns, per package, the Unknown dependencies that were excluded from the
// ordering constraint. They can never be satisfied by fetching.
func (o Outcome) Unmet() map[InternedString][]InternedString {
	return cloneEdges(o.unmet)
}

// Pending returns, per package, the dependencies that have no package record yet but
// are not Unknown either, typically Missing ones awaiting a fetch. A package with a
// pending dependency is never ordered.
func (o Outcome) Pending() map[InternedString][]InternedString {
	return cloneEdges(o.pending)
}

func cloneEdges(edges map[InternedString][]InternedString) map[InternedString][]InternedString {
	res := make(map[InternedString][]InternedString, len(edges))
	for name, deps := range edges {
		res[name] = slices.Clone(deps)
	}
	return res
}

// Err returns nil when ordered. Otherwise it returns ErrCycleDetected with the cycle
// paths as metadata, or ErrDependencyNotPresent when only absent dependencies block the
// order. Absent dependencies are listed under "missing" in both cases.
func (o Outcome) Err() error {
	if o.kind != OutcomeCyclic {
		return nil
	}

	var err error
	if len(o.cycles) > 0 {
		paths := make([]string, 0, len(o.cycles))
		for _, c := range o.cycles {
			paths = append(paths, cyclePath(c))
		}
		err = zerr.With(zerr.Wrap(ErrCycleDetected, "cannot order packages"), "cycle", strings.Join(paths, "; "))
	} else {
		err = zerr.Wrap(ErrDependencyNotPresent, "cannot order packages")
	}

	if len(o.pending) > 0 {
		err = zerr.With(err, "missing", pendingList(o.pending))
	}
	return err
}

// pendingList renders pending edges as "a -> x, y; b -> z", sorted by package.
func pendingList(pending map[InternedString][]InternedString) string {
	names := make([]InternedString, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	slices.SortFunc(names, InternedString.Compare)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name.String()+" -> "+strings.Join(Strings(pending[name]), ", "))
	}
	return strings.Join(parts, "; ")
}

func cyclePath(members []InternedString) string {
	var b strings.Builder
	for _, m := range members {
		b.WriteString(m.String())
		b.WriteString(" -> ")
	}
	b.WriteString(members[0].String())
	return b.String()
}

// Order computes a build order over the known packages of s with Kahn's algorithm.
//
// Edges between known packages constrain the order. Unknown dependencies (per c) are
// treated as satisfied so that packages requiring them still get a position; they are
// reported through Outcome.Unmet. Any other dependency without a record is not present
// yet: it is reported through Outcome.Pending and keeps its package, and everything
// depending on that package, out of the order.
//
// Among packages that become ready at the same time the lexicographically smallest
// name is emitted first, so the result is deterministic.
func Order(s *Snapshot, c Classification) Outcome {
	names := s.Names()
	index := make(map[InternedString]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	inDegree := make([]int, len(names))
	deps := make([][]int, len(names))
	dependents := make([][]int, len(names))
	unmet := make(map[InternedString][]InternedString)
	pending := make(map[InternedString][]InternedString)

	for i, name := range names {
		p, _ := s.Package(name)
		for _, dep := range p.Dependencies {
			j, known := index[dep]
			switch {
			case known:
				inDegree[i]++
				deps[i] = append(deps[i], j)
				dependents[j] = append(dependents[j], i)
			case c.IsUnknown(dep):
				unmet[name] = append(unmet[name], dep)
			default:
				inDegree[i]++
				pending[name] = append(pending[name], dep)
			}
		}
	}

	ready := &indexHeap{}
	for i, degree := range inDegree {
		if degree == 0 {
			heap.Push(ready, i)
		}
	}

	order := make([]InternedString, 0, len(names))
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int) //nolint:forcetypeassert // heap only holds ints
		order = append(order, names[i])
		for _, dependent := range dependents[i] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				heap.Push(ready, dependent)
			}
		}
	}

	if len(order) < len(names) {
		return Outcome{
			kind:    OutcomeCyclic,
			cycles:  findCycles(names, inDegree, deps),
			unmet:   unmet,
			pending: pending,
		}
	}

	return Outcome{kind: OutcomeOrdered, order: order, unmet: unmet, pending: pending}
}

// findCycles runs Tarjan's algorithm over the packages left over by Kahn's algorithm
// (those with a positive in-degree) and returns one loop per strongly connected
// component that actually forms a cycle. Leftover packages that merely depend on a
// loop are not reported.
func findCycles(names []InternedString, inDegree []int, deps [][]int) [][]InternedString {
	n := len(names)
	var (
		counter  int
		stack    []int
		onStack  = make([]bool, n)
		indices  = make([]int, n)
		lowlinks = make([]int, n)
		visited  = make([]bool, n)
		cycles   [][]InternedString
	)

	var strongConnect func(v int)
	strongConnect = func(v int) {
		visited[v] = true
		indices[v] = counter
		lowlinks[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range deps[v] {
			if inDegree[w] == 0 {
				continue
			}
			if !visited[w] {
				strongConnect(w)
				lowlinks[v] = min(lowlinks[v], lowlinks[w])
			} else if onStack[w] {
				lowlinks[v] = min(lowlinks[v], indices[w])
			}
		}

		if lowlinks[v] != indices[v] {
			return
		}

		component := make(map[int]bool)
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			component[w] = true
			if w == v {
				break
			}
		}

		if len(component) > 1 || slices.Contains(deps[v], v) {
			cycles = append(cycles, loopThrough(names, deps, component))
		}
	}

	for v := range n {
		if inDegree[v] > 0 && !visited[v] {
			strongConnect(v)
		}
	}

	slices.SortFunc(cycles, func(a, b []InternedString) int {
		return a[0].Compare(b[0])
	})
	return cycles
}

// loopThrough returns the shortest dependency loop that starts and ends at the
// smallest member of component, walking only edges inside the component.
func loopThrough(names []InternedString, deps [][]int, component map[int]bool) []InternedString {
	start := -1
	for idx := range component {
		if start == -1 || idx < start {
			start = idx
		}
	}

	prev := map[int]int{start: -1}
	queue := []int{start}
	last := -1
	for len(queue) > 0 && last == -1 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range deps[v] {
			if !component[w] {
				continue
			}
			if w == start {
				last = v
				break
			}
			if _, seen := prev[w]; !seen {
				prev[w] = v
				queue = append(queue, w)
			}
		}
	}

	var loop []InternedString
	for v := last; v != -1; v = prev[v] {
		loop = append(loop, names[v])
	}
	slices.Reverse(loop)
	return loop
}

// indexHeap is a min-heap of arena indices. Indices follow name order, so popping
// the minimum yields the lexicographically smallest ready package.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *indexHeap) Push(x any) {
	*h = append(*h, x.(int)) //nolint:forcetypeassert // heap only holds ints
}

func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
