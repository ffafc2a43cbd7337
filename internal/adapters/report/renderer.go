// Package report renders resolution results for humans.
package report

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
)

var _ ports.Reporter = (*Renderer)(nil)

// Renderer implements ports.Reporter with lipgloss styling.
type Renderer struct {
	w     io.Writer
	style styles
}

// New creates a Renderer writing to stdout.
func New() *Renderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Renderer writing to w. Colors are only emitted when w
// is a terminal.
func NewWithWriter(w io.Writer) *Renderer {
	return &Renderer{w: w, style: newStyles(lipgloss.NewRenderer(w))}
}

// Summary prints what a fetch run did followed by its outcome.
func (r *Renderer) Summary(res *domain.Resolution) error {
	var b strings.Builder

	for _, name := range res.Fetched() {
		fmt.Fprintf(&b, "%s fetched %s\n", r.style.ok.Render(iconCheck), r.style.name.Render(name.String()))
	}
	for _, name := range r.present(res) {
		fmt.Fprintf(&b, "%s %s already exists\n", r.style.muted.Render(iconTilde), name.String())
	}
	for _, name := range res.Failed() {
		fmt.Fprintf(&b, "%s failed to fetch %s", r.style.failed.Render(iconCross), r.style.name.Render(name.String()))
		if err := res.FetchErrors[name]; err != nil {
			fmt.Fprintf(&b, ": %s", r.style.muted.Render(err.Error()))
		}
		b.WriteString("\n")
	}
	r.writeUnknown(&b, res)
	r.writeOutcome(&b, res)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Status prints the full workspace status.
func (r *Renderer) Status(res *domain.Resolution) error {
	var b strings.Builder

	b.WriteString(r.style.title.Render("icws"))
	b.WriteString(" ")
	b.WriteString(r.style.muted.Render(res.Layout.Root))
	b.WriteString("\n\n")

	r.writePackages(&b, res)
	r.writeMissing(&b, res)
	r.writeUnknown(&b, res)
	r.writeDrift(&b, res)
	r.writeOutcome(&b, res)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) present(res *domain.Resolution) []domain.InternedString {
	var present []domain.InternedString
	for name, status := range res.Fetches {
		if status == domain.FetchStatusPresent {
			present = append(present, name)
		}
	}
	return domain.CanonicalizeIDs(present)
}

func (r *Renderer) heading(b *strings.Builder, title string, n int) {
	fmt.Fprintf(b, "%s %s\n", r.style.heading.Render(title), r.style.muted.Render(fmt.Sprintf("(%d)", n)))
}

func (r *Renderer) writePackages(b *strings.Builder, res *domain.Resolution) {
	if res.Snapshot == nil {
		return
	}
	r.heading(b, "Packages", res.Snapshot.Len())

	width := 0
	for _, name := range res.Snapshot.Names() {
		width = max(width, len(name.String()))
	}
	for pkg := range res.Snapshot.Packages() {
		deps := strings.Join(domain.Strings(pkg.Dependencies), ", ")
		fmt.Fprintf(b, "  %s %-*s  %s\n",
			r.style.ok.Render(iconCheck), width, pkg.Name.String(), r.style.muted.Render(deps))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeMissing(b *strings.Builder, res *domain.Resolution) {
	missing := res.Classification.Missing
	if len(missing) == 0 {
		return
	}
	r.heading(b, "To fetch", len(missing))
	for _, name := range missing {
		fmt.Fprintf(b, "  %s %s\n", r.style.pending.Render(iconCircle), name.String())
	}
	b.WriteString("\n")
}

func (r *Renderer) writeUnknown(b *strings.Builder, res *domain.Resolution) {
	unknown := res.Unknown()
	if len(unknown) == 0 {
		return
	}
	r.heading(b, "Unknown", len(unknown))
	for _, name := range unknown {
		fmt.Fprintf(b, "  %s %s", r.style.warn.Render(iconWarning), name.String())
		if users := requiredBy(res, name); len(users) > 0 {
			fmt.Fprintf(b, " %s", r.style.muted.Render("required by "+strings.Join(users, ", ")))
		}
		if hints := res.Suggestions[name]; len(hints) > 0 {
			fmt.Fprintf(b, " %s", r.style.muted.Render("(did you mean "+strings.Join(hints, ", ")+"?)"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (r *Renderer) writeDrift(b *strings.Builder, res *domain.Resolution) {
	if len(res.Drifted) == 0 {
		return
	}
	r.heading(b, "Changed since fetch", len(res.Drifted))
	for _, name := range res.Drifted {
		fmt.Fprintf(b, "  %s %s", r.style.warn.Render(iconTilde), name.String())
		if rec, ok := res.Journal[name]; ok {
			fmt.Fprintf(b, " %s", r.style.muted.Render("from "+rec.Locator))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (r *Renderer) writeOutcome(b *strings.Builder, res *domain.Resolution) {
	if res.Outcome.IsCyclic() {
		if cycles := res.Outcome.Cycles(); len(cycles) > 0 {
			r.heading(b, "Cycles", len(cycles))
			for _, c := range cycles {
				path := append(domain.Strings(c), c[0].String())
				fmt.Fprintf(b, "  %s %s\n", r.style.failed.Render(iconCross), strings.Join(path, " -> "))
			}
		}
		if pending := res.Outcome.Pending(); len(pending) > 0 {
			r.heading(b, "Blocked", len(pending))
			names := make([]domain.InternedString, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			slices.SortFunc(names, domain.InternedString.Compare)
			for _, name := range names {
				fmt.Fprintf(b, "  %s %s %s\n",
					r.style.failed.Render(iconCross),
					name.String(),
					r.style.muted.Render("waits on "+strings.Join(domain.Strings(pending[name]), ", ")),
				)
			}
		}
		return
	}

	order := res.Outcome.Order()
	r.heading(b, "Build order", len(order))
	for i, name := range order {
		fmt.Fprintf(b, "  %s %s\n", r.style.muted.Render(fmt.Sprintf("%d.", i+1)), name.String())
	}
}

// requiredBy lists the known packages that declare name as a dependency.
func requiredBy(res *domain.Resolution, name domain.InternedString) []string {
	if res.Snapshot == nil {
		return nil
	}
	var users []string
	for pkg := range res.Snapshot.Packages() {
		if _, found := slices.BinarySearchFunc(pkg.Dependencies, name, domain.InternedString.Compare); found {
			users = append(users, pkg.Name.String())
		}
	}
	return users
}
