package report

import "github.com/charmbracelet/lipgloss"

// Icons.
const (
	iconCheck   = "✓"
	iconCross   = "✗"
	iconWarning = "!"
	iconTilde   = "~"
	iconCircle  = "○"
)

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")
	colorGreen = lipgloss.Color("42")
	colorRed   = lipgloss.Color("196")
	colorAmber = lipgloss.Color("214")
)

// styles are bound to one renderer so that color support follows the output writer.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	warn    lipgloss.Style
	pending lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite),
		heading: r.NewStyle().
			Bold(true).
			Foreground(colorIris),
		name: r.NewStyle().
			Bold(true),
		muted: r.NewStyle().
			Foreground(colorSlate),
		ok: r.NewStyle().
			Foreground(colorGreen),
		failed: r.NewStyle().
			Foreground(colorRed),
		warn: r.NewStyle().
			Foreground(colorAmber),
		pending: r.NewStyle().
			Foreground(colorSlate).
			Faint(true),
	}
}
