package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// CLI output styles for consistent pyinit-themed terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#306998", Dark: "#4B8BBE"})
	cliBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symWarning() string { return cliWarn.Render("!") }

// PrintBanner prints the pyinit banner with the current version.
func PrintBanner(ver string) {
	banner := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder).
		Padding(0, 2).
		Render(cliPrimary.Bold(true).Render("pyinit") + cliMuted.Render(" "+ver))
	fmt.Println(banner)
}

// PrintWelcomeMessage prints the pre-wizard intro line.
func PrintWelcomeMessage() {
	fmt.Println(cliMuted.Render("Answer a few questions to set up your Python project. Press Ctrl+C to cancel."))
	fmt.Println()
}

// kvPair is a label/value line inside a rendered card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value pairs.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cliMuted.Render(fmt.Sprintf("%-*s", width+2, p.key)))
		b.WriteString(p.value)
	}
	return b.String()
}

// renderSuccessCard renders a bordered card with a success title and
// optional detail blocks.
func renderSuccessCard(title string, details ...string) string {
	body := symSuccess() + " " + lipgloss.NewStyle().Bold(true).Render(title)
	for _, d := range details {
		if d != "" {
			body += "\n\n" + d
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder).
		Padding(0, 2).
		Render(body)
}

// renderMarkdown renders markdown for the terminal via glamour. It
// falls back to the raw text when stdout is not a terminal or the
// renderer cannot be constructed.
func renderMarkdown(md string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return md
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
