package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// CLI output styles. Hex pairs match the wizard palette.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// cardStyle returns a lipgloss style for a rounded-border card.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// kvPair is one aligned label/value line inside a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders pairs as aligned "key: value" lines.
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
		b.WriteString(cliMuted.Render(fmt.Sprintf("%-*s", width+1, p.key+":")))
		b.WriteString(" ")
		b.WriteString(p.value)
	}
	return b.String()
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(title string, details ...string) string {
	titleLine := cliSuccess.Render("✓") + " " + title
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		for i, d := range details {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(d)
		}
	}
	return cardStyle().Render(body.String())
}

// renderNextSteps renders next-steps markdown for the terminal. Headless
// runs and render failures fall back to the raw markdown.
func renderNextSteps(markdown string, headless bool) string {
	if headless {
		return markdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
