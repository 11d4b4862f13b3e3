package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	cPurple     = lipgloss.Color("99")
	cCyan       = lipgloss.Color("39")
	cRed        = lipgloss.Color("203")
	cGold       = lipgloss.Color("220")
	cGray       = lipgloss.Color("240")
	cBrightGray = lipgloss.Color("246")
	cLightGray  = lipgloss.Color("250")
	cWhite      = lipgloss.Color("255")
	cHighlight  = lipgloss.Color("57")
	cField      = lipgloss.Color("63")

	styleAppHeader = lipgloss.NewStyle().
			Foreground(cWhite).
			Background(cPurple).
			Bold(true).
			Padding(0, 1)

	styleHeaderNote = lipgloss.NewStyle().
			Foreground(cLightGray)

	styleSectionTitle = lipgloss.NewStyle().
				Foreground(cGold).
				Bold(true)

	styleSelected = lipgloss.NewStyle().
			Background(cHighlight).
			Foreground(cWhite).
			Bold(true)

	styleRowTitle = lipgloss.NewStyle().Foreground(cWhite)
	styleRowMeta  = lipgloss.NewStyle().Foreground(cBrightGray)
	styleRelation = lipgloss.NewStyle().Foreground(cCyan)

	styleEmptyText = lipgloss.NewStyle().
			Foreground(cGray).
			Italic(true)

	stylePane = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(cGray).
			Padding(0, 1)

	stylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(cPurple).
				Padding(0, 1)

	styleDetailHeaderBlock = lipgloss.NewStyle().
				Background(cHighlight).
				Foreground(cWhite).
				Bold(true).
				Padding(0, 1)

	styleField = lipgloss.NewStyle().
			Foreground(cField).
			Bold(true).
			Width(10)

	styleVal = lipgloss.NewStyle().Foreground(cWhite)

	styleSpeaker = lipgloss.NewStyle().
			Foreground(cGold).
			Bold(true)

	styleSpinner = lipgloss.NewStyle().Foreground(cPurple)

	styleLoginTitle = lipgloss.NewStyle().
			Foreground(cPurple).
			Bold(true).
			MarginBottom(1)

	styleLoginError = lipgloss.NewStyle().Foreground(cRed)

	styleFooter = lipgloss.NewStyle().Foreground(cLightGray)

	styleStatusNote = lipgloss.NewStyle().Foreground(cGold)
)

// glamourStyleFor maps the configured output format to a glamour style name.
func glamourStyleFor(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "light":
		return "light"
	case "plain":
		return "notty"
	default:
		return "dark"
	}
}

// renderMarkdown renders markdown for the detail pane, falling back to a
// plain word wrap if the renderer cannot be built.
func renderMarkdown(content, format string, width int) string {
	if width < 1 {
		width = 1
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyleFor(format)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(content, width)
	}
	out, err := renderer.Render(content)
	if err != nil {
		return wordwrap.String(content, width)
	}
	return strings.TrimRight(out, "\n")
}
