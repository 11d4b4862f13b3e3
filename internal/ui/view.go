package ui

import (
	"fmt"
	"strings"

	"memento/internal/api"
	"memento/internal/humanize"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.screen {
	case screenLogin:
		return m.login.view(m.loginErr, m.loggingIn, m.spinner.View())
	case screenConversationDetail, screenPersonDetail:
		return m.renderDetailScreen()
	}
	return m.renderDashboard()
}

func (m *App) renderDashboard() string {
	header := m.renderHeader()

	if m.pageLoading() {
		body := lipgloss.NewStyle().Padding(2, 4).Render(
			m.spinner.View() + " Loading your dashboard...")
		return header + "\n" + body
	}

	innerWidth := clampDimension(m.width-6, minViewportWidth, m.width)

	conversations := m.renderSectionPane(
		"Recent Conversations",
		m.renderConversationRows(innerWidth),
		innerWidth,
		m.focus == FocusConversations,
	)
	people := m.renderSectionPane(
		"People",
		m.renderPeopleRows(innerWidth),
		innerWidth,
		m.focus == FocusPeople,
	)

	footer := styleFooter.Render("[ tab ] Switch Section  [ j/k ] Move  [ enter ] Open  [ r ] Refresh  [ q ] Quit")

	return strings.Join([]string{header, conversations, people, footer}, "\n")
}

func (m *App) renderHeader() string {
	title := "MEMENTO"
	if m.version != "" {
		title = fmt.Sprintf("MEMENTO v%s", m.version)
	}
	header := styleAppHeader.Render(title)
	if m.user.Name != "" {
		header += " " + styleHeaderNote.Render("Welcome back, "+m.user.Name)
	}
	if m.statusNote != "" {
		header += " " + styleStatusNote.Render(m.statusNote)
	}
	return header
}

func (m *App) renderSectionPane(title, body string, width int, focused bool) string {
	pane := stylePane
	if focused {
		pane = stylePaneFocused
	}
	content := styleSectionTitle.Render(title) + "\n" + body
	return pane.Width(width).Render(content)
}

func (m *App) renderConversationRows(width int) string {
	switch resolveSection(m.conversationsLoading, len(m.conversations)) {
	case SectionLoading:
		return m.spinner.View() + " Loading conversations..."
	case SectionEmpty:
		return styleEmptyText.Render("No conversations yet")
	}

	rows := make([]string, 0, len(m.conversations))
	for i, c := range m.conversations {
		selected := m.focus == FocusConversations && i == m.convCursor
		rows = append(rows, m.renderRow(
			humanize.ConversationTitle(c),
			humanize.RelTime(c.CreatedAt, m.now()),
			width,
			selected,
		))
	}
	return strings.Join(rows, "\n")
}

func (m *App) renderPeopleRows(width int) string {
	switch resolveSection(m.peopleLoading, len(m.people)) {
	case SectionLoading:
		return m.spinner.View() + " Loading people..."
	case SectionEmpty:
		return styleEmptyText.Render("No people added yet")
	}

	rows := make([]string, 0, len(m.people))
	for i, p := range m.people {
		selected := m.focus == FocusPeople && i == m.peopleCursor
		rows = append(rows, m.renderRow(
			personLabel(p),
			humanize.RelTime(p.CreatedAt, m.now()),
			width,
			selected,
		))
	}
	return strings.Join(rows, "\n")
}

// renderRow lays out "label · when" with a selection marker, truncating
// ANSI-aware so styled rows never wrap the pane. The selection highlight
// covers the whole row; unselected rows dim the timestamp suffix.
func (m *App) renderRow(label, when string, width int, selected bool) string {
	if selected {
		row := fmt.Sprintf("▸ %s  ·  %s", label, when)
		return styleSelected.Render(ansi.Truncate(row, width-2, "…"))
	}
	row := "  " + styleRowTitle.Render(label) + styleRowMeta.Render("  ·  "+when)
	return ansi.Truncate(row, width-2, "…")
}

func personLabel(p api.Person) string {
	if strings.TrimSpace(p.Relation) == "" {
		return p.Name
	}
	return fmt.Sprintf("%s — %s", p.Name, p.Relation)
}

func (m *App) renderDetailScreen() string {
	header := m.renderHeader()
	footer := styleFooter.Render("[ esc ] Back  [ y ] Copy ID  [ j/k ] Scroll")
	return header + "\n" + m.viewport.View() + "\n" + footer
}
