package ui

import (
	"strings"

	"memento/internal/api"
	"memento/internal/humanize"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Detail screens render from the collection copy already held for this
// session; no extra fetch is issued when opening one.

func (m *App) updateViewportContent() {
	switch m.screen {
	case screenConversationDetail:
		if c, ok := m.conversationByID(m.detailID); ok {
			m.viewport.SetContent(m.renderConversationDetail(c))
			return
		}
	case screenPersonDetail:
		if p, ok := m.personByID(m.detailID); ok {
			m.viewport.SetContent(m.renderPersonDetail(p))
			return
		}
	}
	m.viewport.SetContent("")
}

func (m *App) conversationByID(id string) (api.Conversation, bool) {
	for _, c := range m.conversations {
		if c.ID == id {
			return c, true
		}
	}
	return api.Conversation{}, false
}

func (m *App) personByID(id string) (api.Person, bool) {
	for _, p := range m.people {
		if p.ID == id {
			return p, true
		}
	}
	return api.Person{}, false
}

func makeRow(k, v string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, styleField.Render(k), styleVal.Render(v))
}

func (m *App) renderConversationDetail(c api.Conversation) string {
	width := m.viewport.Width
	if width < minViewportWidth {
		width = minViewportWidth
	}

	sections := []string{
		styleDetailHeaderBlock.Width(width).Render(humanize.ConversationTitle(c)),
		makeRow("When:", humanize.RelTime(c.CreatedAt, m.now())),
		"",
		styleSectionTitle.Render("Summary"),
		renderMarkdown(c.Summary, m.outputFormat, width),
		"",
		styleSectionTitle.Render("Transcript"),
	}

	if len(c.Transcript) == 0 {
		sections = append(sections, styleEmptyText.Render("No transcript recorded"))
	} else {
		for _, entry := range c.Transcript {
			line := styleSpeaker.Render(entry.Speaker+":") + " " + entry.Text
			sections = append(sections, wordwrap.String(line, width))
		}
	}

	return strings.Join(sections, "\n")
}

func (m *App) renderPersonDetail(p api.Person) string {
	width := m.viewport.Width
	if width < minViewportWidth {
		width = minViewportWidth
	}

	sections := []string{
		styleDetailHeaderBlock.Width(width).Render(p.Name),
		makeRow("Relation:", styleRelation.Render(p.Relation)),
		makeRow("Added:", humanize.RelTime(p.CreatedAt, m.now())),
	}
	if p.Photo != "" {
		sections = append(sections, makeRow("Photo:", p.Photo))
	}
	sections = append(sections,
		"",
		styleSectionTitle.Render("About"),
		renderMarkdown(p.Summary, m.outputFormat, width),
	)

	return strings.Join(sections, "\n")
}
