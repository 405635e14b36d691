package tui

import (
	"strconv"
	"strings"

	"jobfinder/internal/directory"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading…"
	}
	l := computeLayout(m.width, m.height)

	header := normalizePane(m.viewHeader(), m.width, headerLines)

	var body string
	if m.showHelp {
		body = normalizePane(m.viewHelp(), m.width, l.bodyH)
	} else {
		listPane := normalizePane(m.viewList(), l.listW, l.bodyH)
		gap := normalizePane("", paneGap, l.bodyH)
		mapPane := renderMapPane(m.session, l)
		body = lipgloss.JoinHorizontal(lipgloss.Top, listPane, gap, mapPane)
	}

	footer := normalizePane(m.viewFooter(), m.width, footerLines)
	return header + "\n" + body + "\n" + footer
}

func (m appModel) viewHeader() string {
	title := styleTitle.Render("Job Finder")
	contacted := styleContactCounter.Render(strconv.Itoa(m.session.ContactedCount()) + " contacted")
	visible := styleCounter.Render(strconv.Itoa(m.session.VisibleCount()) + " companies")
	source := styleSubtitle.Render(m.source)
	line1 := title + "  " + contacted + " " + visible + "  " + source

	return line1 + "\n\n" + m.viewFilterBar() + "\n"
}

func (m appModel) viewFilterBar() string {
	c := m.session.Criteria()
	sep := styleMuted.Render(" " + glyphSeparator() + " ")

	searchBox := m.search.View()
	if m.focus != focusSearch && m.search.Value() == "" {
		searchBox = styleMuted.Render("/ search")
	}
	parts := []string{
		searchBox,
		styleMuted.Render("State: ") + regionLabel(c),
		styleMuted.Render("Industry: ") + industryLabel(c),
	}
	if c.Active() {
		parts = append(parts, styleClear.Render("x Clear"))
	}
	return strings.Join(parts, sep)
}

func regionLabel(c directory.Criteria) string {
	if c.Region == "" {
		return "All States"
	}
	return regionBadge(c.Region)
}

func industryLabel(c directory.Criteria) string {
	if c.Industry == "" {
		return "All Industries"
	}
	return industryBadge(c.Industry)
}

func (m appModel) viewList() string {
	if len(m.list.Items()) == 0 {
		return styleTitle.Render("No jobs found") + "\n" + styleMuted.Render("Try adjusting your filters")
	}
	return m.list.View()
}

func (m appModel) viewHelp() string {
	h := m.help
	h.ShowAll = true
	return stylePaneTitle.Render("Keys") + "\n\n" + h.View(m.keys)
}

func (m appModel) viewFooter() string {
	var keys string
	if m.focus == focusSearch {
		keys = m.help.View(searchKeys{m.keys})
	} else {
		keys = m.help.View(m.keys)
	}
	return styleMuted.Render(m.minibufferText) + "\n" + keys
}
