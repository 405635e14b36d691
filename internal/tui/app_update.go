package tui

import (
	"time"

	"jobfinder/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case minibufferTickMsg:
		if m.minibufferText != "" && time.Since(m.minibufferSetAt) >= minibufferAutoClearAfter {
			m.minibufferText = ""
		}
		return m, minibufferTick()

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.AcceptSearch), key.Matches(msg, m.keys.DiscardSearch):
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.session.SetSearch(v)
		m.syncList()
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.session.ClearSelection()
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.NextRegion):
		m.session.SetRegion(cycleRegion(m.session.Criteria().Region, 1))
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.PrevRegion):
		m.session.SetRegion(cycleRegion(m.session.Criteria().Region, -1))
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.NextIndustry):
		m.session.SetIndustry(cycleIndustry(m.session.Criteria().Industry, 1))
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.PrevIndustry):
		m.session.SetIndustry(cycleIndustry(m.session.Criteria().Industry, -1))
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		if !m.session.Criteria().Active() {
			return m, nil
		}
		m.session.ClearFilters()
		m.search.SetValue("")
		m.syncList()
		m.showMinibuffer("Filters cleared")
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if id, ok := m.cursorRecordID(); ok {
			m.session.Select(id)
			m.syncList()
		}
		return m, nil

	case key.Matches(msg, m.keys.Contact):
		id, ok := m.cursorRecordID()
		if !ok {
			return m, nil
		}
		rec, _ := m.session.Records().Find(id)
		if m.session.ToggleContacted(id) {
			m.showMinibuffer("Marked " + rec.CompanyName + " as contacted")
		} else {
			m.showMinibuffer("Unmarked " + rec.CompanyName)
		}
		m.syncList()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	l := computeLayout(m.width, m.height)

	if id, ok := markerAt(m.session, l, msg.X, msg.Y); ok {
		m.session.Select(id)
		m.syncList()
		m.moveCursorTo(id)
		return m, nil
	}
	if id, ok := m.listRowAt(l, msg.X, msg.Y); ok {
		m.session.Select(id)
		m.syncList()
		m.moveCursorTo(id)
	}
	return m, nil
}

// listRowAt maps a screen position inside the list pane to a record id.
func (m appModel) listRowAt(l paneLayout, x, y int) (string, bool) {
	if x < 0 || x >= l.listW || y < l.bodyTop {
		return "", false
	}
	d := newRecordDelegate()
	stride := d.Height() + d.Spacing()
	row := y - l.bodyTop
	if row%stride >= d.Height() {
		return "", false
	}
	start, _ := m.list.Paginator.GetSliceBounds(len(m.list.Items()))
	idx := start + row/stride
	items := m.list.Items()
	if idx >= len(items) || row/stride >= m.list.Paginator.PerPage {
		return "", false
	}
	it, ok := items[idx].(recordItem)
	if !ok {
		return "", false
	}
	return it.rec.ID, true
}

// cycleRegion steps through "all" followed by every region.
func cycleRegion(cur model.Region, step int) model.Region {
	opts := append([]model.Region{""}, model.Regions...)
	return opts[cycleIndex(indexOf(opts, cur), step, len(opts))]
}

func cycleIndustry(cur model.Industry, step int) model.Industry {
	opts := append([]model.Industry{""}, model.Industries...)
	return opts[cycleIndex(indexOf(opts, cur), step, len(opts))]
}

func indexOf[T comparable](opts []T, v T) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

func cycleIndex(i, step, n int) int {
	return ((i+step)%n + n) % n
}
