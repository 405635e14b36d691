package tui

import (
	"io"
	"log/slog"
	"time"

	"jobfinder/internal/directory"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusList focus = iota
	focusSearch
)

const minibufferAutoClearAfter = 3 * time.Second

type minibufferTickMsg struct{}

type appModel struct {
	session *directory.Session
	source  string
	logger  *slog.Logger

	width  int
	height int

	focus  focus
	list   list.Model
	search textinput.Model

	keys     keyMap
	help     help.Model
	showHelp bool

	minibufferText  string
	minibufferSetAt time.Time
}

func newAppModel(s *directory.Session, source string, logger *slog.Logger) appModel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l := list.New(nil, newRecordDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowPagination(true)
	// Filtering belongs to the session; the list only displays its result.
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Placeholder = "Search by company, contact or address"
	ti.Prompt = "Search: "
	ti.CharLimit = 120

	m := appModel{
		session: s,
		source:  source,
		logger:  logger,
		list:    l,
		search:  ti,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.syncList()
	return m
}

// syncList rebuilds the list from the session's visible set. The cursor
// stays on the record it was on, falling back to the selection.
func (m *appModel) syncList() {
	var cursorID string
	if it, ok := m.list.SelectedItem().(recordItem); ok {
		cursorID = it.rec.ID
	}
	selID, hasSel := m.session.SelectedID()

	visible := m.session.Visible()
	items := make([]list.Item, 0, len(visible))
	cursor := -1
	for i, r := range visible {
		items = append(items, recordItem{
			rec:       r,
			contacted: m.session.IsContacted(r.ID),
			selected:  hasSel && r.ID == selID,
		})
		if r.ID == cursorID {
			cursor = i
		}
	}
	m.list.SetItems(items)
	if len(items) == 0 {
		return
	}
	if cursor >= 0 {
		m.list.Select(cursor)
		return
	}
	m.list.Select(0)
	if hasSel {
		m.moveCursorTo(selID)
	}
}

// moveCursorTo puts the list cursor on id if it is listed.
func (m *appModel) moveCursorTo(id string) {
	for i, it := range m.list.Items() {
		if it.(recordItem).rec.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *appModel) cursorRecordID() (string, bool) {
	it, ok := m.list.SelectedItem().(recordItem)
	if !ok {
		return "", false
	}
	return it.rec.ID, true
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
	m.minibufferSetAt = time.Now()
}

func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height
	l := computeLayout(width, height)
	m.list.SetSize(l.listW, l.bodyH)
	m.search.Width = l.listW - len(m.search.Prompt) - 1
	m.help.Width = width
}

func minibufferTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return minibufferTickMsg{} })
}

func (m appModel) Init() tea.Cmd { return minibufferTick() }
