package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Contact       key.Binding
	Search        key.Binding
	Back          key.Binding
	NextRegion    key.Binding
	PrevRegion    key.Binding
	NextIndustry  key.Binding
	PrevIndustry  key.Binding
	ClearFilters  key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
	AcceptSearch  key.Binding
	DiscardSearch key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+p"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+n"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c", "toggle contacted"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		NextRegion: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s/S", "state"),
		),
		PrevRegion: key.NewBinding(
			key.WithKeys("S"),
		),
		NextIndustry: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i/I", "industry"),
		),
		PrevIndustry: key.NewBinding(
			key.WithKeys("I"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		AcceptSearch: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "done"),
		),
		DiscardSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Contact, k.Search, k.NextRegion, k.NextIndustry, k.ClearFilters, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Contact, k.Search, k.ClearFilters},
		{k.NextRegion, k.NextIndustry},
		{k.Help, k.Quit},
	}
}

// searchKeys is the help shown while the search box has focus.
type searchKeys struct{ keyMap }

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.AcceptSearch, k.DiscardSearch}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
