package tui

import (
	"fmt"
	"io"
	"strings"

	"jobfinder/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// recordItem is one row of the visible list.
type recordItem struct {
	rec       model.Record
	contacted bool
	selected  bool
}

func (i recordItem) FilterValue() string { return i.rec.CompanyName }
func (i recordItem) Title() string       { return i.rec.CompanyName }

func (i recordItem) Description() string {
	parts := make([]string, 0, 2)
	if name := i.rec.ContactName(); name != "" {
		parts = append(parts, name)
	}
	if i.rec.Address != "" {
		parts = append(parts, i.rec.Address)
	}
	return strings.Join(parts, " "+glyphSeparator()+" ")
}

// recordDelegate renders a record as a two-line card: the company with its
// contacted and selected marks, then badges and contact details.
type recordDelegate struct {
	normal lipgloss.Style
	cursor lipgloss.Style
}

func newRecordDelegate() recordDelegate {
	return recordDelegate{
		normal: lipgloss.NewStyle(),
		cursor: lipgloss.NewStyle().Background(colorSelectedBg),
	}
}

func (d recordDelegate) Height() int  { return 2 }
func (d recordDelegate) Spacing() int { return 1 }
func (d recordDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(recordItem)
	contentW := m.Width()
	if !ok || contentW < 4 {
		return
	}

	mark := styleMuted.Render(glyphNotContacted())
	if it.contacted {
		mark = styleContacted.Render(glyphContacted())
	}
	lead := " "
	if it.selected {
		lead = styleSelected.Render(glyphSelected())
	}
	title := styleTitle.Render(it.rec.CompanyName)
	if it.selected {
		title = styleSelected.Render(it.rec.CompanyName)
	}
	first := lead + " " + mark + " " + title

	second := "    " + regionBadge(it.rec.Region) + " " + industryBadge(it.rec.Industry)
	if desc := it.Description(); desc != "" {
		second += " " + styleMuted.Render(desc)
	}

	style := d.normal
	if index == m.Index() {
		style = d.cursor
	}
	fmt.Fprint(w, style.Render(fitLine(first, contentW))+"\n"+style.Render(fitLine(second, contentW)))
}

// fitLine pads or cuts s to exactly width display columns.
func fitLine(s string, width int) string {
	w := xansi.StringWidth(s)
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	if w > width {
		return truncateText(s, width)
	}
	return s
}
