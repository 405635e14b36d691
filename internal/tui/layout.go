package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

const (
	headerLines = 4
	footerLines = 2
	paneGap     = 2
	minBodyH    = 8
	minListW    = 30
	// mapTitleLines are the "Map View" and "Selected:" lines above the canvas.
	mapTitleLines = 2
	// detailLines is the fixed height of the selected-record card under the map.
	detailLines = 7
)

// paneLayout is the screen geometry for a terminal size. Both View and mouse
// hit-testing derive from it so a click maps to the cell that was drawn there.
type paneLayout struct {
	bodyTop int
	bodyH   int
	listW   int
	mapX    int
	mapW    int
}

func computeLayout(width, height int) paneLayout {
	bodyH := height - headerLines - footerLines
	if bodyH < minBodyH {
		bodyH = minBodyH
	}
	listW := width / 2
	if listW < minListW {
		listW = minListW
	}
	mapW := width - listW - paneGap
	if mapW < 0 {
		mapW = 0
	}
	return paneLayout{
		bodyTop: headerLines,
		bodyH:   bodyH,
		listW:   listW,
		mapX:    listW + paneGap,
		mapW:    mapW,
	}
}

// canvasRect is where the map canvas is drawn, in screen coordinates.
func (l paneLayout) canvasRect(hasSelection bool) (x, y, w, h int) {
	h = l.bodyH - mapTitleLines
	if hasSelection {
		h -= detailLines
	}
	if h < 0 {
		h = 0
	}
	return l.mapX, l.bodyTop + mapTitleLines, l.mapW, h
}

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall so lipgloss.JoinHorizontal keeps panes aligned.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			switch {
			case width <= 0:
				ln = ""
			case width == 1:
				ln = xansi.Cut(ln, 0, 1)
			default:
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// truncateText cuts s to width display columns.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return xansi.Cut(s, 0, 1)
	}
	return xansi.Cut(s, 0, width-1) + "…"
}
