package tui

import (
	"strconv"
	"strings"

	"jobfinder/internal/directory"
	"jobfinder/internal/mapview"
)

// mapFrame is the frame for the session's current visible set and selection.
func mapFrame(s *directory.Session) mapview.Frame {
	if sel, ok := s.Selected(); ok {
		return mapview.Compute(s.Visible(), &sel)
	}
	return mapview.Compute(s.Visible(), nil)
}

func mapCanvas(s *directory.Session, l paneLayout) mapview.Canvas {
	_, hasSel := s.SelectedID()
	_, _, w, h := l.canvasRect(hasSel)
	return mapview.Render(mapFrame(s), w, h, mapGlyphs())
}

func renderMapPane(s *directory.Session, l paneLayout) string {
	sel, hasSel := s.Selected()
	c := mapCanvas(s, l)

	parts := []string{
		stylePaneTitle.Render("Map View") + styleMuted.Render(" "+glyphSeparator()+" "+frameSummary(c)),
		styleMuted.Render("Selected: none"),
	}
	if hasSel {
		parts[1] = styleMuted.Render("Selected: ") + styleSelected.Render(sel.CompanyName)
	}
	if c.Height > 0 {
		parts = append(parts, styleCanvas(c))
	}
	if hasSel {
		parts = append(parts, renderDetail(sel, s.IsContacted(sel.ID), l.mapW))
	}
	return normalizePane(strings.Join(parts, "\n"), l.mapW, l.bodyH)
}

func frameSummary(c mapview.Canvas) string {
	f := c.Frame
	return "center " + f.Center.String() + " zoom " + strconv.Itoa(f.Zoom) + " markers " + strconv.Itoa(len(f.Markers))
}

// styleCanvas colors marker and grid cells.
func styleCanvas(c mapview.Canvas) string {
	if colorsDisabled() {
		return c.String()
	}
	var b strings.Builder
	for y, row := range c.Cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			ch := string(cell.Rune)
			switch {
			case cell.Selected:
				b.WriteString(styleSelected.Render(ch))
			case cell.Count > 0:
				b.WriteString(styleMarker.Render(ch))
			case cell.Rune != ' ':
				b.WriteString(styleGrid.Render(ch))
			default:
				b.WriteString(ch)
			}
		}
	}
	return b.String()
}

// markerAt maps a screen position to the marker drawn there.
func markerAt(s *directory.Session, l paneLayout, x, y int) (string, bool) {
	_, hasSel := s.SelectedID()
	cx, cy, w, h := l.canvasRect(hasSel)
	if x < cx || x >= cx+w || y < cy || y >= cy+h {
		return "", false
	}
	return mapCanvas(s, l).At(x-cx, y-cy)
}
