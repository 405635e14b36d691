package mapview

import (
	"math"
	"strings"
)

// Glyphs are the runes used to draw a canvas.
type Glyphs struct {
	Empty    rune
	Grid     rune
	Marker   rune
	Selected rune
	// Stack marks a cell holding more than one marker.
	Stack rune
}

var (
	UnicodeGlyphs = Glyphs{Empty: ' ', Grid: '·', Marker: '●', Selected: '◉', Stack: '◍'}
	ASCIIGlyphs   = Glyphs{Empty: ' ', Grid: '.', Marker: '*', Selected: '@', Stack: '#'}
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// pixelsPerColumn maps slippy-map zoom levels onto terminal columns: at zoom z
// the world is 256*2^z pixels wide and one column stands in for this many.
const pixelsPerColumn = 8.0

// gridStep is the graticule spacing in degrees.
const gridStep = 10.0

type Cell struct {
	Rune rune
	// MarkerID is the id of the topmost marker drawn in this cell, if any.
	MarkerID string
	Selected bool
	// Count is the number of markers projected onto this cell.
	Count int
}

// Canvas is a rendered frame on a width x height character grid.
type Canvas struct {
	Width  int
	Height int
	Cells  [][]Cell
	Frame  Frame
}

// DegreesPerColumn is the horizontal scale at zoom.
func DegreesPerColumn(zoom int) float64 {
	return 360.0 / (256.0 * math.Pow(2, float64(zoom))) * pixelsPerColumn
}

// Project maps a coordinate to a cell, centred on f.Center. ok is false
// when the point falls outside the canvas.
func Project(f Frame, lat, lng float64, width, height int) (x, y int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	degCol := DegreesPerColumn(f.Zoom)
	degRow := degCol * cellAspect
	fx := float64(width)/2 + (lng-f.Center.Lng)/degCol
	fy := float64(height)/2 - (lat-f.Center.Lat)/degRow
	x = int(math.Floor(fx))
	y = int(math.Floor(fy))
	if x < 0 || x >= width || y < 0 || y >= height {
		return x, y, false
	}
	return x, y, true
}

// Render draws f. Selected markers are drawn last so they stay on top.
func Render(f Frame, width, height int, g Glyphs) Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := Canvas{Width: width, Height: height, Frame: f, Cells: make([][]Cell, height)}
	for y := range c.Cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Rune: g.Empty}
		}
		c.Cells[y] = row
	}
	c.drawGraticule(g)

	for pass := 0; pass < 2; pass++ {
		for _, m := range f.Markers {
			if m.Selected != (pass == 1) {
				continue
			}
			x, y, ok := Project(f, m.Location.Lat, m.Location.Lng, width, height)
			if !ok {
				continue
			}
			cell := &c.Cells[y][x]
			cell.Count++
			cell.MarkerID = m.ID
			cell.Selected = m.Selected
			switch {
			case m.Selected:
				cell.Rune = g.Selected
			case cell.Count > 1:
				cell.Rune = g.Stack
			default:
				cell.Rune = g.Marker
			}
		}
	}
	return c
}

func (c *Canvas) drawGraticule(g Glyphs) {
	if c.Width == 0 || c.Height == 0 {
		return
	}
	degCol := DegreesPerColumn(c.Frame.Zoom)
	degRow := degCol * cellAspect
	// Skip the grid when lines would crowd together.
	if gridStep/degCol < 2 || gridStep/degRow < 1 {
		return
	}
	for y := 0; y < c.Height; y++ {
		lat := c.Frame.Center.Lat - (float64(y)+0.5-float64(c.Height)/2)*degRow
		onLat := crossesMultiple(lat, degRow/2, gridStep)
		for x := 0; x < c.Width; x++ {
			lng := c.Frame.Center.Lng + (float64(x)+0.5-float64(c.Width)/2)*degCol
			if onLat || crossesMultiple(lng, degCol/2, gridStep) {
				c.Cells[y][x].Rune = g.Grid
			}
		}
	}
}

// crossesMultiple reports whether [v-half, v+half) contains a multiple of step.
func crossesMultiple(v, half, step float64) bool {
	lo := math.Ceil((v - half) / step)
	return lo*step < v+half
}

// At returns the marker id drawn at (x, y), if any.
func (c Canvas) At(x, y int) (string, bool) {
	if y < 0 || y >= len(c.Cells) || x < 0 || x >= len(c.Cells[y]) {
		return "", false
	}
	id := c.Cells[y][x].MarkerID
	return id, id != ""
}

// Visible reports how many markers landed inside the canvas.
func (c Canvas) Visible() int {
	n := 0
	for _, row := range c.Cells {
		for _, cell := range row {
			n += cell.Count
		}
	}
	return n
}

func (c Canvas) String() string {
	var b strings.Builder
	for y, row := range c.Cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}
