package mapview

import (
	"math"
	"strings"
	"testing"

	"jobfinder/internal/model"
)

func rec(id string, lat, lng float64) model.Record {
	return model.Record{ID: id, CompanyName: "Co " + id, Location: model.Coordinates{Lat: lat, Lng: lng}}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCompute_EmptyUsesDefaults(t *testing.T) {
	t.Parallel()

	f := Compute(nil, nil)
	if f.Center != DefaultCenter {
		t.Fatalf("expected default center %v; got %v", DefaultCenter, f.Center)
	}
	if f.Zoom != ZoomSingle {
		t.Fatalf("expected zoom %d; got %d", ZoomSingle, f.Zoom)
	}
	if len(f.Markers) != 0 {
		t.Fatalf("expected no markers; got %d", len(f.Markers))
	}
}

func TestCompute_MeanCenterAndZoom(t *testing.T) {
	t.Parallel()

	single := Compute([]model.Record{rec("a", -30, 150)}, nil)
	if single.Zoom != ZoomSingle || single.Center != (model.Coordinates{Lat: -30, Lng: 150}) {
		t.Fatalf("unexpected single-record frame: %+v", single)
	}

	f := Compute([]model.Record{rec("a", -30, 150), rec("b", -40, 140), rec("c", -20, 130)}, nil)
	if f.Zoom != ZoomMany {
		t.Fatalf("expected zoom %d for many records; got %d", ZoomMany, f.Zoom)
	}
	if !approx(f.Center.Lat, -30) || !approx(f.Center.Lng, 140) {
		t.Fatalf("expected mean center (-30, 140); got %v", f.Center)
	}
	if len(f.Markers) != 3 || f.Markers[0].ID != "a" || f.Markers[2].ID != "c" {
		t.Fatalf("expected one marker per visible record in order; got %+v", f.Markers)
	}
	for _, m := range f.Markers {
		if m.Selected {
			t.Fatalf("expected no selected markers; got %+v", m)
		}
	}
}

func TestCompute_SelectionShowsOnlySelected(t *testing.T) {
	t.Parallel()

	visible := []model.Record{rec("a", -30, 150), rec("b", -40, 140)}
	sel := visible[1]
	f := Compute(visible, &sel)
	if f.Zoom != ZoomSelected {
		t.Fatalf("expected zoom %d; got %d", ZoomSelected, f.Zoom)
	}
	if f.Center != sel.Location {
		t.Fatalf("expected center on selection %v; got %v", sel.Location, f.Center)
	}
	if len(f.Markers) != 1 || f.Markers[0].ID != "b" || !f.Markers[0].Selected {
		t.Fatalf("expected exactly the selected marker; got %+v", f.Markers)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	visible := []model.Record{rec("a", -30, 150), rec("b", -40, 140)}
	a := Render(Compute(visible, nil), 40, 12, ASCIIGlyphs)
	b := Render(Compute(visible, nil), 40, 12, ASCIIGlyphs)
	if a.String() != b.String() {
		t.Fatalf("expected identical renders:\n%s\n---\n%s", a.String(), b.String())
	}
}

func TestProject_CenterLandsInMiddle(t *testing.T) {
	t.Parallel()

	f := Frame{Center: model.Coordinates{Lat: -30, Lng: 140}, Zoom: ZoomMany}
	x, y, ok := Project(f, -30, 140, 40, 20)
	if !ok || x != 20 || y != 10 {
		t.Fatalf("expected center at (20,10); got (%d,%d) ok=%v", x, y, ok)
	}
	// North is up, east is right.
	xe, yn, _ := Project(f, -25, 145, 40, 20)
	if xe <= x || yn >= y {
		t.Fatalf("expected north-east point up and right of center; got (%d,%d)", xe, yn)
	}
	if _, _, ok := Project(f, 60, 10, 40, 20); ok {
		t.Fatalf("expected far-away point to fall outside the canvas")
	}
}

func TestRender_MarkersAndHitTesting(t *testing.T) {
	t.Parallel()

	visible := []model.Record{rec("sydney", -33.86, 151.21), rec("perth", -31.95, 115.86)}
	f := Compute(visible, nil)
	c := Render(f, 80, 24, ASCIIGlyphs)

	if got := c.Visible(); got != 2 {
		t.Fatalf("expected both markers on canvas; got %d\n%s", got, c.String())
	}
	for _, r := range visible {
		x, y, ok := Project(f, r.Location.Lat, r.Location.Lng, 80, 24)
		if !ok {
			t.Fatalf("expected %s inside canvas", r.ID)
		}
		id, hit := c.At(x, y)
		if !hit || id != r.ID {
			t.Fatalf("expected hit on %s at (%d,%d); got %q hit=%v", r.ID, x, y, id, hit)
		}
		if c.Cells[y][x].Rune != ASCIIGlyphs.Marker {
			t.Fatalf("expected marker rune at (%d,%d); got %q", x, y, c.Cells[y][x].Rune)
		}
	}
	if _, hit := c.At(-1, 0); hit {
		t.Fatalf("expected no hit outside canvas")
	}
	if lines := strings.Split(c.String(), "\n"); len(lines) != 24 {
		t.Fatalf("expected 24 lines; got %d", len(lines))
	}
}

func TestRender_StackedMarkers(t *testing.T) {
	t.Parallel()

	visible := []model.Record{rec("a", -30, 140), rec("b", -30, 140)}
	c := Render(Compute(visible, nil), 20, 10, ASCIIGlyphs)
	x, y, _ := Project(c.Frame, -30, 140, 20, 10)
	cell := c.Cells[y][x]
	if cell.Count != 2 || cell.Rune != ASCIIGlyphs.Stack {
		t.Fatalf("expected stacked cell; got %+v", cell)
	}
	if cell.MarkerID != "b" {
		t.Fatalf("expected topmost marker to be the last drawn; got %q", cell.MarkerID)
	}
}

func TestRender_SelectedGlyph(t *testing.T) {
	t.Parallel()

	sel := rec("a", -30, 140)
	c := Render(Compute([]model.Record{sel}, &sel), 21, 11, UnicodeGlyphs)
	id, ok := c.At(10, 5)
	if !ok || id != "a" || c.Cells[5][10].Rune != UnicodeGlyphs.Selected {
		t.Fatalf("expected selected glyph at center; got %+v", c.Cells[5][10])
	}
}

func TestRender_ZeroSize(t *testing.T) {
	t.Parallel()

	c := Render(Compute([]model.Record{rec("a", 0, 0)}, nil), 0, 0, ASCIIGlyphs)
	if c.String() != "" || c.Visible() != 0 {
		t.Fatalf("expected empty canvas; got %q", c.String())
	}
}

func TestRender_GraticuleAtLowZoom(t *testing.T) {
	t.Parallel()

	c := Render(Frame{Center: DefaultCenter, Zoom: 2}, 60, 20, ASCIIGlyphs)
	if !strings.ContainsRune(c.String(), ASCIIGlyphs.Grid) {
		t.Fatalf("expected graticule at zoom 2:\n%s", c.String())
	}
	street := Render(Frame{Center: DefaultCenter, Zoom: ZoomSelected}, 60, 20, ASCIIGlyphs)
	if strings.ContainsRune(street.String(), ASCIIGlyphs.Grid) {
		t.Fatalf("expected no graticule at street zoom:\n%s", street.String())
	}
}
