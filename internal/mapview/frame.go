package mapview

import "jobfinder/internal/model"

// DefaultCenter is the geographic centre of Australia, used when nothing is visible.
var DefaultCenter = model.Coordinates{Lat: -25.2744, Lng: 133.7751}

const (
	ZoomSelected = 10
	ZoomMany     = 4
	ZoomSingle   = 5
)

type Marker struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Location model.Coordinates `json:"location"`
	Selected bool              `json:"selected,omitempty"`
}

// Frame is everything the map needs to draw itself. It is a pure function of
// the visible set and the selection; there is no retained map state.
type Frame struct {
	Center  model.Coordinates `json:"center"`
	Zoom    int               `json:"zoom"`
	Markers []Marker          `json:"markers"`
}

// Compute derives the frame for visible and an optional selected record.
//
// With a selection the map shows only that record, centred on it at street
// zoom. Without one it shows every visible record centred on their mean
// position; zoom is wider when more than one record is shown.
func Compute(visible []model.Record, selected *model.Record) Frame {
	if selected != nil {
		return Frame{
			Center: selected.Location,
			Zoom:   ZoomSelected,
			Markers: []Marker{{
				ID:       selected.ID,
				Label:    selected.CompanyName,
				Location: selected.Location,
				Selected: true,
			}},
		}
	}

	f := Frame{Center: DefaultCenter, Zoom: ZoomSingle, Markers: make([]Marker, 0, len(visible))}
	if len(visible) > 1 {
		f.Zoom = ZoomMany
	}
	if len(visible) == 0 {
		return f
	}

	var sumLat, sumLng float64
	for _, r := range visible {
		sumLat += r.Location.Lat
		sumLng += r.Location.Lng
		f.Markers = append(f.Markers, Marker{ID: r.ID, Label: r.CompanyName, Location: r.Location})
	}
	n := float64(len(visible))
	f.Center = model.Coordinates{Lat: sumLat / n, Lng: sumLng / n}
	return f
}
