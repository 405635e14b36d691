package cli

import (
	"fmt"
	"strings"

	"jobfinder/internal/mapview"
	"jobfinder/internal/model"

	"github.com/spf13/cobra"
)

type mapOutput struct {
	Center   model.Coordinates `json:"center"`
	Zoom     int               `json:"zoom"`
	Markers  []mapview.Marker  `json:"markers"`
	Selected string            `json:"selected,omitempty"`
	Visible  int               `json:"visible"`
	Canvas   []string          `json:"canvas"`
}

func newMapCmd(app *App) *cobra.Command {
	var (
		filters  filterFlags
		selectID string
		width    int
		height   int
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render the map frame for the filtered companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return writeErr(cmd, fmt.Errorf("invalid map size %dx%d", width, height))
			}
			c, err := filters.criteria()
			if err != nil {
				return writeErr(cmd, err)
			}
			s, _, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s.SetCriteria(c)

			var selected *model.Record
			if id := strings.TrimSpace(selectID); id != "" {
				if _, ok := s.Records().Find(id); !ok {
					return writeErr(cmd, errNotFound("record", id))
				}
				if !s.Select(id) {
					return writeErr(cmd, fmt.Errorf("record %s is not visible with the current filters", id))
				}
				r, _ := s.Selected()
				selected = &r
			}

			frame := mapview.Compute(s.Visible(), selected)
			glyphs := mapview.UnicodeGlyphs
			if strings.EqualFold(app.Glyphs, "ascii") {
				glyphs = mapview.ASCIIGlyphs
			}
			canvas := mapview.Render(frame, width, height, glyphs)

			if raw {
				fmt.Fprintf(cmd.OutOrStdout(), "center %s zoom %d markers %d\n", frame.Center, frame.Zoom, len(frame.Markers))
				_, err := fmt.Fprintln(cmd.OutOrStdout(), canvas.String())
				return err
			}

			out := mapOutput{
				Center:  frame.Center,
				Zoom:    frame.Zoom,
				Markers: frame.Markers,
				Visible: s.VisibleCount(),
				Canvas:  strings.Split(canvas.String(), "\n"),
			}
			if selected != nil {
				out.Selected = selected.ID
			}
			return writeOut(cmd, app, out)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&selectID, "select", "", "Record id to select (must be visible with the filters)")
	cmd.Flags().IntVar(&width, "width", 60, "Canvas width in columns")
	cmd.Flags().IntVar(&height, "height", 20, "Canvas height in rows")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the canvas as plain text (no JSON envelope)")
	return cmd
}
