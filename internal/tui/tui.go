package tui

import (
	"context"
	"log/slog"

	"jobfinder/internal/directory"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Source labels where the records came from, shown in the header.
	Source string
	// Glyphs is "unicode" or "ascii"; empty defers to JOBFINDER_TUI_GLYPHS.
	Glyphs  string
	NoColor bool
	Logger  *slog.Logger
}

// Run starts the interactive browser on s and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, s *directory.Session, opts Options) error {
	applyGlyphPreference(opts.Glyphs)
	applyColorPreference(opts.NoColor)

	m := newAppModel(s, opts.Source, opts.Logger)
	m.logger.Info("tui started", "records", s.Records().Len(), "source", opts.Source)
	final, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(appModel); ok {
		fm.logger.Info("tui finished",
			"contacted", fm.session.ContactedCount(),
			"contacted_ids", fm.session.ContactedIDs(),
		)
	}
	return nil
}
