package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"jobfinder/internal/directory"
	"jobfinder/internal/format"
	"jobfinder/internal/store"
	"jobfinder/internal/tui"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type App struct {
	Dataset    string
	PrettyJSON bool
	Format     string
	LogFile    string
	LogLevel   string
	Glyphs     string
	NoColor    bool

	logger  *slog.Logger
	logSink io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "jobfinder",
		Short:        "Browse a company directory by state, industry and text",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive browser
  jobfinder

  # Scriptable commands
  jobfinder list --region VIC --industry technology
  jobfinder show cmp-003

  # Direct record lookup (shortcut for: jobfinder show <record-id>)
  jobfinder cmp-003
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setupLogger(cmd, app)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.logSink != nil {
			return app.logSink.Close()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dataset, "dataset", envOr("JOBFINDER_DATASET", ""), "Dataset path (.json, .sqlite, .db); default: config dataset, then the bundled list")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("JOBFINDER_FORMAT", "json"), "Output format (json|table)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("JOBFINDER_LOG_FILE", ""), "Append logs to this file (default: no logging)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("JOBFINDER_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", "", "TUI glyph set (unicode|ascii); default: config, then JOBFINDER_TUI_GLYPHS")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colors in the TUI")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newRegionsCmd(app))
	cmd.AddCommand(newIndustriesCmd(app))
	cmd.AddCommand(newMapCmd(app))
	cmd.AddCommand(newDatasetCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	s, source, err := loadSession(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	glyphs := app.Glyphs
	if glyphs == "" {
		if cfg, err := store.LoadConfig(); err == nil {
			glyphs = cfg.Glyphs()
		}
	}
	return tui.Run(cmd.Context(), s, tui.Options{
		Source:  store.SourceLabel(source),
		Glyphs:  glyphs,
		NoColor: app.NoColor,
		Logger:  app.logger,
	})
}

// resolveDataset picks the record source: --dataset / JOBFINDER_DATASET,
// then the config file, then the embedded dataset ("").
func resolveDataset(app *App) (string, error) {
	if v := strings.TrimSpace(app.Dataset); v != "" {
		return v, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(cfg.Dataset), nil
}

func loadRecords(cmd *cobra.Command, app *App) (*directory.Records, string, error) {
	source, err := resolveDataset(app)
	if err != nil {
		return nil, "", err
	}
	rs, err := store.LoadRecords(cmd.Context(), source)
	if err != nil {
		return nil, source, fmt.Errorf("load dataset: %w", err)
	}
	records, err := directory.NewRecords(rs)
	if err != nil {
		return nil, source, fmt.Errorf("load dataset %s: %w", store.SourceLabel(source), err)
	}
	app.logger.Debug("dataset loaded", "source", store.SourceLabel(source), "records", records.Len())
	return records, source, nil
}

func loadSession(cmd *cobra.Command, app *App) (*directory.Session, string, error) {
	records, source, err := loadRecords(cmd, app)
	if err != nil {
		return nil, source, err
	}
	return directory.NewSession(records, directory.WithLogger(app.logger)), source, nil
}

// setupLogger builds the process logger. The TUI owns the terminal, so logs
// only go to --log-file; without one they are discarded.
func setupLogger(cmd *cobra.Command, app *App) error {
	level, err := parseLogLevel(app.LogLevel)
	if err != nil {
		return writeErr(cmd, err)
	}
	var w io.Writer = io.Discard
	if path := strings.TrimSpace(app.LogFile); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return writeErr(cmd, fmt.Errorf("open log file: %w", err))
		}
		app.logSink = f
		w = f
	}
	app.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("session", uuid.NewString(), "command", cmd.CommandPath())
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q (want debug|info|warn|error)", s)
	}
	return level, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	if app.Format == "table" {
		if t, ok := v.(format.Tabular); ok {
			return format.Write(cmd.OutOrStdout(), t, app.Format, app.PrettyJSON)
		}
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
