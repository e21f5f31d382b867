package cli

import (
	"fmt"
	"strings"

	"flashdeck/internal/applog"
	"flashdeck/internal/config"
	"flashdeck/internal/format"
	"flashdeck/internal/session"
	"flashdeck/internal/store"
	"flashdeck/internal/textwrap"
	"flashdeck/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
	Measure    string
	LogPath    string
	LogLevel   string

	cfg *config.Config
	log *applog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	// Invalid environment values are reported when a command runs, not here,
	// so `--help` keeps working.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		def := config.Default()
		cfg = &def
	}
	app.cfg = cfg

	cmd := &cobra.Command{
		Use:          "flashdeck",
		Short:        "Flashcard decks in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Study the decks in ./decks
  flashdeck

  # Study another deck directory
  flashdeck --dir ~/flashcards

  # Scriptable commands
  flashdeck decks
  flashdeck cards basic_math
  flashdeck show basic_math --card 2 --answer

  # Direct deck lookup (shortcut for: flashdeck cards ./spanish.csv)
  flashdeck ./spanish.csv
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return writeErr(cmd, cfgErr)
		}
		if err := app.applyFlags(); err != nil {
			return writeErr(cmd, err)
		}
		l, err := applog.New(applog.Options{Path: app.cfg.Log.Path, Level: app.cfg.Log.Level, Format: app.cfg.Log.Format})
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = l
		app.log.Debug("command start", "cmd", cmd.CommandPath(), "dir", app.cfg.DecksDir, "measure", app.cfg.Measure)
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", cfg.DecksDir, "Deck directory (env FLASHDECK_DIR)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", cfg.Format, "Output format (json|edn)")
	cmd.PersistentFlags().StringVar(&app.Measure, "measure", cfg.Measure, "Text width measurer (cells|heuristic)")
	cmd.PersistentFlags().StringVar(&app.LogPath, "log", cfg.Log.Path, "Append logs to this file (env FLASHDECK_LOG)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", cfg.Log.Level, "Log level (debug|info|warn|error)")

	cmd.AddCommand(newDecksCmd(app))
	cmd.AddCommand(newCardsCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newEnvCmd(app))

	return cmd
}

// applyFlags copies flag values over the environment config and validates
// the result.
func (app *App) applyFlags() error {
	app.cfg.DecksDir = app.Dir
	app.cfg.Format = app.Format
	app.cfg.Measure = app.Measure
	app.cfg.Log.Path = app.LogPath
	app.cfg.Log.Level = app.LogLevel
	if err := app.cfg.Validate(); err != nil {
		return err
	}
	app.Format = app.cfg.Format
	return nil
}

func (app *App) measurer() textwrap.Measurer {
	if app.cfg.Measure == "heuristic" {
		return textwrap.Heuristic
	}
	return textwrap.Cells
}

func (app *App) logger() *applog.Logger {
	if app.log == nil {
		return applog.Discard()
	}
	return app.log
}

func (app *App) close() error {
	if app.log == nil {
		return nil
	}
	err := app.log.Close()
	app.log = nil
	return err
}

func runTUI(app *App) error {
	log := app.logger()

	cat, err := store.OpenCatalog(app.cfg.DecksDir)
	if err != nil {
		log.Error("open catalog", "dir", app.cfg.DecksDir, "err", err)
		return fmt.Errorf("%w (set --dir or FLASHDECK_DIR)", err)
	}
	log.Info("catalog opened", "dir", cat.Dir(), "decks", cat.Total())

	sess, err := session.Open(cat.CurrentPath())
	if err != nil {
		log.Error("first deck load", "path", cat.CurrentPath(), "err", err)
		return err
	}
	log.Info("deck loaded", "path", cat.CurrentPath(), "cards", sess.Total())

	err = tui.Run(tui.Options{
		Catalog:  cat,
		Session:  sess,
		Measurer: app.measurer(),
		Logger:   log,
		Theme:    app.cfg.TUI.Theme,
		Glyphs:   app.cfg.TUI.Glyphs,
	})
	log.Info("quit", "err", err)
	return err
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
