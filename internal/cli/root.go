package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/tasks"
	"github.com/sandeepkv93/tasklist/internal/update"
	"github.com/spf13/cobra"
)

type App struct {
	Config update.RuntimeConfig

	backend string
}

// session is an opened store plus the repository that must be closed
// when the command finishes.
type session struct {
	repo  storage.Repository
	slot  *storage.TaskSlot
	store *tasks.Store
}

func (s *session) Close() error {
	return s.repo.Close()
}

func NewRootCmd() *cobra.Command {
	app := &App{Config: update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())}

	cmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "Local task list (TUI + CLI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tasklist

  # Scriptable commands
  tasklist add Buy milk
  tasklist list
  tasklist toggle 1739102400000
  tasklist clear --yes
`),
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.backend != "" {
				b := storage.Backend(strings.ToLower(app.backend))
				if !b.IsValid() {
					return fmt.Errorf("unknown backend %q (want sqlite|file|memory)", app.backend)
				}
				app.Config.Backend = b
			}
			if !storage.IsKnownDriver(app.Config.SQLiteDriver) {
				return fmt.Errorf("unknown sqlite driver %q (want %s|%s)", app.Config.SQLiteDriver, storage.DriverMattn, storage.DriverModernc)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Config.DataPath, "data", app.Config.DataPath, "Path to the task data (default .tasklist.db, or .tasklist.json for the file backend)")
	cmd.PersistentFlags().StringVar(&app.backend, "backend", "", "Storage backend (sqlite|file|memory); overrides TASKLIST_BACKEND")
	cmd.PersistentFlags().StringVar(&app.Config.SQLiteDriver, "sqlite-driver", app.Config.SQLiteDriver, "SQLite driver (sqlite3 = cgo, sqlite = pure Go)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newResetCmd(app))

	return cmd
}

func openSession(ctx context.Context, app *App) (*session, error) {
	cfg := app.Config
	repo, err := storage.Open(ctx, cfg.Backend, cfg.ResolvedDataPath(), cfg.SQLiteDriver)
	if err != nil {
		return nil, err
	}
	slot := storage.NewTaskSlot(repo)
	store, err := tasks.Open(ctx, slot)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	return &session{repo: repo, slot: slot, store: store}, nil
}

func runTUI(ctx context.Context, app *App) error {
	if app.Config.LogFile != "" {
		f, err := tea.LogToFile(app.Config.LogFile, "tasklist")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		// The terminal belongs to the TUI.
		log.SetOutput(io.Discard)
	}

	s, err := openSession(ctx, app)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if app.Config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(update.NewModelWithConfig(ctx, s.store, app.Config), opts...).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(update.Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}
