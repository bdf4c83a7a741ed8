package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/inkwell-md/inkwell/cmd/commands"
	"github.com/inkwell-md/inkwell/internal/cli"
	"github.com/inkwell-md/inkwell/pkg/files"
	"github.com/inkwell-md/inkwell/pkg/tui"
	"github.com/inkwell-md/inkwell/pkg/workspace"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "inkwell [file...]",
	Short: "Terminal markdown editor with tabs, autosave, and live preview",
	Long: `Inkwell is a terminal-based markdown editor. It keeps multiple documents
open in tabs, autosaves your work, tracks recently opened files, and can
preview or export rendered markdown including code-fence metadata.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEditor(args); err != nil {
			cli.PrintError("%v", err)
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Inkwell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Inkwell version %s\n", version)
	},
}

func runEditor(args []string) error {
	logger := newLogger()

	settings, err := files.LoadSettings()
	if err != nil {
		logger.Warn().Err(err).Msg("settings unusable, falling back to defaults")
	}

	recents := workspace.NewRecentFiles(files.ConfigStore{},
		settings.Editor.MaxRecentFiles, logger)
	store := workspace.NewStore(files.Disk{}, recents, logger)
	syncer := workspace.NewSynchronizer(store,
		time.Duration(settings.Editor.DebounceMillis)*time.Millisecond)
	autosave := workspace.NewScheduler(store,
		time.Duration(settings.Editor.AutosaveSeconds)*time.Second, logger)

	watcher, err := files.NewWatcher(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("file watching disabled")
		watcher = nil
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		defer watcher.Close()
		go watcher.Run(ctx)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}

	for _, path := range args {
		doc, err := store.LoadDocument(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		if watcher != nil {
			if err := watcher.Add(doc.Path); err != nil {
				logger.Warn().Str("path", doc.Path).Err(err).Msg("failed to watch document")
			}
		}
	}

	app := tui.NewApp(store, syncer, autosave, recents, watcher, settings, workDir, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

// newLogger writes structured logs to a file in the config directory. The
// terminal belongs to the TUI, so logging never goes to stderr while the
// editor runs.
func newLogger() zerolog.Logger {
	path, err := files.LogPath()
	if err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewRecentCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
