package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/notepad/internal/app"
	"github.com/marcus/notepad/internal/config"
	"github.com/marcus/notepad/internal/export"
	"github.com/marcus/notepad/internal/keymap"
	"github.com/marcus/notepad/internal/notes"
)

var (
	configPath string
	debugFlag  bool
	darkFlag   bool
	outDir     string
)

// rootCmd runs the notepad TUI when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "notepad",
	Short: "A terminal notepad that exports notes to PDF",
	Long: `notepad keeps a list of page-tagged notes in memory while it runs.
Notes can be colored, resized, edited and deleted, and exported as notes.pdf
with one section per note.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&darkFlag, "dark", false, "start in dark mode")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "directory notes.pdf is written to")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("dark") {
		cfg.UI.DarkMode = darkFlag
	}
	if outDir != "" {
		cfg.Export.Dir = config.ExpandPath(outDir)
	}

	// stderr belongs to the alt screen while the TUI runs.
	logger, closeLog, err := tuiLogger(debugFlag)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	store := notes.NewStore(logger)
	engine := export.New(
		export.WithFileName(cfg.Export.FileName),
		export.WithLogger(logger),
	)

	model := app.New(store, km, cfg, engine, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// tuiLogger writes debug logs to notepad.log in the config directory, or
// discards everything when debug is off.
func tuiLogger(debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	dir := config.Dir()
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "notepad.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// cliLogger logs to stderr for the non-interactive commands.
func cliLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
