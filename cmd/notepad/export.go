package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marcus/notepad/internal/export"
	"github.com/marcus/notepad/internal/notes"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [notes.yaml]",
	Short: "Export a notes file to PDF without the TUI",
	Long: `Read a YAML or JSON notes file and write it as a PDF.

The file holds a list of notes; color and fontSize are optional:

  notes:
    - content: Buy milk
      color: "#ff0000"
      fontSize: 20
    - content: Call back`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out := exportOut
		if out == "" {
			out = filepath.Join(cfg.Export.Dir, cfg.Export.FileName)
		}
		return runExport(cmd.OutOrStdout(), args[0], out, cliLogger(debugFlag))
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output PDF path (default notes.pdf in the configured export dir)")
	rootCmd.AddCommand(exportCmd)
}

// runExport loads the notes file at in and renders it to out.
func runExport(w io.Writer, in, out string, logger *slog.Logger) error {
	store, err := notes.LoadFile(in, logger)
	if err != nil {
		return err
	}

	engine := export.New(
		export.WithFileName(filepath.Base(out)),
		export.WithLogger(logger),
	)
	path, res, err := engine.Save(filepath.Dir(out), store.Notes())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "wrote %s: %d notes, %d pages\n", path, len(res.Sections), res.Pages)
	return nil
}
