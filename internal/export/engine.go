package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/marcus/notepad/internal/notes"
)

const (
	// DefaultFileName is the name the exported document is saved under.
	DefaultFileName = "notes.pdf"

	fontFamily = "Helvetica"
)

// Engine renders notes into a paginated PDF.
type Engine struct {
	geometry Geometry
	fileName string
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithGeometry overrides the page layout constants.
func WithGeometry(g Geometry) Option {
	return func(e *Engine) { e.geometry = g }
}

// WithFileName sets the file name used by Save.
func WithFileName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.fileName = name
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		geometry: DefaultGeometry(),
		fileName: DefaultFileName,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// FileName returns the name Save writes to.
func (e *Engine) FileName() string { return e.fileName }

// Render lays out list and writes the PDF to w. An empty list still
// produces a valid document.
func (e *Engine) Render(w io.Writer, list []notes.Note) (Result, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreator("notepad", false)
	doc.SetTitle("Notes", false)
	doc.SetFont(fontFamily, "", e.geometry.HeadingFontSize)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	res := layout(doc, list, e.geometry, tr)
	if err := doc.Output(w); err != nil {
		return Result{}, fmt.Errorf("export: render pdf: %w", err)
	}

	e.logger.Debug("export: rendered", "notes", len(list), "pages", res.Pages)
	return res, nil
}

// Save renders list into dir/FileName() and returns the written path.
// A partially written file is removed on failure.
func (e *Engine) Save(dir string, list []notes.Note) (string, Result, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", Result{}, fmt.Errorf("export: create dir: %w", err)
	}

	path := filepath.Join(dir, e.fileName)
	f, err := os.Create(path)
	if err != nil {
		return "", Result{}, fmt.Errorf("export: create %s: %w", e.fileName, err)
	}

	res, err := e.Render(f, list)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("export: write %s: %w", e.fileName, cerr)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", Result{}, err
	}

	e.logger.Info("export: saved", "path", path, "pages", res.Pages)
	return path, res, nil
}
