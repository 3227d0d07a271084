package gitls

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
)

var (
	ErrReport   = errors.New("cannot read change summary")
	ErrManifest = errors.New("cannot create rename manifest")
)

type Options struct {
	ReportPath    string
	ManifestPath  string
	Markdown      bool
	FromClipboard bool
	Stats         bool
	Color         ColorMode
}

type App struct {
	opts   *Options
	cfg    *Config
	logger *slog.Logger
	source *SourceProvider
	stdout io.Writer
	stderr io.Writer
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }
func (e *DetailedError) Unwrap() error { return e.Err }

func NewApp(opts *Options, cfg *Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = discardLogger()
	}
	if opts.Color == "" {
		opts.Color = ColorAlways
	}
	return &App{
		opts:   opts,
		cfg:    cfg,
		logger: logger,
		source: NewSourceProvider(os.Stdin),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run parses the change summary, writes the rename manifest and then
// annotates the path stream. Nothing reaches stdout unless both files could be
// opened.
func (a *App) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	report, err := a.openReport()
	if err != nil {
		return err
	}
	defer report.Close()

	tables, err := a.buildTables(report)
	if err != nil {
		return err
	}

	paths, err := a.source.Paths(a.opts.FromClipboard)
	if err != nil {
		return err
	}

	stats, err := Annotate(paths, a.stdout, tables, a.newRenderer(a.stdout))
	if err != nil {
		return err
	}
	if stats.Skipped > 0 {
		a.logger.Debug("skipped undecodable paths", "count", stats.Skipped)
	}
	if a.opts.Stats {
		fmt.Fprint(a.stderr, a.newRenderer(a.stderr).FormatStats(stats))
	}
	return nil
}

func (a *App) buildTables(report io.Reader) (*Tables, error) {
	f, err := os.Create(a.opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	defer f.Close()

	tables, err := NewParser(NewManifestWriter(f), a.logger).Parse(report)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return tables, nil
}

func (a *App) openReport() (io.ReadCloser, error) {
	f, err := os.Open(a.opts.ReportPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReport, err)
	}
	if !a.opts.Markdown {
		return f, nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReport, err)
	}
	summary, err := SummaryFromMarkdown(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReport, err)
	}
	return io.NopCloser(strings.NewReader(summary)), nil
}

func (a *App) newRenderer(w io.Writer) *Renderer {
	var paths PathStyler = PlainStyler{}
	if a.colorEnabled(w) {
		paths = NewPathStyler(a.cfg.ResolveLSColors())
	}
	return NewRenderer(w, a.cfg, a.opts.Color, paths)
}

func (a *App) colorEnabled(w io.Writer) bool {
	switch a.opts.Color {
	case ColorNever:
		return false
	case ColorAuto:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
	return true
}
