package gitls

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAlways, ColorAuto, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want always, auto or never)", s)
	}
}

// Renderer turns a classified path into one output line.
type Renderer struct {
	glyphs  Theme
	styles  map[Status]lipgloss.Style
	percent lipgloss.Style
	paths   PathStyler
}

// NewRenderer builds the status styles for out. ColorAlways forces plain
// 16-color escapes even when out is a pipe, which is what preview windows
// such as fzf expect.
func NewRenderer(out io.Writer, cfg *Config, mode ColorMode, paths PathStyler) *Renderer {
	lr := lipgloss.NewRenderer(out)
	switch mode {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}
	if paths == nil {
		paths = PlainStyler{}
	}

	fg := func(c string) lipgloss.Style { return lr.NewStyle().Foreground(lipgloss.Color(c)) }
	return &Renderer{
		glyphs: cfg.Glyphs,
		styles: map[Status]lipgloss.Style{
			StatusCreated:     fg(cfg.Colors.Created),
			StatusDeleted:     fg(cfg.Colors.Deleted),
			StatusRenamedAway: fg(cfg.Colors.RenamedAway),
			StatusRenamedIn:   fg(cfg.Colors.RenamedIn),
			StatusUnchanged:   fg(cfg.Colors.Unchanged),
		},
		percent: fg(cfg.Colors.Percent),
		paths:   paths,
	}
}

func (r *Renderer) glyph(s Status) string {
	switch s {
	case StatusCreated:
		return r.glyphs.Created
	case StatusDeleted:
		return r.glyphs.Deleted
	case StatusRenamedAway:
		return r.glyphs.RenamedAway
	case StatusRenamedIn:
		return r.glyphs.RenamedIn
	default:
		return r.glyphs.Unchanged
	}
}

// RenderLine formats `<glyph> <path>` with the similarity appended after two
// tabs for renames. The result has no trailing newline.
func (r *Renderer) RenderLine(path string, res Result) string {
	var b strings.Builder
	b.WriteString(r.styles[res.Status].Render(r.glyph(res.Status)))
	b.WriteByte(' ')
	b.WriteString(r.paths.StylePath(path))
	if res.IsRename() {
		b.WriteString("\t\t")
		b.WriteString(r.percent.Render("(" + res.Percent + ")"))
	}
	return b.String()
}

// FormatStats renders a short per-status tally.
func (r *Renderer) FormatStats(s Stats) string {
	var b strings.Builder
	row := func(status Status, n int) {
		if n == 0 {
			return
		}
		fmt.Fprintf(&b, "%s %-12s %d\n", r.styles[status].Render(r.glyph(status)), status, n)
	}

	row(StatusCreated, s.Created)
	row(StatusDeleted, s.Deleted)
	row(StatusRenamedAway, s.RenamedAway)
	row(StatusRenamedIn, s.RenamedIn)
	row(StatusUnchanged, s.Unchanged)
	if s.Skipped > 0 {
		fmt.Fprintf(&b, "  %-12s %d\n", "skipped", s.Skipped)
	}
	return b.String()
}
