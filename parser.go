package gitls

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

/*
Lines of `git diff --format= --summary <rev>` look like:

	create mode 100644 cmd/gitls/main.go
	delete mode 100644 internal/legacy.go
	rename docs/{guide.md => GUIDE.md} (73%)
	rename assets/{ => img}/logo.png (51%)
	rename test/{closed => }/crlf_test.go (53%)
	rename notes.txt => notes.md (100%)
*/
const (
	createPrefix = "create mode "
	deletePrefix = "delete mode "
	renamePrefix = "rename "
	renameArrow  = " => "
)

type EntryKind int

const (
	EntryNone EntryKind = iota
	EntryCreate
	EntryDelete
	EntryRename
)

// Entry is what a single summary line contributes.
type Entry struct {
	Kind   EntryKind
	Path   string // created or deleted path
	Rename Rename
}

// ParseSummaryLine classifies one line of a change summary. Lines that match
// none of the known forms yield EntryNone.
func ParseSummaryLine(line string) Entry {
	ln := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(ln, createPrefix):
		if path, ok := skipMode(ln[len(createPrefix):]); ok {
			return Entry{Kind: EntryCreate, Path: path}
		}
	case strings.HasPrefix(ln, deletePrefix):
		if path, ok := skipMode(ln[len(deletePrefix):]); ok {
			return Entry{Kind: EntryDelete, Path: path}
		}
	case strings.HasPrefix(ln, renamePrefix):
		if r, ok := ParseRename(ln[len(renamePrefix):]); ok {
			return Entry{Kind: EntryRename, Rename: r}
		}
	}
	return Entry{}
}

// skipMode drops the file mode token in front of the path.
func skipMode(s string) (string, bool) {
	_, path, ok := strings.Cut(s, " ")
	return path, ok
}

// ParseRename parses the part of a rename line after "rename ". The
// similarity suffix is removed first since it carries parentheses of its own.
func ParseRename(s string) (Rename, bool) {
	s, pct := splitPercent(s)

	if from, to, ok := expandBraces(s); ok {
		return Rename{From: from, To: to, Percent: pct}, true
	}
	if from, to, ok := strings.Cut(s, renameArrow); ok {
		return Rename{From: from, To: to, Percent: pct}, true
	}
	return Rename{}, false
}

func splitPercent(s string) (rest, pct string) {
	open := strings.LastIndex(s, " (")
	end := strings.LastIndex(s, ")")
	if open < 0 || end < open {
		return s, ""
	}
	return s[:open], s[open+2 : end]
}

// expandBraces rebuilds both paths from the compact `prefix{from => to}suffix`
// form. An empty side leaves a doubled separator behind which is collapsed.
// Braces that do not enclose an arrow are treated as part of a plain path.
func expandBraces(s string) (from, to string, ok bool) {
	lb := strings.Index(s, "{")
	if lb < 0 {
		return "", "", false
	}
	n := strings.Index(s[lb:], "}")
	if n < 0 {
		return "", "", false
	}
	rb := lb + n
	left, right, ok := splitGroup(s[lb+1 : rb])
	if !ok {
		return "", "", false
	}

	prefix, suffix := s[:lb], s[rb+1:]
	from = strings.ReplaceAll(prefix+left+suffix, "//", "/")
	to = strings.ReplaceAll(prefix+right+suffix, "//", "/")
	return from, to, true
}

// splitGroup splits the inside of a brace group at the first " => ". A group
// with an empty side may lose the space next to the braces ("=> b", "a =>").
func splitGroup(group string) (left, right string, ok bool) {
	if left, right, ok := strings.Cut(group, renameArrow); ok {
		return left, right, true
	}
	if rest, ok := strings.CutPrefix(group, "=> "); ok {
		return "", rest, true
	}
	if rest, ok := strings.CutSuffix(group, " =>"); ok {
		return rest, "", true
	}
	return "", "", false
}

// Parser builds Tables from a change summary and streams every rename into a
// manifest as it goes.
type Parser struct {
	tables   *Tables
	manifest *ManifestWriter
	logger   *slog.Logger
}

// NewParser returns a Parser writing renames to manifest. A nil manifest
// discards them.
func NewParser(manifest *ManifestWriter, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = discardLogger()
	}
	return &Parser{tables: NewTables(), manifest: manifest, logger: logger}
}

// Apply folds a single summary line into the tables.
func (p *Parser) Apply(line string) error {
	e := ParseSummaryLine(line)
	switch e.Kind {
	case EntryCreate:
		p.tables.addCreated(e.Path)
	case EntryDelete:
		p.tables.addDeleted(e.Path)
	case EntryRename:
		p.tables.addRename(e.Rename)
		if p.manifest != nil {
			if err := p.manifest.Write(e.Rename); err != nil {
				return fmt.Errorf("writing rename manifest: %w", err)
			}
		}
	default:
		if strings.HasPrefix(strings.TrimSpace(line), renamePrefix) {
			p.logger.Debug("skipping malformed rename", "line", line)
		}
	}
	return nil
}

// Parse consumes r to the end and returns the finished tables. Lines that are
// not valid UTF-8 are skipped.
func (p *Parser) Parse(r io.Reader) (*Tables, error) {
	skipped, err := EachLine(r, p.Apply)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		p.logger.Debug("skipped undecodable summary lines", "count", skipped)
	}
	if p.manifest != nil {
		if err := p.manifest.Flush(); err != nil {
			return nil, fmt.Errorf("flushing rename manifest: %w", err)
		}
	}
	created, deleted, renamed := p.tables.Len()
	p.logger.Debug("parsed change summary", "created", created, "deleted", deleted, "renamed", renamed)
	return p.tables, nil
}

// ParseReport is a convenience wrapper around Parser.
func ParseReport(r io.Reader, manifest io.Writer) (*Tables, error) {
	var mw *ManifestWriter
	if manifest != nil {
		mw = NewManifestWriter(manifest)
	}
	return NewParser(mw, nil).Parse(r)
}
