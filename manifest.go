package gitls

import (
	"bufio"
	"io"
)

// ManifestSeparator splits the fields of a manifest line. A single colon is
// legal in file names, a double one practically never shows up.
const ManifestSeparator = "::"

// ManifestWriter emits one `<from>::<to>::<percent>` line per rename for the
// preview scripts that show rename diffs.
type ManifestWriter struct {
	w *bufio.Writer
}

func NewManifestWriter(w io.Writer) *ManifestWriter {
	return &ManifestWriter{w: bufio.NewWriter(w)}
}

func (m *ManifestWriter) Write(r Rename) error {
	_, err := m.w.WriteString(FormatManifestLine(r))
	return err
}

func (m *ManifestWriter) Flush() error {
	return m.w.Flush()
}

func FormatManifestLine(r Rename) string {
	return r.From + ManifestSeparator + r.To + ManifestSeparator + r.Percent + "\n"
}
