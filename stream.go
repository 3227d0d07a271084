package gitls

import (
	"fmt"
	"io"
	"strings"
)

// Annotate classifies every path read from r against t and writes one
// rendered line per path to w. Lines that cannot be decoded are skipped and
// counted in Stats.Skipped. The tables are only read, so annotating the same
// input twice produces the same output.
func Annotate(r io.Reader, w io.Writer, t *Tables, render *Renderer) (Stats, error) {
	var stats Stats
	skipped, err := EachLine(r, func(line string) error {
		path := strings.TrimSpace(line)
		res := t.Classify(path)
		stats.Add(res)
		if _, err := io.WriteString(w, render.RenderLine(path, res)+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	})
	stats.Skipped = skipped
	return stats, err
}
