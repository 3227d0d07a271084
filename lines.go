package gitls

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// EachLine calls fn for every line of r with the line ending removed. Lines
// that are not valid UTF-8 are not passed to fn and are counted in skipped.
// There is no limit on line length. A non-nil error from fn stops iteration.
func EachLine(r io.Reader, fn func(string) error) (skipped int, err error) {
	br := bufio.NewReader(r)
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return skipped, fmt.Errorf("reading line: %w", rerr)
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !utf8.ValidString(line) {
				skipped++
			} else if err := fn(line); err != nil {
				return skipped, err
			}
		}
		if rerr != nil {
			return skipped, nil
		}
	}
}
