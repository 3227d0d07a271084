package gitls

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
)

// SourceProvider hands out the stream of paths to annotate.
type SourceProvider struct {
	stdin         io.Reader
	readClipboard func() (string, error)
}

func NewSourceProvider(stdin io.Reader) *SourceProvider {
	return &SourceProvider{stdin: stdin, readClipboard: clipboard.ReadAll}
}

// Paths returns stdin, or the clipboard contents when fromClipboard is set.
func (sp *SourceProvider) Paths(fromClipboard bool) (io.Reader, error) {
	if !fromClipboard {
		return sp.stdin, nil
	}
	c, err := sp.readClipboard()
	if err != nil {
		return nil, fmt.Errorf("reading clipboard: %w", err)
	}
	return strings.NewReader(strings.TrimSpace(c)), nil
}
