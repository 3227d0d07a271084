package gitls

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testLSColors = "rs=0:di=01;34:ln=01;36:ex=01;32:fi=0:*.go=00;32:*_test.go=01;33:bogus:=7"

func notExist(string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }

func TestLSColorsByName(t *testing.T) {
	l := ParseLSColors(testLSColors)
	l.lstat = notExist

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "\x1b[00;32mmain.go\x1b[0m"},
		{"src/pkg/a_test.go", "\x1b[01;34msrc/\x1b[0m\x1b[01;34mpkg/\x1b[0m\x1b[01;33ma_test.go\x1b[0m"},
		{"README", "\x1b[0mREADME\x1b[0m"},
		{"/etc/hosts", "\x1b[01;34m/\x1b[0m\x1b[01;34metc/\x1b[0m\x1b[0mhosts\x1b[0m"},
		{"dir/", "\x1b[01;34mdir/\x1b[0m"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := l.StylePath(tt.path); got != tt.want {
				t.Errorf("StylePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLSColorsOnDisk(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "run.go")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.go")
	if err := os.Symlink(exe, link); err != nil {
		t.Skip("symlinks unsupported:", err)
	}

	l := ParseLSColors(testLSColors)
	if got := l.StylePath(exe); !strings.HasSuffix(got, "\x1b[01;32mrun.go\x1b[0m") {
		t.Errorf("executable styled as %q", got)
	}
	if got := l.StylePath(link); !strings.HasSuffix(got, "\x1b[01;36mlink.go\x1b[0m") {
		t.Errorf("symlink styled as %q", got)
	}
}

func TestNewPathStyler(t *testing.T) {
	if _, ok := NewPathStyler("").(PlainStyler); !ok {
		t.Error("empty spec should give a PlainStyler")
	}
	if _, ok := NewPathStyler("di=34").(*LSColors); !ok {
		t.Error("non-empty spec should give LSColors")
	}
	if got := (PlainStyler{}).StylePath("a/b"); got != "a/b" {
		t.Errorf("PlainStyler.StylePath() = %q", got)
	}
}
