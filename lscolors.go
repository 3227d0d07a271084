package gitls

import (
	"io/fs"
	"os"
	"sort"
	"strings"
)

// PathStyler renders a path for display.
type PathStyler interface {
	StylePath(path string) string
}

type PlainStyler struct{}

func (PlainStyler) StylePath(path string) string { return path }

// LSColors styles paths component by component the way `ls` would, using a
// dircolors specification such as "di=01;34:ln=01;36:*.go=00;32".
type LSColors struct {
	codes    map[string]string
	suffixes []suffixCode
	lstat    func(string) (fs.FileInfo, error)
}

type suffixCode struct {
	suffix string
	code   string
}

// ParseLSColors parses a dircolors specification. Unknown or malformed
// entries are ignored.
func ParseLSColors(spec string) *LSColors {
	l := &LSColors{codes: make(map[string]string), lstat: os.Lstat}
	for _, entry := range strings.Split(spec, ":") {
		key, code, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		if strings.HasPrefix(key, "*") {
			l.suffixes = append(l.suffixes, suffixCode{suffix: key[1:], code: code})
			continue
		}
		l.codes[key] = code
	}
	sort.SliceStable(l.suffixes, func(i, j int) bool {
		return len(l.suffixes[i].suffix) > len(l.suffixes[j].suffix)
	})
	return l
}

// NewPathStyler returns an LSColors styler for spec, or a PlainStyler when
// spec is empty.
func NewPathStyler(spec string) PathStyler {
	if spec == "" {
		return PlainStyler{}
	}
	return ParseLSColors(spec)
}

// StylePath paints each directory component together with its trailing
// separator, then the leaf. Paths that do not exist on disk, such as deleted
// files, are styled by name alone.
func (l *LSColors) StylePath(path string) string {
	var b strings.Builder
	for start := 0; start < len(path); {
		i := strings.IndexByte(path[start:], '/')
		if i < 0 {
			b.WriteString(paint(path[start:], l.codeFor(path, false)))
			break
		}
		end := start + i + 1
		dir := path[:end-1]
		if dir == "" {
			dir = "/"
		}
		b.WriteString(paint(path[start:end], l.codeFor(dir, true)))
		start = end
	}
	return b.String()
}

func (l *LSColors) codeFor(path string, isDir bool) string {
	if fi, err := l.lstat(path); err == nil {
		mode := fi.Mode()
		switch {
		case mode&fs.ModeSymlink != 0:
			return l.codes["ln"]
		case mode.IsDir():
			return l.codes["di"]
		case mode&fs.ModeNamedPipe != 0:
			return l.codes["pi"]
		case mode&fs.ModeSocket != 0:
			return l.codes["so"]
		case mode.IsRegular() && mode.Perm()&0o111 != 0:
			if c, ok := l.codes["ex"]; ok {
				return c
			}
		}
	}
	if isDir {
		return l.codes["di"]
	}
	for _, s := range l.suffixes {
		if strings.HasSuffix(path, s.suffix) {
			return s.code
		}
	}
	return l.codes["fi"]
}

func paint(s, code string) string {
	if code == "" || s == "" {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
