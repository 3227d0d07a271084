package gitls

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, in string) ([]string, int) {
	t.Helper()
	var got []string
	skipped, err := EachLine(strings.NewReader(in), func(s string) error {
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return got, skipped
}

func TestEachLine(t *testing.T) {
	t.Run("LineEndings", func(t *testing.T) {
		got, _ := collect(t, "a\r\nb\n\nc")
		if diff := cmp.Diff([]string{"a", "b", "", "c"}, got); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got, _ := collect(t, ""); len(got) != 0 {
			t.Errorf("got %q, want nothing", got)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		got, skipped := collect(t, "ok.txt\nbad\xff.txt\nalso ok.txt\n")
		if diff := cmp.Diff([]string{"ok.txt", "also ok.txt"}, got); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}
		if skipped != 1 {
			t.Errorf("skipped = %d, want 1", skipped)
		}
	})

	t.Run("LongLine", func(t *testing.T) {
		long := strings.Repeat("x", 200_000)
		got, _ := collect(t, long+"\nshort\n")
		if len(got) != 2 || got[0] != long {
			t.Errorf("long line not preserved, got %d lines", len(got))
		}
	})

	t.Run("StopsOnError", func(t *testing.T) {
		stop := errors.New("stop")
		n := 0
		_, err := EachLine(strings.NewReader("a\nb\nc\n"), func(string) error {
			n++
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("err = %v, want %v", err, stop)
		}
		if n != 1 {
			t.Errorf("callback ran %d times, want 1", n)
		}
	})
}
