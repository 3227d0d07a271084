package gitls

import "testing"

func TestSummaryFromMarkdown(t *testing.T) {
	doc := "# Release notes\n\n" +
		"Files touched:\n\n" +
		"```\n create mode 100644 a.go\n rename {x => y}/b.go (90%)\n```\n\n" +
		"```go\nfunc main() {}\n```\n\n" +
		"```summary\n delete mode 100644 c.go\n```\n"

	got, err := SummaryFromMarkdown([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := " create mode 100644 a.go\n rename {x => y}/b.go (90%)\n delete mode 100644 c.go\n"
	if got != want {
		t.Errorf("SummaryFromMarkdown() = %q, want %q", got, want)
	}

	tables := mustParse(t, got)
	if !tables.IsCreated("a.go") || !tables.IsDeleted("c.go") {
		t.Errorf("tables missing entries: %+v", tables)
	}
	if to, _ := tables.RenamedTo("x/b.go"); to != "y/b.go" {
		t.Errorf("RenamedTo(x/b.go) = %q", to)
	}
}

func TestExtractCodeBlocks(t *testing.T) {
	doc := []byte("text\n\n```diff\n-a\n+b\n```\n\n```go\nx := 1\n```\n")

	t.Run("All", func(t *testing.T) {
		blocks, err := ExtractCodeBlocks(doc, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(blocks) != 2 || blocks[0].Lang != "diff" || blocks[0].Content != "-a\n+b\n" || blocks[1].Lang != "go" {
			t.Errorf("blocks = %+v", blocks)
		}
	})

	t.Run("Filtered", func(t *testing.T) {
		blocks, err := ExtractCodeBlocks(doc, func(lang string) bool { return lang == "go" })
		if err != nil {
			t.Fatal(err)
		}
		if len(blocks) != 1 || blocks[0].Content != "x := 1\n" {
			t.Errorf("blocks = %+v", blocks)
		}
	})
}
