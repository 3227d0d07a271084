package gitls

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type CodeBlock struct {
	Lang    string
	Content string
}

// ExtractCodeBlocks returns the fenced code blocks of a Markdown document
// whose info string satisfies keep. A nil keep returns every block.
func ExtractCodeBlocks(source []byte, keep func(lang string) bool) ([]CodeBlock, error) {
	var blocks []CodeBlock
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fenced, ok := node.(*ast.FencedCodeBlock)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}

		lang := string(fenced.Language(source))
		if keep != nil && !keep(lang) {
			return ast.WalkSkipChildren, nil
		}

		var b strings.Builder
		for i, lines := 0, fenced.Lines(); i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(source))
		}
		blocks = append(blocks, CodeBlock{Lang: lang, Content: b.String()})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// SummaryFromMarkdown collects the fenced code blocks of a Markdown document,
// which is where a change summary pasted into a PR description or a review
// note ends up. Blocks tagged with a programming language are left out.
func SummaryFromMarkdown(source []byte) (string, error) {
	blocks, err := ExtractCodeBlocks(source, isSummaryLang)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(blk.Content)
		if !strings.HasSuffix(blk.Content, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func isSummaryLang(lang string) bool {
	switch strings.ToLower(lang) {
	case "", "text", "txt", "git", "summary", "console", "shell", "sh":
		return true
	}
	return false
}
