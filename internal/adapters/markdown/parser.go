// Package markdown adapts goldmark to the document parser port.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
)

var _ ports.DocumentParser = (*Parser)(nil)

// Parser parses CommonMark documents with the GitHub extensions enabled.
type Parser struct {
	parser parser.Parser
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return &Parser{parser: md.Parser()}
}

// Parse returns the top-level nodes of source in document order.
// CRLF and lone CR line endings are read as LF.
func (p *Parser) Parse(source []byte) ([]domain.Node, error) {
	source = normalizeNewlines(source)
	doc := p.parser.Parse(text.NewReader(source))

	nodes := make([]domain.Node, 0, doc.ChildCount())
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		nodes = append(nodes, convert(n, source))
	}
	return nodes, nil
}

func normalizeNewlines(source []byte) []byte {
	if bytes.IndexByte(source, '\r') < 0 {
		return source
	}
	source = bytes.ReplaceAll(source, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(source, []byte("\r"), []byte("\n"))
}

func convert(n ast.Node, source []byte) domain.Node {
	switch n := n.(type) {
	case *ast.Heading:
		return domain.Heading(n.Level, plainText(n, source))
	case *ast.FencedCodeBlock:
		var lang string
		if n.Info != nil {
			lang = string(n.Language(source))
		}
		return domain.CodeBlock(lang, codeValue(n, source))
	case *ast.CodeBlock:
		return domain.CodeBlock("", codeValue(n, source))
	default:
		return domain.Content(plainText(n, source))
	}
}

// codeValue returns the content of a code block without its final newline.
func codeValue(n ast.Node, source []byte) string {
	var sb strings.Builder
	writeLines(&sb, n, source)
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeLines(sb *strings.Builder, n ast.Node, source []byte) {
	lines := n.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}
}

// plainText concatenates the literal text below n with escapes and
// character references decoded. Soft breaks become newlines, hard breaks
// add nothing.
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	writeText(&sb, n, source)
	return sb.String()
}

func writeText(sb *strings.Builder, n ast.Node, source []byte) {
	switch n := n.(type) {
	case *ast.Text:
		sb.Write(decode(n.Segment.Value(source)))
		if n.SoftLineBreak() && !n.HardLineBreak() {
			sb.WriteByte('\n')
		}
		return
	case *ast.CodeSpan:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(source))
			}
		}
		return
	case *ast.String:
		sb.Write(n.Value)
		return
	case *ast.AutoLink:
		sb.Write(n.Label(source))
		return
	case *ast.RawHTML:
		for i := range n.Segments.Len() {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(source))
		}
		return
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		sb.WriteString(codeValue(n, source))
		return
	case *ast.HTMLBlock:
		writeLines(sb, n, source)
		if n.HasClosure() {
			sb.Write(n.ClosureLine.Value(source))
		}
		return
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeText(sb, c, source)
	}
}

func decode(raw []byte) []byte {
	return util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(raw)))
}
