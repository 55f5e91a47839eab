package sectile

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/net/html"
)

// Parser splits a composite document into its ordered top-level section
// nodes. It tokenizes the top level of the markup only: a section's inner
// content is captured as an opaque byte span and never interpreted here.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes content into section nodes, in document order.
//
// Text, comments and doctypes between top-level sections are skipped. An
// unmatched closing tag or an unclosed section yields a [*ParseError].
func (p *Parser) Parse(content []byte, path string) ([]SectionNode, error) {
	z := html.NewTokenizer(bytes.NewReader(content))

	var nodes []SectionNode
	pos := 0
	for {
		tt := z.Next()
		rawLen := len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, &ParseError{Path: path, Offset: pos, Msg: err.Error()}
			}
			slog.Debug("parsed document", "path", path, "sections", len(nodes))
			return nodes, nil

		case html.TextToken, html.CommentToken, html.DoctypeToken:
			// Loose text between sections carries no section role

		case html.EndTagToken:
			name, _ := z.TagName()
			return nil, &ParseError{
				Path:   path,
				Offset: pos,
				Msg:    fmt.Sprintf("unexpected closing tag </%s>", name),
			}

		case html.SelfClosingTagToken:
			node := nodeFromToken(z.Token())
			node.Start = pos + rawLen
			node.End = node.Start
			nodes = append(nodes, node)
			// A self-closing <script/> or <style/> still arms the
			// tokenizer's raw-text mode; cancel it so the sections
			// that follow are tokenized normally.
			z.NextIsNotRawText()

		case html.StartTagToken:
			node := nodeFromToken(z.Token())
			node.Start = pos + rawLen

			innerEnd, nextPos, err := consumeSection(z, path, node.Kind.Name, pos+rawLen)
			if err != nil {
				return nil, err
			}
			node.End = innerEnd
			node.Content = string(content[node.Start:innerEnd])
			nodes = append(nodes, node)

			pos = nextPos
			continue
		}

		pos += rawLen
	}
}

// consumeSection advances the tokenizer past the matching close of tag,
// counting same-named nesting. It returns the byte offset where the inner
// span ends and the offset just past the closing tag.
func consumeSection(z *html.Tokenizer, path, tag string, pos int) (innerEnd, nextPos int, err error) {
	depth := 1
	for {
		tt := z.Next()
		rawLen := len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return 0, 0, &ParseError{
					Path:   path,
					Offset: pos,
					Msg:    fmt.Sprintf("unclosed <%s> section", tag),
				}
			}
			return 0, 0, &ParseError{Path: path, Offset: pos, Msg: z.Err().Error()}

		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				depth++
			}

		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				depth--
				if depth == 0 {
					return pos, pos + rawLen, nil
				}
			}
		}

		pos += rawLen
	}
}

func nodeFromToken(tok html.Token) SectionNode {
	node := SectionNode{Kind: KindOf(tok.Data)}
	for _, attr := range tok.Attr {
		switch attr.Key {
		case "lang":
			node.Lang = attr.Val
		case "scoped":
			node.Scoped = true
		case "src":
			node.SrcPath = attr.Val
		}
	}
	return node
}
