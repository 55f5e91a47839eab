// Package compilers ships the reference section compilers the sectile CLI
// wires into the split pipeline. They do no language transpilation: section
// content passes through trimmed, with just enough scoped-style handling to
// keep template and style output correlated via the document's scope id.
package compilers

import (
	"context"
	"fmt"
	"strings"

	"github.com/hgrant/sectile"
)

// Template passes template markup through. When the document carries a
// scoped style, the scope attribute is injected into the root element so
// the scoped stylesheet can match it.
type Template struct{}

func (Template) Compile(_ context.Context, in sectile.CompileInput) (string, error) {
	content := strings.TrimSpace(in.Node.Content)
	if content == "" || !in.ScopedStyle {
		return newlineTerminated(content), nil
	}
	return newlineTerminated(injectScopeAttr(content, in.ScopeID)), nil
}

// Script passes script content through untouched.
type Script struct{}

func (Script) Compile(_ context.Context, in sectile.CompileInput) (string, error) {
	return newlineTerminated(strings.TrimSpace(in.Node.Content)), nil
}

// Style passes style content through; a scoped section is nested under an
// attribute selector carrying the document's scope id.
type Style struct{}

func (Style) Compile(_ context.Context, in sectile.CompileInput) (string, error) {
	content := strings.TrimSpace(in.Node.Content)
	if content == "" || !in.Node.Scoped {
		return newlineTerminated(content), nil
	}
	return fmt.Sprintf("[%s] {\n%s\n}\n", scopeAttr(in.ScopeID), content), nil
}

func scopeAttr(scopeID string) string {
	return "data-s-" + scopeID
}

// injectScopeAttr adds the scope attribute to the first start tag of the
// markup. Markup with no tag at all is left as-is.
func injectScopeAttr(markup, scopeID string) string {
	start := strings.IndexByte(markup, '<')
	if start < 0 {
		return markup
	}
	end := strings.IndexAny(markup[start:], " \t\n/>")
	if end < 0 {
		return markup
	}
	at := start + end
	return markup[:at] + " " + scopeAttr(scopeID) + markup[at:]
}

func newlineTerminated(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
