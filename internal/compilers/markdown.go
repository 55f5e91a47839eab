package compilers

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/hgrant/sectile"
)

// Markdown returns a custom-kind compiler that renders a section's markdown
// content to HTML. The CLI registers it for the "docs" kind so a component
// can carry its own documentation section.
func Markdown() sectile.CustomCompiler {
	md := goldmark.New()
	return func(_ context.Context, in sectile.CustomCompileInput) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(in.Content), &buf); err != nil {
			return "", fmt.Errorf("rendering markdown: %w", err)
		}
		return buf.String(), nil
	}
}
