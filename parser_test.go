package sectile

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanParseBasicDocument(t *testing.T) {
	content, err := os.ReadFile("testdata/parser/basic.sect")
	require.NoError(t, err)

	parser := NewParser()
	nodes, err := parser.Parse(content, "testdata/parser/basic.sect")
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	template := nodes[0]
	require.Equal(t, KindTemplate, template.Kind.Class)
	require.Equal(t, "pug", template.Lang)
	require.Equal(t, "\n  <div class=\"app\">Hello</div>\n", template.Content)

	script := nodes[1]
	require.Equal(t, KindScript, script.Kind.Class)
	require.Empty(t, script.Lang)
	require.Equal(t, "\nexport default {}\n", script.Content)

	style := nodes[2]
	require.Equal(t, KindStyle, style.Kind.Class)
	require.True(t, style.Scoped)
	require.Equal(t, "\n.app { color: red; }\n", style.Content)

	// Offsets must recover the exact source span of each node
	for _, node := range nodes {
		require.Equal(t, node.Content, string(content[node.Start:node.End]))
	}
}

func TestCanParseSectionShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []SectionNode
		wantErr string
	}{
		{
			name:    "custom kind with language",
			content: `<config lang="php">return ['a'=>1];</config>`,
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindCustom, Name: "config"},
					Lang:    "php",
					Content: "return ['a'=>1];",
				},
			},
		},
		{
			name:    "self closing external reference",
			content: `<config src="./app.ini" />`,
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindCustom, Name: "config"},
					SrcPath: "./app.ini",
				},
			},
		},
		{
			name:    "self closing style does not swallow following sections",
			content: "<style src=\"a.css\"/>\n<script>a()</script>\n",
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindStyle, Name: "style"},
					SrcPath: "a.css",
				},
				{
					Kind:    SectionKind{Class: KindScript, Name: "script"},
					Content: "a()",
				},
			},
		},
		{
			name:    "self closing script does not swallow following sections",
			content: "<script src=\"a.js\"/><style>p{}</style>",
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindScript, Name: "script"},
					SrcPath: "a.js",
				},
				{
					Kind:    SectionKind{Class: KindStyle, Name: "style"},
					Content: "p{}",
				},
			},
		},
		{
			name:    "tag names are lowercased",
			content: "<Config>x</Config>",
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindCustom, Name: "config"},
					Content: "x",
				},
			},
		},
		{
			name:    "nested same-name sections stay opaque",
			content: "<template><template>x</template>y</template>",
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindTemplate, Name: "template"},
					Content: "<template>x</template>y",
				},
			},
		},
		{
			name:    "loose text between sections is skipped",
			content: "hello\n<script>a()</script>\n<!-- note -->\n",
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindScript, Name: "script"},
					Content: "a()",
				},
			},
		},
		{
			name:    "markup inside template is not descended into",
			content: "<template>\n<style>ignored</style>\n</template>",
			want: []SectionNode{
				{
					Kind:    SectionKind{Class: KindTemplate, Name: "template"},
					Content: "\n<style>ignored</style>\n",
				},
			},
		},
		{
			name:    "unclosed section",
			content: "<template><div>",
			wantErr: "unclosed <template> section",
		},
		{
			name:    "unexpected closing tag",
			content: "</template>",
			wantErr: "unexpected closing tag </template>",
		},
	}

	parser := NewParser()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := parser.Parse([]byte(tc.content), "doc.sect")
			if tc.wantErr != "" {
				require.Error(t, err)
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Contains(t, parseErr.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, nodes, len(tc.want))
			for i, want := range tc.want {
				require.Equal(t, want.Kind, nodes[i].Kind)
				require.Equal(t, want.Lang, nodes[i].Lang)
				require.Equal(t, want.Content, nodes[i].Content)
				require.Equal(t, want.SrcPath, nodes[i].SrcPath)
			}
		})
	}
}

func TestParseErrorCarriesPath(t *testing.T) {
	parser := NewParser()
	_, err := parser.Parse([]byte("</style>"), "widget.sect")
	require.Error(t, err)
	require.Contains(t, err.Error(), "widget.sect")
}
