package sectile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryResolvesBuiltinExtensions(t *testing.T) {
	reg := newRegistry(Config{})

	tests := []struct {
		name string
		node SectionNode
		want string
	}{
		{
			name: "template defaults to html",
			node: SectionNode{Kind: KindOf("template")},
			want: "html",
		},
		{
			name: "template honors lang",
			node: SectionNode{Kind: KindOf("template"), Lang: "pug"},
			want: "pug",
		},
		{
			name: "script is always js",
			node: SectionNode{Kind: KindOf("script"), Lang: "ts"},
			want: "js",
		},
		{
			name: "style is always css",
			node: SectionNode{Kind: KindOf("style"), Lang: "scss"},
			want: "css",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, reg.extensionFor(tc.node, "app.sect"))
		})
	}
}

func TestRegistryOverridesAndAdditions(t *testing.T) {
	reg := newRegistry(Config{
		Tags: map[string]ExtensionResolver{
			// Override a built-in
			"script": func(lang, _ string, _ SectionNode) string {
				if lang == "ts" {
					return "ts"
				}
				return "js"
			},
			// Add a custom kind
			"config": func(lang, _ string, _ SectionNode) string {
				if lang == "php" {
					return "config.php"
				}
				return "ini"
			},
		},
	})

	script := SectionNode{Kind: KindOf("script"), Lang: "ts"}
	require.Equal(t, "ts", reg.extensionFor(script, "app.sect"))

	config := SectionNode{Kind: KindOf("config")}
	require.Equal(t, "ini", reg.extensionFor(config, "app.sect"))

	config.Lang = "php"
	require.Equal(t, "config.php", reg.extensionFor(config, "app.sect"))
}

func TestRegistryFallsBackToTxt(t *testing.T) {
	reg := newRegistry(Config{
		Tags: map[string]ExtensionResolver{
			"notes": func(_, _ string, _ SectionNode) string { return "" },
		},
		CustomCompilers: map[string]CustomCompiler{
			"meta": func(_ context.Context, in CustomCompileInput) (string, error) { return in.Content, nil },
		},
	})

	// Resolver yields nothing
	notes := SectionNode{Kind: KindOf("notes")}
	require.Equal(t, "txt", reg.extensionFor(notes, "app.sect"))

	// Compiler registered without any resolver
	meta := SectionNode{Kind: KindOf("meta")}
	require.Equal(t, "txt", reg.extensionFor(meta, "app.sect"))

	_, ok := reg.lookup("meta")
	require.True(t, ok)
	_, ok = reg.lookup("unknown")
	require.False(t, ok)
}
