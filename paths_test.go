package sectile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveArtifactPath(t *testing.T) {
	tests := []struct {
		name    string
		srcPath string
		ext     string
		want    string
	}{
		{
			name:    "simple",
			srcPath: "widget.sect",
			ext:     "css",
			want:    "widget.css",
		},
		{
			name:    "with directory",
			srcPath: "/home/user/app/widget.sect",
			ext:     "js",
			want:    "/home/user/app/widget.js",
		},
		{
			name:    "dotted extension",
			srcPath: "app.sect",
			ext:     "config.php",
			want:    "app.config.php",
		},
		{
			name:    "source without extension",
			srcPath: "widget",
			ext:     "html",
			want:    "widget.html",
		},
		{
			name:    "pathless document",
			srcPath: "",
			ext:     "css",
			want:    "out.css",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveArtifactPath(tc.srcPath, tc.ext))
		})
	}
}
