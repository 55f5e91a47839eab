package sectile

import (
	"path/filepath"
	"strings"
)

// ResolveArtifactPath determines the output path for one section kind of a
// document: same directory, same base name, the resolved extension. The
// extension may itself be dotted (e.g. "config.php").
//
// A pathless document gets the literal base "out".
func ResolveArtifactPath(srcPath, ext string) string {
	if srcPath == "" {
		return "out." + ext
	}
	return strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + "." + ext
}

func MustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}
