package sectile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeGroupsByTagInDocumentOrder(t *testing.T) {
	parts := []CompiledPart{
		{Tag: "template", Content: "<div/>"},
		{Tag: "style", Content: ".a{}"},
		{Tag: "script", Content: "a()"},
		{Tag: "style", Content: ".b{}"},
		{Tag: "style", Content: ".c{}"},
	}

	rs, order := Merge(parts)

	require.Equal(t, []string{"template", "style", "script"}, order)
	require.Equal(t, ResultSet{
		"template": "<div/>",
		"style":    ".a{}.b{}.c{}",
		"script":   "a()",
	}, rs)
}

func TestMergeAbsentKindHasNoEntry(t *testing.T) {
	rs, order := Merge([]CompiledPart{{Tag: "script", Content: "a()"}})

	require.Equal(t, []string{"script"}, order)
	_, present := rs["style"]
	require.False(t, present)
}

func TestMergeEmptyParts(t *testing.T) {
	rs, order := Merge(nil)
	require.Empty(t, rs)
	require.Empty(t, order)
}
