package sectile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopeHashIsDeterministic(t *testing.T) {
	a := Document{Path: "/app/widget.sect", Content: []byte("one")}
	b := Document{Path: "/app/widget.sect", Content: []byte("two")}

	// Path wins over content: same file scopes identically across edits
	require.Equal(t, ScopeHash(a), ScopeHash(b))
	require.Len(t, ScopeHash(a), scopeHashLen)

	c := Document{Path: "/app/other.sect", Content: []byte("one")}
	require.NotEqual(t, ScopeHash(a), ScopeHash(c))
}

func TestScopeHashPathlessFallsBackToContent(t *testing.T) {
	a := Document{Content: []byte("alpha")}
	b := Document{Content: []byte("alpha")}
	c := Document{Content: []byte("beta")}

	require.Equal(t, ScopeHash(a), ScopeHash(b))
	require.NotEqual(t, ScopeHash(a), ScopeHash(c))
}
