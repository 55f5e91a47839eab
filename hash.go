package sectile

import (
	"crypto/sha256"
	"encoding/hex"
)

// scopeHashLen is the number of hex characters kept from the digest. Short
// enough to be readable in generated selectors, long enough to not collide
// within one project.
const scopeHashLen = 8

// ScopeHash returns the deterministic identity hash correlating a document's
// scoped style output with its template output.
//
// The hash is derived from the document path when one is set, so two
// compiles of the same file always scope identically regardless of content
// edits. A pathless document falls back to hashing its content.
func ScopeHash(doc Document) string {
	var sum [sha256.Size]byte
	if doc.Path != "" {
		sum = sha256.Sum256([]byte(doc.Path))
	} else {
		sum = sha256.Sum256(doc.Content)
	}
	return hex.EncodeToString(sum[:])[:scopeHashLen]
}
