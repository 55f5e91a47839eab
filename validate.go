package sectile

// DocumentShape is what structural validation learns about a document:
// per-kind section counts and whether any style section is scoped. The
// scoped flag is threaded into template compilation, which typically has to
// inject scope attributes.
type DocumentShape struct {
	Counts         map[string]int
	HasScopedStyle bool
}

// Validate enforces document-shape invariants before any compiler runs:
// at most one template and at most one script section per document. Style
// and custom kinds may occur any number of times.
func Validate(nodes []SectionNode) (DocumentShape, error) {
	shape := DocumentShape{Counts: make(map[string]int, len(nodes))}

	for _, node := range nodes {
		shape.Counts[node.Kind.Name]++
		if node.Kind.Class == KindStyle && node.Scoped {
			shape.HasScopedStyle = true
		}
	}

	for _, kind := range []string{TagTemplate, TagScript} {
		if n := shape.Counts[kind]; n > 1 {
			return DocumentShape{}, &ValidationError{Kind: kind, Count: n}
		}
	}

	return shape, nil
}
