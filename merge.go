package sectile

// Merge groups compiled parts by tag name, concatenating same-kind parts'
// content in document order. This is how several style blocks become one
// combined stylesheet. Kinds with no part yield no entry at all.
//
// The returned slice lists the kinds in order of first appearance, which
// fixes the emission order of the document's artifacts.
func Merge(parts []CompiledPart) (ResultSet, []string) {
	rs := make(ResultSet, len(parts))
	var order []string

	for _, part := range parts {
		if _, seen := rs[part.Tag]; !seen {
			order = append(order, part.Tag)
		}
		rs[part.Tag] += part.Content
	}

	return rs, order
}
