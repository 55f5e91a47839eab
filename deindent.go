package sectile

import "strings"

// Deindent strips the longest common leading whitespace from every non-blank
// line of s. Inline custom-tag content is typically indented to match the
// surrounding markup; compilers expect it flush left.
func Deindent(s string) string {
	lines := strings.Split(s, "\n")

	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false
			continue
		}
		prefix = commonPrefix(prefix, indent)
		if prefix == "" {
			return s
		}
	}

	if prefix == "" {
		return s
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			// Blank lines may carry shorter (or no) indentation
			lines[i] = strings.TrimPrefix(line, prefix)
			continue
		}
		lines[i] = line[len(prefix):]
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
