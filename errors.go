package sectile

import "fmt"

// ParseError reports a document that is not well-formed at the top level.
type ParseError struct {
	Path   string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s: parse error at offset %d: %s", e.Path, e.Offset, e.Msg)
}

// ValidationError reports a document-shape violation, currently only a
// template or script kind occurring more than once.
type ValidationError struct {
	Kind  string
	Count int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("too many sections: %d <%s> sections, at most one allowed", e.Count, e.Kind)
}

// CompileError wraps a section compiler failure with the originating
// document path. The whole document is aborted; no partial artifacts are
// produced.
type CompileError struct {
	Path string
	Err  error
}

func (e *CompileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("compile error: %v", e.Err)
	}
	return fmt.Sprintf("%s: compile error: %v", e.Path, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// UnsupportedInputError reports an input document that is not representable
// as in-memory text. The document is skipped; the stream continues.
type UnsupportedInputError struct {
	Path string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("%s: input is not valid text", e.Path)
}
