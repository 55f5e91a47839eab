package sectile

import "context"

// Document is one composite source file to be split: raw text content plus
// the source path used for artifact naming and identity hashing.
//
// The path may be empty; a pathless document still compiles, its identity
// hash is derived from its content instead (see [ScopeHash]).
type Document struct {
	// The raw document text
	Content []byte
	// The source file path, may be empty
	Path string
}

// KindClass discriminates the built-in section kinds from user-defined ones.
type KindClass int

const (
	KindTemplate KindClass = iota
	KindScript
	KindStyle
	KindCustom
)

const (
	TagTemplate = "template"
	TagScript   = "script"
	TagStyle    = "style"
)

// SectionKind identifies a section's role. The three built-in kinds carry
// their well-known tag name; everything else is a custom kind keyed by the
// tag name as written in the document.
type SectionKind struct {
	Class KindClass
	Name  string
}

// KindOf maps a tag name to its section kind.
func KindOf(tag string) SectionKind {
	switch tag {
	case TagTemplate:
		return SectionKind{Class: KindTemplate, Name: TagTemplate}
	case TagScript:
		return SectionKind{Class: KindScript, Name: TagScript}
	case TagStyle:
		return SectionKind{Class: KindStyle, Name: TagStyle}
	default:
		return SectionKind{Class: KindCustom, Name: tag}
	}
}

// SectionNode is one top-level tagged region of a document, as produced by
// the [Parser]. Inner content is opaque text; it is only interpreted by the
// compiler the node is dispatched to.
type SectionNode struct {
	Kind SectionKind
	// Optional language attribute (e.g. lang="scss")
	Lang string
	// Raw inline inner text, exactly as it appears between the tags
	Content string
	// Byte offsets of the inner span within the document
	Start, End int
	// Scoped marker, meaningful for style sections only
	Scoped bool
	// Non-empty when the node references another file's content
	// (src attribute) instead of carrying inline text
	SrcPath string
}

// CompiledPart is the result of compiling one section node. Lang is carried
// through so output modifiers can see which sub-compiler handled the part.
type CompiledPart struct {
	Tag     string
	Content string
	Lang    string
}

// ResultSet maps a section kind name to its merged, compiled content.
// A kind with no section in the document has no entry at all, which is what
// suppresses artifact emission for that kind.
type ResultSet map[string]string

// Artifact is one emitted output unit: the resolved output path and the
// compiled content for one section kind of one document.
type Artifact struct {
	Path    string
	Content []byte
}

// ExtensionResolver decides the output file extension for a section node.
// An empty return falls back to "txt" rather than failing.
type ExtensionResolver func(lang, path string, node SectionNode) string

// CompileInput is everything a built-in section compiler gets to see for one
// node. Options is the opaque configuration blob forwarded verbatim from
// [Config.CompilerOptions]; the pipeline never inspects it.
type CompileInput struct {
	Node        SectionNode
	Path        string
	ScopeID     string
	ScopedStyle bool
	Document    []byte
	Options     map[string]any
}

// SectionCompiler compiles one built-in section kind. Implementations exist
// per kind (template, script, style) and are injected at pipeline
// construction; they are assumed side-effect-free.
type SectionCompiler interface {
	Compile(ctx context.Context, in CompileInput) (string, error)
}

// CustomCompileInput is the input to a user-supplied custom-kind compiler.
// Content is the node's de-indented inline text, or the loaded contents of
// its src reference.
type CustomCompileInput struct {
	Tag     string
	Content string
	Lang    string
	Path    string
}

// CustomCompiler compiles the content of one custom section kind.
type CustomCompiler func(ctx context.Context, in CustomCompileInput) (string, error)

// OutputModifier post-processes one kind's merged content before emission.
// Must be pure: no I/O, deterministic given the same (content, lang) pair.
type OutputModifier func(content, lang string) string

// FileLoader resolves a node's external src reference to its content.
// Paths are as written in the document, interpreted relative to the
// document's own directory by the implementation.
type FileLoader interface {
	Load(ctx context.Context, path, fromDoc string) ([]byte, error)
}
