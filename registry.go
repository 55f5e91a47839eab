package sectile

// fallbackExtension is used when a registered tag's resolver yields nothing
// for a particular node.
const fallbackExtension = "txt"

// tagDescriptor pairs a tag's extension resolver with its custom compiler.
// Built-in kinds leave compile nil; they are handled by the injected
// [SectionCompiler] capabilities instead.
type tagDescriptor struct {
	resolve ExtensionResolver
	compile CustomCompiler
}

// Registry maps section-kind names to their descriptors. It is built once
// per pipeline configuration and never mutated afterwards, so it is safe to
// share across concurrently processed documents.
type Registry struct {
	tags map[string]tagDescriptor
}

// newRegistry merges the built-in resolvers with caller-supplied overrides
// and additions. Overrides replace same-named built-ins; custom compilers
// register their kind even without an explicit resolver entry.
func newRegistry(cfg Config) *Registry {
	tags := map[string]tagDescriptor{
		TagTemplate: {resolve: resolveTemplate},
		TagScript:   {resolve: resolveScript},
		TagStyle:    {resolve: resolveStyle},
	}

	for name, resolve := range cfg.Tags {
		desc := tags[name]
		desc.resolve = resolve
		tags[name] = desc
	}
	for name, compile := range cfg.CustomCompilers {
		desc := tags[name]
		desc.compile = compile
		tags[name] = desc
	}

	return &Registry{tags: tags}
}

// lookup returns the descriptor for a tag name. Kinds absent from the
// registry are never extracted at all.
func (r *Registry) lookup(name string) (tagDescriptor, bool) {
	desc, ok := r.tags[name]
	return desc, ok
}

// extensionFor resolves the output extension for one node, falling back to
// the literal "txt" when the tag has no resolver or the resolver yields an
// empty string.
func (r *Registry) extensionFor(node SectionNode, path string) string {
	desc, ok := r.tags[node.Kind.Name]
	if !ok || desc.resolve == nil {
		return fallbackExtension
	}
	if ext := desc.resolve(node.Lang, path, node); ext != "" {
		return ext
	}
	return fallbackExtension
}

func resolveTemplate(lang, _ string, _ SectionNode) string {
	if lang != "" {
		return lang
	}
	return "html"
}

func resolveScript(_, _ string, _ SectionNode) string { return "js" }

func resolveStyle(_, _ string, _ SectionNode) string { return "css" }
