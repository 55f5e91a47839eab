package sectile

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Config is the pipeline's construction-time configuration. The three
// built-in section compilers are injected capabilities; the maps extend or
// override the tag registry. A Config is never mutated after [NewPipeline].
type Config struct {
	// Compilers for the built-in section kinds
	Template SectionCompiler
	Script   SectionCompiler
	Style    SectionCompiler

	// Extension resolvers, merged over the built-in ones. Keys must be
	// lowercase tag names: the parser lowercases tags, so a mixed-case
	// key can never match a document section.
	Tags map[string]ExtensionResolver
	// Compilers for custom section kinds, keyed by lowercase tag name
	CustomCompilers map[string]CustomCompiler
	// Optional per-kind post-processing transforms
	OutputModifiers map[string]OutputModifier

	// CompilerOptions is forwarded verbatim to the section compilers
	// (per-language sub-compiler settings and the like); the pipeline
	// never inspects it
	CompilerOptions map[string]any

	// Loader resolves external src references of custom sections
	Loader FileLoader
}

// Pipeline splits composite documents into per-kind compiled artifacts.
// It holds only immutable configuration, so one Pipeline instance may
// process any number of documents concurrently.
type Pipeline struct {
	parser *Parser
	reg    *Registry
	cfg    Config
}

func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{
		parser: NewParser(),
		reg:    newRegistry(cfg),
		cfg:    cfg,
	}
}

// docState is one document's working state: identity hash, shape, and the
// extension/language resolved per kind. Allocated fresh inside every
// [Pipeline.Compile] call; nothing here ever lives on the Pipeline itself,
// so concurrent documents cannot observe each other's resolutions.
type docState struct {
	scopeID string
	shape   DocumentShape
	exts    map[string]string
	langs   map[string]string
}

// Compile runs the full per-document pipeline: parse, validate, dispatch
// every section to its compiler concurrently, merge same-kind results in
// document order, apply output modifiers, and compute one artifact per
// non-empty kind.
//
// Any section compiler failure aborts the whole document with a
// [*CompileError]; no partial artifacts are returned. In-flight sibling
// compiles are not cancelled beyond context propagation, their results are
// discarded.
func (p *Pipeline) Compile(ctx context.Context, doc Document) ([]Artifact, error) {
	if !utf8.Valid(doc.Content) {
		return nil, &UnsupportedInputError{Path: doc.Path}
	}

	nodes, err := p.parser.Parse(doc.Content, doc.Path)
	if err != nil {
		return nil, err
	}

	shape, err := Validate(nodes)
	if err != nil {
		return nil, err
	}

	state := &docState{
		scopeID: ScopeHash(doc),
		shape:   shape,
		exts:    make(map[string]string, len(nodes)),
		langs:   make(map[string]string, len(nodes)),
	}

	slog.Debug("compiling document",
		"path", doc.Path,
		"sections", len(nodes),
		"scope", state.scopeID,
		"scoped_style", shape.HasScopedStyle,
	)

	// Resolve extensions and carried languages up front: resolvers are
	// pure, and the first node of each kind fixes that kind's values for
	// the document.
	for _, node := range nodes {
		tag := node.Kind.Name
		if _, seen := state.exts[tag]; seen {
			continue
		}
		if _, ok := p.reg.lookup(tag); !ok {
			continue
		}
		state.exts[tag] = p.reg.extensionFor(node, doc.Path)
		state.langs[tag] = node.Lang
	}

	parts := make([]*CompiledPart, len(nodes))
	g, gctx := errgroup.WithContext(ctx)
	for i, node := range nodes {
		i, node := i, node
		desc, ok := p.reg.lookup(node.Kind.Name)
		if !ok {
			// Unregistered kinds are never extracted
			continue
		}
		if node.Kind.Class == KindCustom && desc.compile == nil {
			continue
		}

		g.Go(func() error {
			part, err := p.compileNode(gctx, doc, node, desc, state)
			if err != nil {
				return &CompileError{Path: doc.Path, Err: err}
			}
			parts[i] = &part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	compiled := make([]CompiledPart, 0, len(parts))
	for _, part := range parts {
		if part != nil {
			compiled = append(compiled, *part)
		}
	}

	results, order := Merge(compiled)

	for tag, content := range results {
		if modify := p.cfg.OutputModifiers[tag]; modify != nil {
			results[tag] = modify(content, state.langs[tag])
		}
	}

	artifacts := make([]Artifact, 0, len(order))
	for _, tag := range order {
		content := results[tag]
		if content == "" {
			continue
		}
		artifacts = append(artifacts, Artifact{
			Path:    ResolveArtifactPath(doc.Path, state.exts[tag]),
			Content: []byte(content),
		})
	}

	slog.Debug("document compiled", "path", doc.Path, "artifacts", len(artifacts))
	return artifacts, nil
}

// Process compiles a document and delivers its artifacts to sink. It
// returns only once every artifact has been accepted downstream, so the
// caller's per-document completion signal cannot fire early.
func (p *Pipeline) Process(ctx context.Context, doc Document, sink Sink) ([]Artifact, error) {
	artifacts, err := p.Compile(ctx, doc)
	if err != nil {
		return nil, err
	}
	if err := EmitArtifacts(ctx, sink, artifacts); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (p *Pipeline) compileNode(ctx context.Context, doc Document, node SectionNode, desc tagDescriptor, state *docState) (CompiledPart, error) {
	if node.Kind.Class == KindCustom {
		content, err := p.customContent(ctx, doc, node)
		if err != nil {
			return CompiledPart{}, err
		}
		out, err := desc.compile(ctx, CustomCompileInput{
			Tag:     node.Kind.Name,
			Content: content,
			Lang:    node.Lang,
			Path:    doc.Path,
		})
		if err != nil {
			return CompiledPart{}, fmt.Errorf("<%s> section: %w", node.Kind.Name, err)
		}
		return CompiledPart{Tag: node.Kind.Name, Content: out, Lang: node.Lang}, nil
	}

	var compiler SectionCompiler
	switch node.Kind.Class {
	case KindTemplate:
		compiler = p.cfg.Template
	case KindScript:
		compiler = p.cfg.Script
	case KindStyle:
		compiler = p.cfg.Style
	}
	if compiler == nil {
		return CompiledPart{}, fmt.Errorf("no %s compiler configured", node.Kind.Name)
	}

	out, err := compiler.Compile(ctx, CompileInput{
		Node:        node,
		Path:        doc.Path,
		ScopeID:     state.scopeID,
		ScopedStyle: state.shape.HasScopedStyle,
		Document:    doc.Content,
		Options:     p.cfg.CompilerOptions,
	})
	if err != nil {
		return CompiledPart{}, fmt.Errorf("<%s> section: %w", node.Kind.Name, err)
	}
	return CompiledPart{Tag: node.Kind.Name, Content: out, Lang: node.Lang}, nil
}

// customContent yields what a custom compiler should see for one node:
// either the loaded contents of its src reference, or its de-indented
// inline text.
func (p *Pipeline) customContent(ctx context.Context, doc Document, node SectionNode) (string, error) {
	if node.SrcPath == "" {
		return Deindent(node.Content), nil
	}
	if p.cfg.Loader == nil {
		return "", fmt.Errorf("<%s> section references %q but no file loader is configured", node.Kind.Name, node.SrcPath)
	}
	content, err := p.cfg.Loader.Load(ctx, node.SrcPath, doc.Path)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", node.SrcPath, err)
	}
	return string(content), nil
}
