package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/hgrant/sectile"
)

const (
	maxFiles      = 100
	maxWorkers    = 4
	fileExtension = ".sect"
)

// SplitResult describes one successfully processed document.
type SplitResult struct {
	Path      string
	Artifacts []string
}

type processResult struct {
	Path      string
	Artifacts []string
	Error     error
}

// Processor runs the split pipeline over a file or a directory tree,
// writing artifacts through the configured sink.
type Processor struct {
	pipeline *sectile.Pipeline
	sink     sectile.Sink
}

func NewProcessor(pipeline *sectile.Pipeline, sink sectile.Sink) *Processor {
	return &Processor{
		pipeline: pipeline,
		sink:     sink,
	}
}

// ProcessPath processes a single document file, or every document under a
// directory root.
func (p *Processor) ProcessPath(ctx context.Context, path string) ([]SplitResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return p.processDirectory(ctx, path)
	}

	result := p.processFile(ctx, path)
	if result.Error != nil {
		return nil, result.Error
	}

	return []SplitResult{{
		Path:      result.Path,
		Artifacts: result.Artifacts,
	}}, nil
}

// findFiles walks the directory tree starting at root and returns the
// processable documents.
//
// If a .git directory is found, .gitignore patterns are honored.
func (p *Processor) findFiles(root string) ([]string, error) {
	var files []string
	var patterns []gitignore.Pattern

	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		patterns = append(patterns, gitignore.ParsePattern(".git/", nil))

		if data, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
					patterns = append(patterns, gitignore.ParsePattern(line, nil))
				}
			}
		}
	}

	matcher := gitignore.NewMatcher(patterns)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if len(patterns) > 0 {
			components := strings.Split(relPath, string(os.PathSeparator))
			if matcher.Match(components, info.IsDir()) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if !info.IsDir() && strings.HasSuffix(path, fileExtension) {
			if len(files) >= maxFiles {
				return fmt.Errorf("max files limit reached (%d)", maxFiles)
			}
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found", fileExtension)
	}

	return files, nil
}

func (p *Processor) processDirectory(ctx context.Context, root string) ([]SplitResult, error) {
	startTime := time.Now()
	slog.Debug("starting directory processing", "path", root)

	files, err := p.findFiles(root)
	if err != nil {
		return nil, err
	}

	slog.Debug("found documents to process", "count", len(files), "duration", time.Since(startTime))

	jobs := make(chan string, len(files))
	results := make(chan processResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- p.processFile(ctx, path)
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var failures []error
	var splitResults []SplitResult

	for result := range results {
		if result.Error != nil {
			var unsupported *sectile.UnsupportedInputError
			if errors.As(result.Error, &unsupported) {
				// Skipped, not failed: the rest of the run continues
				slog.Warn("skipping document", "path", result.Path, "reason", result.Error)
				continue
			}
			failures = append(failures, fmt.Errorf("failed to process %s: %w", result.Path, result.Error))
			slog.Debug("failed to process document", "path", result.Path, "error", result.Error)
			continue
		}

		absRoot, _ := filepath.Abs(root)
		relSource, _ := filepath.Rel(absRoot, result.Path)

		splitResults = append(splitResults, SplitResult{
			Path:      relSource,
			Artifacts: result.Artifacts,
		})

		slog.Debug("document split", "source", relSource, "artifacts", len(result.Artifacts))
	}

	if len(failures) > 0 {
		return splitResults, fmt.Errorf("encountered %d errors during compilation. Please rerun with -debug to see trace", len(failures))
	}

	slog.Debug("compilation completed", "duration", time.Since(startTime), "processed", len(splitResults))
	return splitResults, nil
}

func (p *Processor) processFile(ctx context.Context, path string) processResult {
	startTime := time.Now()
	var result processResult

	absPath, err := filepath.Abs(path)
	if err != nil {
		result.Error = fmt.Errorf("failed to resolve absolute path: %w", err)
		return result
	}

	result.Path = absPath

	slog.Debug("processing document", "path", absPath)

	if !strings.HasSuffix(absPath, fileExtension) {
		result.Error = fmt.Errorf("invalid file extension, expected %s", fileExtension)
		return result
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		result.Error = fmt.Errorf("error reading file: %w", err)
		return result
	}

	artifacts, err := p.pipeline.Process(ctx, sectile.Document{
		Content: content,
		Path:    absPath,
	}, p.sink)
	if err != nil {
		result.Error = err
		return result
	}

	for _, artifact := range artifacts {
		result.Artifacts = append(result.Artifacts, artifact.Path)
	}

	slog.Debug("document processed",
		"path", absPath,
		"duration", time.Since(startTime))

	return result
}
