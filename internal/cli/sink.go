package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hgrant/sectile"
)

// FSSink writes artifacts to the local filesystem. Write returns only once
// the file is fully on disk, which is the downstream acknowledgment the
// pipeline's completion handling relies on.
type FSSink struct {
	backup *sectile.BackupManager
}

// NewFSSink creates a filesystem sink. With backup enabled, an existing
// file at an artifact's path is copied aside before being overwritten.
func NewFSSink(backup bool) *FSSink {
	s := &FSSink{}
	if backup {
		s.backup = sectile.NewBackupManager()
	}
	return s
}

func (s *FSSink) Write(_ context.Context, artifact sectile.Artifact) error {
	if s.backup != nil {
		bkPath, err := s.backup.CreateBackupOf(artifact.Path)
		if err != nil {
			return err
		}
		if bkPath != "" {
			slog.Info("artifact already existed. Created a backup.", "backup", bkPath, "artifact", artifact.Path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(artifact.Path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(artifact.Path, artifact.Content, 0644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}

	slog.Debug("artifact written", "path", artifact.Path, "bytes", len(artifact.Content))
	return nil
}

// FSLoader resolves a custom section's external src reference against the
// referencing document's directory.
type FSLoader struct{}

func (FSLoader) Load(_ context.Context, path, fromDoc string) ([]byte, error) {
	if !filepath.IsAbs(path) && fromDoc != "" {
		path = filepath.Join(filepath.Dir(fromDoc), path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading external section source: %w", err)
	}
	return content, nil
}
