// Package storage writes rendered digests to the filesystem.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"news-digest/internal/domain/ports"
)

const filePerm os.FileMode = 0o644

// MarkdownFile stores the digest at a fixed path, replacing the previous content.
type MarkdownFile struct {
	fs     afero.Fs
	path   string
	atomic bool
	logger ports.Logger
}

var _ ports.DigestStore = (*MarkdownFile)(nil)

// NewMarkdownFile creates a store for path on fs. When atomic is set the content is
// written to a sibling temp file and renamed over the target, so a failed write keeps
// the previous file intact.
func NewMarkdownFile(fs afero.Fs, path string, atomic bool, logger ports.Logger) *MarkdownFile {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &MarkdownFile{fs: fs, path: path, atomic: atomic, logger: logger}
}

// Path returns the target file path.
func (m *MarkdownFile) Path() string { return m.path }

// Save overwrites the target with content.
func (m *MarkdownFile) Save(ctx context.Context, content string) error {
	if m.path == "" {
		return fmt.Errorf("output path is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if m.atomic {
		err = m.writeAtomic([]byte(content))
	} else {
		err = afero.WriteFile(m.fs, m.path, []byte(content), filePerm)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", m.path, err)
	}

	if m.logger != nil {
		m.logger.Debug(ctx, "digest written", "path", m.path, "bytes", len(content), "atomic", m.atomic)
	}
	return nil
}

func (m *MarkdownFile) writeAtomic(data []byte) (err error) {
	dir := filepath.Dir(m.path)
	tmp, err := afero.TempFile(m.fs, dir, "."+filepath.Base(m.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = m.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = m.fs.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = m.fs.Rename(tmpName, m.path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}
