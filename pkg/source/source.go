// Package source reads a source file whole and writes cleaned content back
// over it without leaving a half-written file behind.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultBackupSuffix is appended to the original path when a backup is kept.
const DefaultBackupSuffix = ".bak"

var (
	// ErrRead is returned when the source file cannot be read.
	ErrRead = errors.New("read failed")

	// ErrWrite is returned when the cleaned content cannot be written.
	ErrWrite = errors.New("write failed")
)

// File is a source file loaded into memory.
type File struct {
	// Path is the file's real location, with symlinks resolved, so writes
	// land on the linked file instead of replacing the link.
	Path    string
	Content string
	Mode    fs.FileMode
}

// WriteOptions controls how cleaned content replaces the original.
type WriteOptions struct {
	// Backup keeps a copy of the original content next to the file.
	Backup bool

	// BackupSuffix is appended to the path for the backup copy
	// (uses DefaultBackupSuffix if empty).
	BackupSuffix string
}

// Read loads the whole file at path.
func Read(ctx context.Context, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	info, err := os.Stat(realPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrRead, path)
	}

	data, err := os.ReadFile(realPath) // #nosec G304 -- user-provided source path is expected
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	return &File{
		Path:    realPath,
		Content: string(data),
		Mode:    info.Mode().Perm(),
	}, nil
}

// Write replaces f's file with content. The content goes to a temporary file
// in the same directory which is then renamed over the original, so a failure
// leaves the original untouched.
func Write(ctx context.Context, f *File, content string, opts WriteOptions) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.Backup {
		suffix := opts.BackupSuffix
		if suffix == "" {
			suffix = DefaultBackupSuffix
		}
		if err := os.WriteFile(f.Path+suffix, []byte(f.Content), f.Mode); err != nil {
			return fmt.Errorf("%w: backup of %s: %w", ErrWrite, f.Path, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, f.Path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrWrite, f.Path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, f.Path, err)
	}
	if err = os.Chmod(tmpPath, f.Mode); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, f.Path, err)
	}
	if err = os.Rename(tmpPath, f.Path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, f.Path, err)
	}

	f.Content = content
	return nil
}
