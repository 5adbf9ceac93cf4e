package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File is a Store keeping one <key>.json file per key inside a directory.
// Values are written through a temporary file and renamed into place, so a
// crash mid-write never leaves a truncated value behind.
type File struct {
	dir string
}

// NewFile returns a file-backed store rooted at dir. The directory is
// created on first write.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (s *File) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value stored under key, or reports ok=false if the file
// does not exist.
func (s *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("could not read %q: %w", s.path(key), err)
	}
	return string(b), true, nil
}

// Set writes value under key, replacing any previous value.
func (s *File) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", key, err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace %q: %w", s.path(key), err)
	}
	return nil
}

// Remove deletes the key's file. Removing an absent key is a no-op.
func (s *File) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not remove %q: %w", s.path(key), err)
	}
	return nil
}

var _ Store = (*File)(nil)
