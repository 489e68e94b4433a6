/*
Package dictionary supplies the raw word list the lexicon is built from.

A Source fetches the newline-delimited text; a BlobCache stores it under a
fixed key so later fetches can skip the source. Both are safe to call any
number of times.
*/
package dictionary

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/mmap"
)

// Source fetches the raw word list.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]byte, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// FileSource reads a plain text word list from disk through a memory map.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the word list at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Fetch validates the file and returns its contents.
func (fs *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := DetectFileFormat(fs.Path); err != nil {
		return nil, err
	}

	r, err := mmap.Open(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to map word list %s: %w", fs.Path, err)
	}
	defer r.Close()

	// Copy out: the mapping is gone once r is closed.
	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read word list %s: %w", fs.Path, err)
	}
	log.Debugf("Read word list %s (%d bytes)", fs.Path, len(data))
	return data, nil
}

// StaticSource serves a word list held in memory.
type StaticSource []byte

// Fetch returns a copy of the held text.
func (s StaticSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]byte(nil), s...), nil
}
