// Package source supplies document providers for the extraction pipeline.
// A provider owns turning its document into page-ordered plain text; the
// pipeline never touches document bytes itself.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source yields one document's identifier and extracted text.
type Source interface {
	ID() string
	Text(ctx context.Context) (string, error)
}

// FileSource reads a plain-text document from disk.
type FileSource struct {
	Path string
	// Name overrides the identifier; empty means the file's base name.
	Name string
}

func (s *FileSource) ID() string {
	if s.Name != "" {
		return s.Name
	}
	return filepath.Base(s.Path)
}

func (s *FileSource) Text(context.Context) (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return string(b), nil
}

// HTMLSource reads an HTML document from disk and extracts its readable text.
type HTMLSource struct {
	Path string
	Name string
}

func (s *HTMLSource) ID() string {
	if s.Name != "" {
		return s.Name
	}
	return filepath.Base(s.Path)
}

func (s *HTMLSource) Text(context.Context) (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return TextFromHTML(b), nil
}

// FromPath picks a provider for a file by extension.
func FromPath(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return &FileSource{Path: path}, nil
	case ".html", ".htm":
		return &HTMLSource{Path: path}, nil
	case ".pdf":
		return &PDFSource{Path: path}, nil
	}
	return nil, fmt.Errorf("unsupported document type: %s", path)
}

// FromDir resolves every supported document directly under dir, in name
// order so batch runs are deterministic.
func FromDir(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var out []Source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		src, err := FromPath(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	if len(out) == 0 {
		return nil, fmt.Errorf("no supported documents in %s", dir)
	}
	return out, nil
}
