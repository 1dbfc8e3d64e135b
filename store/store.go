// Package store persists the working files the compare feature operates on,
// together with their sidecar metadata and compressed snapshots. The compare
// core itself never touches disk; the daemon loads both sides here and hands
// the raw text over.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

const (
	workingFileExt = ".sql"
	metadataExt    = ".meta.json"
	snapshotExt    = ".snap.br"
)

// Metadata is the sidecar record kept next to a working file.
type Metadata struct {
	Label   string    `json:"label"`
	SavedAt time.Time `json:"saved_at"`
	Tags    []string  `json:"tags,omitempty"`
}

// Store reads and writes working files under a single data directory.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// SaveWorkingFile writes the raw text of a named working file.
func (s *Store) SaveWorkingFile(name, content string) error {
	path, err := s.path(name, workingFileExt)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// LoadWorkingFile reads the raw text of a named working file.
func (s *Store) LoadWorkingFile(name string) (string, error) {
	path, err := s.path(name, workingFileExt)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("loading working file %q: %w", name, err)
	}
	return string(data), nil
}

// ListWorkingFiles returns the names of all stored working files, sorted.
func (s *Store) ListWorkingFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing store directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), workingFileExt); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// SaveMetadata writes the sidecar record for a named working file.
func (s *Store) SaveMetadata(name string, meta Metadata) error {
	path, err := s.path(name, metadataExt)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata for %q: %w", name, err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadMetadata reads the sidecar record for a named working file.
func (s *Store) LoadMetadata(name string) (Metadata, error) {
	path, err := s.path(name, metadataExt)
	if err != nil {
		return Metadata{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("loading metadata for %q: %w", name, err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("decoding metadata for %q: %w", name, err)
	}
	return meta, nil
}

// SaveSnapshot writes a brotli-compressed snapshot of a working file's text.
// Snapshots are the comparison baseline ("original" side) and accumulate, so
// they are stored compressed.
func (s *Store) SaveSnapshot(name, content string) error {
	path, err := s.path(name, snapshotExt)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write([]byte(content)); err != nil {
		return fmt.Errorf("compressing snapshot %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("compressing snapshot %q: %w", name, err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// LoadSnapshot reads and decompresses a snapshot.
func (s *Store) LoadSnapshot(name string) (string, error) {
	path, err := s.path(name, snapshotExt)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("loading snapshot %q: %w", name, err)
	}

	text, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return "", fmt.Errorf("decompressing snapshot %q: %w", name, err)
	}
	return string(text), nil
}

// path validates a working-file name and resolves it inside the store
// directory. Names must not traverse outside the directory.
func (s *Store) path(name, ext string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid working file name %q", name)
	}
	return filepath.Join(s.dir, name+ext), nil
}
