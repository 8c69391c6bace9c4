// Package liststore persists task lists as JSON documents, one file per
// list, inside a single storage directory.
//
// The storage key for a list is its name lowercased with spaces replaced by
// underscores, plus the ".json" extension. The mapping is deliberately
// simple and therefore lossy: "My List" and "My_List" share a key and will
// overwrite each other, and Identifiers cannot tell an original underscore
// from an original space. The document itself stores the exact name, so a
// loaded list always carries it unmangled.
package liststore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jfaure/tasklist/list"
)

// Ext is the file extension for list documents.
const Ext = ".json"

var (
	// ErrListNotFound is returned when no document exists for an identifier.
	ErrListNotFound = errors.New("list not found")

	// ErrCorruptList is returned when a stored document does not parse or
	// fails validation.
	ErrCorruptList = errors.New("list document is corrupt")
)

// Store reads and writes list documents under a single directory. Every
// operation is a single synchronous filesystem access; there is no caching
// and no locking, since the program assumes exclusive single-process use of
// the directory.
type Store struct {
	dir    string
	logger *log.Logger
}

// Options configures a store.
type Options struct {
	// Logger receives debug-level storage diagnostics. If nil, logs are
	// discarded.
	Logger *log.Logger
}

// Open returns a store rooted at dir, creating the directory if needed.
func Open(dir string, opts Options) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// KeyFor derives the storage key for a list name: lowercased, spaces
// replaced by underscores, with the document extension appended.
func KeyFor(name string) string {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "_")
	return key + Ext
}

func identifierFor(filename string) string {
	id := strings.TrimSuffix(filename, Ext)
	return strings.ReplaceAll(id, "_", " ")
}

func (s *Store) path(identifier string) string {
	return filepath.Join(s.dir, KeyFor(identifier))
}

// Exists reports whether a document is stored for the identifier.
func (s *Store) Exists(identifier string) bool {
	_, err := os.Stat(s.path(identifier))
	return err == nil
}

// Save serializes the full list and overwrites any prior document at its
// key. The write goes to a temp file first and is renamed into place, so a
// crash mid-write cannot truncate an existing document.
func (s *Store) Save(l *list.List) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("validate list: %w", err)
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	data = append(data, '\n')

	path := s.path(l.Name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logger.Debug("saved list", "name", l.Name, "path", path, "items", len(l.Items))
	return nil
}

// Load reads and decodes the document for the identifier. It fails with
// ErrListNotFound when no document exists and ErrCorruptList when the
// content does not parse or fails validation; other I/O errors surface
// wrapped.
func (s *Store) Load(identifier string) (*list.List, error) {
	path := s.path(identifier)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("read list %q: %w", identifier, err)
	}

	var l list.List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCorruptList, identifier, err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCorruptList, identifier, err)
	}

	s.logger.Debug("loaded list", "name", l.Name, "path", path, "items", len(l.Items))
	return &l, nil
}

// Delete removes the stored document for the identifier.
func (s *Store) Delete(identifier string) error {
	path := s.path(identifier)
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrListNotFound, identifier)
	}
	if err != nil {
		return fmt.Errorf("delete list %q: %w", identifier, err)
	}

	s.logger.Debug("deleted list", "identifier", identifier, "path", path)
	return nil
}

// Identifiers returns a sorted list of identifiers for which a document
// exists. Identifiers are reverse-derived from filenames, so a name that
// originally contained underscores comes back with spaces instead.
func (s *Store) Identifiers() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read storage dir: %w", err)
	}

	var identifiers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, Ext) {
			continue
		}
		identifiers = append(identifiers, identifierFor(name))
	}

	sort.Strings(identifiers)
	return identifiers, nil
}
