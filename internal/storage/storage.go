package storage

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

// DefaultPath is where the library lives when nothing else is configured
const DefaultPath = "library.json"

// LoadStatus reports what Load found on disk
type LoadStatus int

const (
	// LoadOK means the file was read and parsed
	LoadOK LoadStatus = iota
	// LoadMissing means there was no file and the library starts empty
	LoadMissing
	// LoadCorrupt means the file could not be read or parsed and was ignored
	LoadCorrupt
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Entry pairs an item with the category text it should be filed under
type Entry struct {
	Category string
	Item     wardrobe.ClothingItem
}

// LibraryStore owns the clothing library and its JSON file
type LibraryStore struct {
	path    string
	library wardrobe.Library
	mu      sync.RWMutex
}

// New returns an empty store backed by path; call Load to read the file
func New(path string) *LibraryStore {
	if path == "" {
		path = DefaultPath
	}
	return &LibraryStore{
		path:    path,
		library: wardrobe.NewLibrary(),
	}
}

// Open creates a store and loads it, logging instead of failing when the
// file is unreadable so the tool stays usable.
func Open(path string) *LibraryStore {
	s := New(path)
	status, err := s.Load()
	switch status {
	case LoadCorrupt:
		slog.Warn("Library file ignored, starting empty", "path", s.path, "err", err)
	case LoadMissing:
		slog.Debug("No library file yet, starting empty", "path", s.path)
	default:
		slog.Debug("Library loaded", "path", s.path)
	}
	return s
}

func (s *LibraryStore) Path() string {
	return s.path
}

// Library returns a copy of the current contents
func (s *LibraryStore) Library() wardrobe.Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.library.Clone()
}

// Items returns a copy of a single category's items
func (s *LibraryStore) Items(category wardrobe.Category) ([]wardrobe.ClothingItem, error) {
	if !category.Valid() {
		return nil, &wardrobe.ValidationError{Kind: wardrobe.UnknownCategory, Input: string(category)}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.library[category]
	out := make([]wardrobe.ClothingItem, len(items))
	for i, item := range items {
		out[i] = item
		if item.Size != nil {
			out[i].Size = wardrobe.SizeOf(*item.Size)
		}
	}
	return out, nil
}

// Load replaces the in-memory library with the file's contents. A missing
// file yields an empty library. A file that cannot be read or parsed also
// yields an empty library; the returned error describes why, but the store
// remains usable and the file is left untouched.
func (s *LibraryStore) Load() (LoadStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.library = wardrobe.NewLibrary()
		if errors.Is(err, fs.ErrNotExist) {
			return LoadMissing, nil
		}
		return LoadCorrupt, &wardrobe.PersistenceError{Op: wardrobe.Unreadable, Path: s.path, Err: err}
	}

	lib, schema, err := wardrobe.DecodeLibrary(data)
	if err != nil {
		s.library = wardrobe.NewLibrary()
		return LoadCorrupt, &wardrobe.PersistenceError{Op: wardrobe.Unreadable, Path: s.path, Err: err}
	}

	if schema == wardrobe.SchemaLegacy || schema == wardrobe.SchemaMixed {
		slog.Info("Migrating library items without sizes", "path", s.path, "schema", schema.String())
	}

	s.library = lib
	return LoadOK, nil
}

// Save overwrites the file with the full library
func (s *LibraryStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *LibraryStore) saveLocked() error {
	data, err := wardrobe.EncodeLibrary(s.library)
	if err != nil {
		return &wardrobe.PersistenceError{Op: wardrobe.Unwritable, Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &wardrobe.PersistenceError{Op: wardrobe.Unwritable, Path: s.path, Err: err}
	}
	slog.Debug("Library saved", "path", s.path, "items", s.library.Count())
	return nil
}

// AddItem validates and appends an item, then persists the library. When
// the write fails the item is removed again and the error returned.
func (s *LibraryStore) AddItem(category wardrobe.Category, item wardrobe.ClothingItem) error {
	if err := validate(category, item); err != nil {
		return err
	}
	if item.Size != nil {
		item.Size = wardrobe.SizeOf(*item.Size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.library[category]
	s.library[category] = append(previous[:len(previous):len(previous)], item)
	if err := s.saveLocked(); err != nil {
		s.library[category] = previous
		return err
	}
	return nil
}

// AddItems validates every entry before appending any, then persists once
func (s *LibraryStore) AddItems(entries []Entry) error {
	parsed := make([]wardrobe.Category, len(entries))
	for i, e := range entries {
		c, err := wardrobe.ParseCategory(e.Category)
		if err != nil {
			return err
		}
		if err := validate(c, e.Item); err != nil {
			return err
		}
		parsed[i] = c
	}
	if len(entries) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.library.Clone()
	for i, e := range entries {
		item := e.Item
		if item.Size != nil {
			item.Size = wardrobe.SizeOf(*item.Size)
		}
		s.library[parsed[i]] = append(s.library[parsed[i]], item)
	}
	if err := s.saveLocked(); err != nil {
		s.library = previous
		return err
	}
	return nil
}

// ClearAll empties every category and persists
func (s *LibraryStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.library
	s.library = wardrobe.NewLibrary()
	if err := s.saveLocked(); err != nil {
		s.library = previous
		return err
	}
	return nil
}

// ClearCategory empties one category. It reports false without touching the
// file when the category already had nothing in it.
func (s *LibraryStore) ClearCategory(category wardrobe.Category) (bool, error) {
	if !category.Valid() {
		return false, &wardrobe.ValidationError{Kind: wardrobe.UnknownCategory, Input: string(category)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.library[category]
	if len(previous) == 0 {
		return false, nil
	}

	s.library[category] = []wardrobe.ClothingItem{}
	if err := s.saveLocked(); err != nil {
		s.library[category] = previous
		return false, err
	}
	return true, nil
}

func validate(category wardrobe.Category, item wardrobe.ClothingItem) error {
	if !category.Valid() {
		return &wardrobe.ValidationError{Kind: wardrobe.UnknownCategory, Input: string(category)}
	}
	if item.Size != nil {
		return wardrobe.ValidateSize(category, *item.Size)
	}
	return nil
}
