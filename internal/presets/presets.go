package presets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"vidcat/internal/facet"
)

// ErrNotFound is returned when deleting or fetching a preset that does not exist.
var ErrNotFound = errors.New("preset not found")

// Preset is one named, saved filter specification.
type Preset struct {
	Name         string   `toml:"name"`
	And          []string `toml:"and,omitempty"`
	Or           []string `toml:"or,omitempty"`
	Not          []string `toml:"not,omitempty"`
	UntaggedOnly bool     `toml:"untagged_only,omitempty"`
}

// Spec converts the preset into a normalized filter spec.
func (p Preset) Spec() facet.Spec {
	return facet.NewSpec(p.And, p.Or, p.Not, p.UntaggedOnly)
}

type document struct {
	Presets []Preset `toml:"preset"`
}

// File is a TOML-backed preset list. Mutations take an advisory file lock so
// concurrent CLI invocations cannot clobber each other's writes.
type File struct {
	path string
	lock *flock.Flock
}

// NewFile points at (but does not create) the preset file.
func NewFile(path string) *File {
	return &File{path: path, lock: flock.New(path + ".lock")}
}

// List returns every saved preset sorted by name. A missing file is an empty list.
func (f *File) List() ([]Preset, error) {
	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(doc.Presets, func(i, j int) bool {
		return doc.Presets[i].Name < doc.Presets[j].Name
	})
	return doc.Presets, nil
}

// Get fetches one preset by name.
func (f *File) Get(name string) (Preset, error) {
	doc, err := f.load()
	if err != nil {
		return Preset{}, err
	}
	for _, preset := range doc.Presets {
		if preset.Name == name {
			return preset, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Save inserts or replaces a preset by name.
func (f *File) Save(preset Preset) error {
	preset.Name = strings.TrimSpace(preset.Name)
	if preset.Name == "" {
		return errors.New("preset name must not be empty")
	}

	return f.withLock(func() error {
		doc, err := f.load()
		if err != nil {
			return err
		}

		replaced := false
		for i := range doc.Presets {
			if doc.Presets[i].Name == preset.Name {
				doc.Presets[i] = preset
				replaced = true
				break
			}
		}
		if !replaced {
			doc.Presets = append(doc.Presets, preset)
		}
		return f.store(doc)
	})
}

// Delete removes a preset by name.
func (f *File) Delete(name string) error {
	return f.withLock(func() error {
		doc, err := f.load()
		if err != nil {
			return err
		}

		kept := doc.Presets[:0]
		found := false
		for _, preset := range doc.Presets {
			if preset.Name == name {
				found = true
				continue
			}
			kept = append(kept, preset)
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		doc.Presets = kept
		return f.store(doc)
	})
}

func (f *File) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("ensure preset directory: %w", err)
	}
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("lock preset file: %w", err)
	}
	defer func() { _ = f.lock.Unlock() }()
	return fn()
}

func (f *File) load() (document, error) {
	var doc document
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read presets: %w", err)
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse presets: %w", err)
	}
	return doc, nil
}

func (f *File) store(doc document) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace presets: %w", err)
	}
	return nil
}
