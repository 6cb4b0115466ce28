// Package catalog loads the ordered list of launchable entries shown by the
// launcher. A catalog is read once at startup and never changes afterwards.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty indicates a catalog without entries. A launcher cannot browse it.
	ErrEmpty = errors.New("catalog has no entries")

	// ErrNotFound indicates the catalog file does not exist.
	ErrNotFound = errors.New("catalog file not found")

	// ErrMalformed indicates the catalog file could not be decoded.
	ErrMalformed = errors.New("catalog file is malformed")
)

// Format is the encoding of a catalog file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the format from the file extension. Unknown extensions are treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Entry is one launchable game.
type Entry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"desc" yaml:"desc"`
	Exec        string `json:"exec" yaml:"exec"`
	Thumb       string `json:"thumb" yaml:"thumb"`
}

// DescriptionLines splits the description on newlines for the description panel.
func (e Entry) DescriptionLines() []string {
	if e.Description == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(e.Description, "\r\n", "\n"), "\n")
}

// EntryError reports an entry that is missing a required field.
type EntryError struct {
	Index int
	Field string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("catalog: entry %d: missing %q", e.Index, e.Field)
}

// Catalog is an immutable, non-empty ordered list of entries.
type Catalog struct {
	path    string
	entries []Entry
}

// New validates the entries and wraps them in a Catalog.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			return nil, &EntryError{Index: i, Field: "title"}
		}
		if strings.TrimSpace(e.Exec) == "" {
			return nil, &EntryError{Index: i, Field: "exec"}
		}
	}

	copied := make([]Entry, len(entries))
	copy(copied, entries)

	return &Catalog{entries: copied}, nil
}

// Load reads and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("catalog: cannot read %s: %w", path, err)
	}

	entries, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, err
	}

	c, err := New(entries)
	if err != nil {
		return nil, err
	}
	c.path = path

	return c, nil
}

// Parse decodes the top-level array of entries.
func Parse(data []byte, format Format) ([]Entry, error) {
	var entries []Entry

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	return entries, nil
}

// Path returns the file the catalog was loaded from, or "" for in-memory catalogs.
func (c *Catalog) Path() string {
	return c.path
}

// Len returns the number of entries. It is always at least 1.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at i. It panics if i is out of range.
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries in order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Problem is a validation finding for one entry's referenced files.
type Problem struct {
	Index int
	Title string
	Field string
	Path  string
	Err   error
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %s: %s %s: %v", p.Index+1, p.Title, p.Field, p.Path, p.Err)
}

// Check stats every referenced executable and thumbnail and reports the missing ones.
func (c *Catalog) Check() []Problem {
	var problems []Problem

	for i, e := range c.entries {
		if info, err := os.Stat(e.Exec); err != nil {
			problems = append(problems, Problem{Index: i, Title: e.Title, Field: "exec", Path: e.Exec, Err: err})
		} else if info.IsDir() {
			problems = append(problems, Problem{Index: i, Title: e.Title, Field: "exec", Path: e.Exec, Err: errors.New("is a directory")})
		}

		if e.Thumb == "" {
			continue
		}
		if _, err := os.Stat(e.Thumb); err != nil {
			problems = append(problems, Problem{Index: i, Title: e.Title, Field: "thumb", Path: e.Thumb, Err: err})
		}
	}

	return problems
}
