package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const gamesJSON = `[
	{"title": "Star Rider", "desc": "Dodge the asteroids.\nCollect the stars.", "exec": "games/star/star.exe", "thumb": "games/star/thumb.png"},
	{"title": "Blocks", "desc": "Stack them up.", "exec": "games/blocks/blocks.exe", "thumb": "games/blocks/thumb.png"}
]`

const gamesYAML = `
- title: Star Rider
  desc: Dodge the asteroids.
  exec: games/star/star.exe
  thumb: games/star/thumb.png
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "games.json", gamesJSON)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Path() != path {
		t.Errorf("Path() = %q, want %q", c.Path(), path)
	}

	first := c.At(0)
	if first.Title != "Star Rider" || first.Exec != "games/star/star.exe" || first.Thumb != "games/star/thumb.png" {
		t.Errorf("unexpected first entry: %+v", first)
	}

	lines := first.DescriptionLines()
	if len(lines) != 2 || lines[1] != "Collect the stars." {
		t.Errorf("DescriptionLines() = %q", lines)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "games.yaml", gamesYAML)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.Len() != 1 || c.At(0).Description != "Dodge the asteroids." {
		t.Errorf("unexpected catalog: %+v", c.Entries())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"empty array", "games.json", `[]`, ErrEmpty},
		{"not an array", "games.json", `{"title": "x"}`, ErrMalformed},
		{"broken json", "games.json", `[{"title": `, ErrMalformed},
		{"broken yaml", "games.yml", "- title: [", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "games.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestNewRequiresTitleAndExec(t *testing.T) {
	_, err := New([]Entry{{Title: "ok", Exec: "a"}, {Title: "no exec"}})

	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("New() error = %v, want *EntryError", err)
	}
	if entryErr.Index != 1 || entryErr.Field != "exec" {
		t.Errorf("EntryError = %+v, want index 1 field exec", entryErr)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c, err := New([]Entry{{Title: "a", Exec: "a"}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	entries := c.Entries()
	entries[0].Title = "changed"

	if c.At(0).Title != "a" {
		t.Error("catalog was mutated through Entries()")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "game.exe")
	if err := os.WriteFile(exe, []byte{}, 0o755); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	c, err := New([]Entry{
		{Title: "present", Exec: exe},
		{Title: "missing", Exec: filepath.Join(dir, "nope.exe"), Thumb: filepath.Join(dir, "nope.png")},
		{Title: "dir", Exec: dir},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	problems := c.Check()
	if len(problems) != 3 {
		t.Fatalf("Check() returned %d problems, want 3: %v", len(problems), problems)
	}
	if problems[0].Index != 1 || problems[0].Field != "exec" {
		t.Errorf("problems[0] = %v", problems[0])
	}
	if problems[1].Field != "thumb" {
		t.Errorf("problems[1] = %v", problems[1])
	}
	if problems[2].Index != 2 {
		t.Errorf("problems[2] = %v", problems[2])
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"games.json": FormatJSON,
		"games.YAML": FormatYAML,
		"games.yml":  FormatYAML,
		"games":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %v, want %v", path, got, want)
		}
	}
}
