package locale

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestSupported(t *testing.T) {
	tags := Supported()
	found := map[language.Tag]bool{}
	for _, tag := range tags {
		found[tag] = true
	}
	if !found[language.Japanese] || !found[language.English] {
		t.Errorf("Supported() = %v, want ja and en", tags)
	}
}

func TestJapaneseBreakMessage(t *testing.T) {
	m, err := New(language.Japanese)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := m.Text(BreakSuggestion, nil)
	if got != "今回はここまで! 次の人に交代してください" {
		t.Errorf("Text(BreakSuggestion) = %q", got)
	}
}

func TestTemplateData(t *testing.T) {
	m, err := New(language.English)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := m.Text(LaunchFailed, map[string]any{"Title": "Star Rider"})
	if got != `Could not start "Star Rider"` {
		t.Errorf("Text(LaunchFailed) = %q", got)
	}
}

func TestFallbackToEnglish(t *testing.T) {
	m, err := New(language.French)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got := m.Text(ErrorTitle, nil); got != "Error" {
		t.Errorf("Text(ErrorTitle) = %q, want English fallback", got)
	}
	if m.Tag() != language.French {
		t.Errorf("Tag() = %v", m.Tag())
	}
}

func TestUnknownIDReturnedAsIs(t *testing.T) {
	m, err := New(language.Japanese)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if got := m.Text("NoSuchMessage", nil); got != "NoSuchMessage" {
		t.Errorf("Text() = %q", got)
	}
}

func TestEveryMessageTranslated(t *testing.T) {
	ids := []string{
		BreakSuggestion, BreakDismissHint, CatalogMissing, CatalogInvalid,
		CatalogEmpty, LaunchFailed, AlreadyRunning, ErrorTitle,
	}
	data := map[string]any{"Path": "games.json", "Err": "boom", "Title": "x"}

	for _, tag := range []language.Tag{language.Japanese, language.English} {
		m, err := New(tag)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", tag, err)
		}
		for _, id := range ids {
			got := m.Text(id, data)
			if got == id || strings.Contains(got, "<no value>") {
				t.Errorf("%v: Text(%s) = %q", tag, id, got)
			}
		}
	}
}
