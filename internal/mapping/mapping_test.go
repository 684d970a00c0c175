package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupSeeded(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name       string
		wantTarget string
		wantOption string
	}{
		{"setValue", "fill", ""},
		{"waitForDisplayed", "waitFor", "{ state: 'visible' }"},
		{"isDisplayed", "isVisible", ""},
		{"doubleClick", "dblclick", ""},
		{"selectByVisibleText", "selectOption", "{ label: value }"},
		{"browser.url", "page.goto", ""},
		{"browser.pause", "page.waitForTimeout", ""},
		{"browser.setCookies", "context.addCookies", ""},
	}

	for _, tt := range tests {
		m, ok := r.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) missing", tt.name)
			continue
		}
		if m.Target != tt.wantTarget {
			t.Errorf("Lookup(%q).Target = %q, want %q", tt.name, m.Target, tt.wantTarget)
		}
		if m.OptionLiteral != tt.wantOption {
			t.Errorf("Lookup(%q).OptionLiteral = %q, want %q", tt.name, m.OptionLiteral, tt.wantOption)
		}
	}
}

func TestSeedSize(t *testing.T) {
	r := NewRegistry()
	if r.Len() < 50 {
		t.Errorf("seeded registry has %d entries, want at least 50", r.Len())
	}
}

func TestRegisterAddIfAbsent(t *testing.T) {
	r := NewRegistry()

	if !r.Register("customCommand", Mapping{Target: "customTarget"}) {
		t.Fatal("Register of a new name should succeed")
	}

	// A second registration for the same name must be ignored.
	if r.Register("customCommand", Mapping{Target: "other"}) {
		t.Error("Register of an existing custom name should be refused")
	}
	m, _ := r.Lookup("customCommand")
	if m.Target != "customTarget" {
		t.Errorf("first writer lost: Target = %q", m.Target)
	}

	// Static seed entries are equally protected.
	if r.Register("setValue", Mapping{Target: "overwritten"}) {
		t.Error("Register must not overwrite a seeded entry")
	}
	m, _ = r.Lookup("setValue")
	if m.Target != "fill" {
		t.Errorf("seeded entry overwritten: Target = %q", m.Target)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.yaml")
	content := `
swipeLeft:
  target: dragTo
  description: swipe gestures become dragTo
setValue:
  target: ignored
  description: must not overwrite the seed
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	added, err := r.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1 (seed entry must be skipped)", added)
	}

	m, ok := r.Lookup("swipeLeft")
	if !ok || m.Target != "dragTo" {
		t.Errorf("custom mapping not loaded: %+v ok=%v", m, ok)
	}
	m, _ = r.Lookup("setValue")
	if m.Target != "fill" {
		t.Errorf("seed entry overwritten via LoadFile: %q", m.Target)
	}
}

func TestLoadFileMissing(t *testing.T) {
	r := NewRegistry()
	if _, err := r.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile on a missing file should error")
	}
}
