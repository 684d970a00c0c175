package tags

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bracketed tags",
			text: "should login [SMOKE] [P1]",
			want: []string{"smoke", "p1"},
		},
		{
			name: "at-prefixed tags",
			text: "should login @smoke @regression",
			want: []string{"smoke", "regression"},
		},
		{
			name: "hash-prefixed tags",
			text: "should login #smoke",
			want: []string{"smoke"},
		},
		{
			name: "mixed syntaxes deduplicate",
			text: "checkout [SMOKE] @smoke #checkout",
			want: []string{"smoke", "checkout"},
		},
		{
			name: "no tags",
			text: "plain description",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "case normalized",
			text: "x [Smoke] [REGRESSION]",
			want: []string{"smoke", "regression"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bracketed", "should login [SMOKE] [P1]", "should login"},
		{"at-prefixed", "should login @smoke quickly", "should login quickly"},
		{"hash-prefixed", "#wip fix cart", "fix cart"},
		{"no tags", "plain description", "plain description"},
		{"empty", "", ""},
		{"tag in the middle", "adds [SMOKE] item to cart", "adds item to cart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.text); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Stripping must remove every token Extract reports, whatever syntax carried it.
func TestStripRemovesExtractedTags(t *testing.T) {
	inputs := []string{
		"login [SMOKE] [P1]",
		"login @smoke @p1",
		"login #smoke #p1",
		"login [SMOKE] @p1 #flaky",
	}

	for _, text := range inputs {
		stripped := Strip(text)
		for _, tag := range Extract(text) {
			if strings.Contains(strings.ToLower(stripped), tag) {
				t.Errorf("Strip(%q) = %q still contains tag %q", text, stripped, tag)
			}
		}
		if got := Extract(stripped); got != nil {
			t.Errorf("Extract(Strip(%q)) = %v, want none", text, got)
		}
	}
}

// The same token set must come back regardless of which surface syntax carried it.
func TestExtractSyntaxEquivalence(t *testing.T) {
	variants := []string{
		"login works [SMOKE] [P1]",
		"login works @smoke @p1",
		"login works #smoke #p1",
	}

	want := []string{"smoke", "p1"}
	for _, text := range variants {
		if got := Extract(text); !reflect.DeepEqual(got, want) {
			t.Errorf("Extract(%q) = %v, want %v", text, got, want)
		}
	}
}
