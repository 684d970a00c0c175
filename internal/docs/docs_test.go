package docs

import "testing"

func TestLookup(t *testing.T) {
	e, ok := Lookup("selectors")
	if !ok {
		t.Fatal("selectors topic missing")
	}
	if e.URL == "" || e.Summary == "" {
		t.Errorf("incomplete entry: %+v", e)
	}

	if _, ok := Lookup("  Selectors "); !ok {
		t.Error("topic lookup should be case-insensitive and trimmed")
	}

	if _, ok := Lookup("no-such-topic"); ok {
		t.Error("unknown topic should miss")
	}
}

func TestTopicsSortedAndComplete(t *testing.T) {
	topics := Topics()
	if len(topics) < 6 {
		t.Fatalf("topics = %v, want several", topics)
	}
	for i := 1; i < len(topics); i++ {
		if topics[i-1] >= topics[i] {
			t.Errorf("topics not sorted: %v", topics)
		}
	}
	if len(All()) != len(topics) {
		t.Errorf("All() length mismatch")
	}
}
