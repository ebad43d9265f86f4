package ids

import (
	"reflect"
	"testing"
)

func TestUUID_NewID(t *testing.T) {
	gen := NewUUID()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if len(id) != 36 {
			t.Fatalf("expected 36-char UUID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate ID %q", id)
		}
		seen[id] = true
	}
}

func TestSequence_NewID(t *testing.T) {
	gen := NewSequence("task")

	if got := gen.NewID(); got != "task-1" {
		t.Errorf("got %q, want %q", got, "task-1")
	}
	if got := gen.NewID(); got != "task-2" {
		t.Errorf("got %q, want %q", got, "task-2")
	}
}

func TestNormalizeUniqueIDs(t *testing.T) {
	got := NormalizeUniqueIDs([]string{"ABC", "abc", "", "def", "DEF", "ghi"})
	want := []string{"abc", "def", "ghi"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatchPrefix(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz789"}

	tests := []struct {
		prefix        string
		wantMatch     string
		wantFound     bool
		wantAmbiguous bool
	}{
		{"abc", "abc123", true, false},
		{"ABC", "abc123", true, false},
		{"x", "xyz789", true, false},
		{"ab", "", true, true},
		{"zzz", "", false, false},
		{"", "", false, false},
	}

	for _, tt := range tests {
		match, found, ambiguous := MatchPrefix(ids, tt.prefix)
		if match != tt.wantMatch || found != tt.wantFound || ambiguous != tt.wantAmbiguous {
			t.Errorf("MatchPrefix(%q) = (%q, %v, %v), want (%q, %v, %v)",
				tt.prefix, match, found, ambiguous, tt.wantMatch, tt.wantFound, tt.wantAmbiguous)
		}
	}
}

func TestUniquePrefixLengths(t *testing.T) {
	lengths := UniquePrefixLengths([]string{"abc123", "abd456", "xyz789"})

	want := map[string]int{"abc123": 3, "abd456": 3, "xyz789": 1}
	if !reflect.DeepEqual(lengths, want) {
		t.Errorf("got %v, want %v", lengths, want)
	}
}
