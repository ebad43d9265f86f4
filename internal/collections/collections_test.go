package collections

import (
	"reflect"
	"sort"
	"testing"
)

func TestGroupBy(t *testing.T) {
	type item struct {
		Name     string
		Category string
	}
	items := []item{
		{"apple", "fruit"},
		{"carrot", "vegetable"},
		{"banana", "fruit"},
	}

	groups := GroupBy(items, func(i item) string { return i.Category })

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Relative order within each group is preserved.
	fruit := groups["fruit"]
	if len(fruit) != 2 || fruit[0].Name != "apple" || fruit[1].Name != "banana" {
		t.Errorf("unexpected fruit group: %v", fruit)
	}
	if len(groups["vegetable"]) != 1 {
		t.Errorf("unexpected vegetable group: %v", groups["vegetable"])
	}
}

func TestGroupBy_Empty(t *testing.T) {
	groups := GroupBy(nil, func(s string) string { return s })
	if len(groups) != 0 {
		t.Errorf("expected empty map, got %v", groups)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	original := []int{1, 2, 3, 4, 5, 6, 7, 8}
	shuffled := append([]int(nil), original...)

	Shuffle(shuffled)

	if len(shuffled) != len(original) {
		t.Fatalf("length changed: %d", len(shuffled))
	}
	sorted := append([]int(nil), shuffled...)
	sort.Ints(sorted)
	if !reflect.DeepEqual(sorted, original) {
		t.Errorf("not a permutation: %v", shuffled)
	}
}

func TestShuffle_SmallSlices(t *testing.T) {
	var empty []int
	Shuffle(empty)

	single := []string{"only"}
	Shuffle(single)
	if single[0] != "only" {
		t.Errorf("single-element slice changed: %v", single)
	}
}

func TestClone(t *testing.T) {
	type inner struct {
		Tags []string `json:"tags"`
	}
	type outer struct {
		Name  string           `json:"name"`
		Inner inner            `json:"inner"`
		Map   map[string][]int `json:"map"`
	}

	original := outer{
		Name:  "original",
		Inner: inner{Tags: []string{"a", "b"}},
		Map:   map[string][]int{"xs": {1, 2}},
	}

	copied, err := Clone(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(copied, original) {
		t.Fatalf("copy differs: %+v", copied)
	}

	// Mutating the copy must not leak into the original.
	copied.Inner.Tags[0] = "changed"
	copied.Map["xs"][0] = 99
	if original.Inner.Tags[0] != "a" || original.Map["xs"][0] != 1 {
		t.Error("copy shares references with original")
	}
}

func TestClone_UnsupportedValue(t *testing.T) {
	if _, err := Clone(func() {}); err == nil {
		t.Error("expected error for func value")
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty(nil) {
		t.Error("expected nil map to be empty")
	}
	if !IsEmpty(map[string]any{}) {
		t.Error("expected empty map to be empty")
	}
	if IsEmpty(map[string]any{"k": 1}) {
		t.Error("expected non-empty map to not be empty")
	}
}
