// Package collections provides generic slice and record helpers.
package collections

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// GroupBy partitions items into a map keyed by key(item), preserving the
// original relative order within each group.
func GroupBy[T any](items []T, key func(T) string) map[string][]T {
	groups := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Shuffle permutes items in place using the Fisher-Yates algorithm, which
// yields an unbiased random permutation.
func Shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Clone returns a structural deep copy of value via JSON round-tripping.
// The copy shares no references with the original. Values that are not
// plain structural data (channels, funcs, cycles) are not supported and
// return an error; time.Time survives but loses its monotonic reading.
func Clone[T any](value T) (T, error) {
	var out T
	data, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("marshal value: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("unmarshal value: %w", err)
	}
	return out, nil
}

// IsEmpty returns true iff the record has zero fields.
func IsEmpty(record map[string]any) bool {
	return len(record) == 0
}
