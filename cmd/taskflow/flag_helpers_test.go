package main

import "testing"

func TestShouldUseEditor(t *testing.T) {
	tests := []struct {
		name          string
		hasFieldFlags bool
		edit          bool
		noEdit        bool
		interactive   bool
		want          bool
	}{
		{"interactive no flags", false, false, false, true, true},
		{"interactive with flags", true, false, false, true, false},
		{"non-interactive no flags", false, false, false, false, false},
		{"edit forces", true, true, false, false, true},
		{"no-edit skips", false, false, true, true, false},
		{"edit wins over no-edit", false, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldUseEditor(tt.hasFieldFlags, tt.edit, tt.noEdit, tt.interactive)
			if got != tt.want {
				t.Errorf("shouldUseEditor() = %v, want %v", got, tt.want)
			}
		})
	}
}
