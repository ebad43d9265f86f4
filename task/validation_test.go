package task

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid short", "Fix bug", nil},
		{"valid long", strings.Repeat("a", MaxTitleLength), nil},
		{"empty", "", ErrEmptyTitle},
		{"whitespace", "   ", ErrEmptyTitle},
		{"too long", strings.Repeat("a", MaxTitleLength+1), ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTitle(%q) unexpected error: %v", tt.title, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
				}
			}
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input   Status
		want    Status
		wantErr error
	}{
		{"todo", StatusTodo, nil},
		{"  In-Progress ", StatusInProgress, nil},
		{"REVIEW", StatusReview, nil},
		{"done", StatusDone, nil},
		{"someday", "", ErrInvalidStatus},
		{"", "", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			got, err := NormalizeStatus(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NormalizeStatus(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePriority(t *testing.T) {
	if _, err := NormalizePriority("whenever"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}

	got, err := NormalizePriority(" URGENT ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != PriorityUrgent {
		t.Errorf("expected 'urgent', got %q", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	if _, err := NormalizeCategory("chores"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}

	got, err := NormalizeCategory("Bug-Fix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != CategoryBugFix {
		t.Errorf("expected 'bug-fix', got %q", got)
	}
}

func TestNormalizeRole(t *testing.T) {
	if _, err := NormalizeRole("superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}

	got, err := NormalizeRole("Admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != RoleAdmin {
		t.Errorf("expected 'admin', got %q", got)
	}
}

func TestNormalizeTheme(t *testing.T) {
	if _, err := NormalizeTheme("sepia"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("expected ErrInvalidTheme, got %v", err)
	}

	got, err := NormalizeTheme("DARK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ThemeDark {
		t.Errorf("expected 'dark', got %q", got)
	}
}

func TestNormalizeSortOption(t *testing.T) {
	if _, err := NormalizeSortOption("backwards"); !errors.Is(err, ErrInvalidSortOption) {
		t.Errorf("expected ErrInvalidSortOption, got %v", err)
	}

	// Sort options are case-sensitive: dueDate is camelCase.
	got, err := NormalizeSortOption("dueDate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != SortDueDate {
		t.Errorf("expected 'dueDate', got %q", got)
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{"minimal", Draft{Title: "ok"}, nil},
		{"full", Draft{Title: "ok", Status: StatusReview, Priority: PriorityLow, Category: CategoryMeeting}, nil},
		{"no title", Draft{}, ErrEmptyTitle},
		{"bad status", Draft{Title: "ok", Status: "someday"}, ErrInvalidStatus},
		{"bad priority", Draft{Title: "ok", Priority: "whenever"}, ErrInvalidPriority},
		{"bad category", Draft{Title: "ok", Category: "misc"}, ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
