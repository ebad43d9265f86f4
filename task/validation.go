package task

import (
	"fmt"

	"github.com/taskflowapp/taskflow/internal/strutil"
	"github.com/taskflowapp/taskflow/internal/validation"
)

// ValidateTitle checks that a title is non-empty and within MaxTitleLength.
func ValidateTitle(title string) error {
	normalized := strutil.NormalizeWhitespace(title)
	if normalized == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w (%d chars)", ErrTitleTooLong, MaxTitleLength)
	}
	return nil
}

// NormalizeStatus lowercases and validates a status input.
func NormalizeStatus(input Status) (Status, error) {
	normalized := Status(strutil.NormalizeLowerTrimSpace(string(input)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidStatus, input, validation.FormatValidValues(ValidStatuses()))
	}
	return normalized, nil
}

// NormalizePriority lowercases and validates a priority input.
func NormalizePriority(input Priority) (Priority, error) {
	normalized := Priority(strutil.NormalizeLowerTrimSpace(string(input)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidPriority, input, validation.FormatValidValues(ValidPriorities()))
	}
	return normalized, nil
}

// NormalizeCategory lowercases and validates a category input.
func NormalizeCategory(input Category) (Category, error) {
	normalized := Category(strutil.NormalizeLowerTrimSpace(string(input)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidCategory, input, validation.FormatValidValues(ValidCategories()))
	}
	return normalized, nil
}

// NormalizeRole lowercases and validates a role input.
func NormalizeRole(input Role) (Role, error) {
	normalized := Role(strutil.NormalizeLowerTrimSpace(string(input)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidRole, input, validation.FormatValidValues(ValidRoles()))
	}
	return normalized, nil
}

// NormalizeTheme lowercases and validates a theme input.
func NormalizeTheme(input Theme) (Theme, error) {
	normalized := Theme(strutil.NormalizeLowerTrimSpace(string(input)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidTheme, input, validation.FormatValidValues(ValidThemes()))
	}
	return normalized, nil
}

// NormalizeSortOption validates a sort option input.
func NormalizeSortOption(input SortOption) (SortOption, error) {
	trimmed := SortOption(strutil.NormalizeWhitespace(string(input)))
	if !trimmed.IsValid() {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidSortOption, input, validation.FormatValidValues(ValidSortOptions()))
	}
	return trimmed, nil
}

// ValidateDraft checks a task draft at the input boundary. The store itself
// treats drafts as total input and falls back to defaults for anything
// invalid; callers that want errors surface them with this.
func ValidateDraft(draft Draft) error {
	if err := ValidateTitle(draft.Title); err != nil {
		return err
	}
	if draft.Status != "" {
		if _, err := NormalizeStatus(draft.Status); err != nil {
			return err
		}
	}
	if draft.Priority != "" {
		if _, err := NormalizePriority(draft.Priority); err != nil {
			return err
		}
	}
	if draft.Category != "" {
		if _, err := NormalizeCategory(draft.Category); err != nil {
			return err
		}
	}
	return nil
}
