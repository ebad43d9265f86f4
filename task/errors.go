package task

import "errors"

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidCategory is returned when an invalid category is provided.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidRole is returned when an invalid role is provided.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidTheme is returned when an invalid theme is provided.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidSortOption is returned when an invalid sort option is provided.
	ErrInvalidSortOption = errors.New("invalid sort option")

	// ErrTaskNotFound is returned by boundary lookups when no task matches an ID.
	ErrTaskNotFound = errors.New("task not found")
)
