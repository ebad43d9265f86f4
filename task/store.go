package task

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/taskflowapp/taskflow/internal/ids"
	"github.com/taskflowapp/taskflow/internal/storage"
)

// SlotKey is the fixed key under which the persisted state subset lives.
const SlotKey = "taskflow-storage"

// ThemeApplier receives theme changes so an external presentation layer
// can restyle itself. The store only announces the active mode; it does
// not own the flag's consumers.
type ThemeApplier interface {
	ApplyTheme(dark bool)
}

// Snapshot is the persisted subset of store state, handed to change hooks
// after every mutation. Filters and sort option are deliberately excluded.
type Snapshot struct {
	Tasks []Task `json:"tasks"`
	User  *User  `json:"user"`
	Theme Theme  `json:"theme"`
}

// Store holds the authoritative in-memory state. All mutation operations
// are synchronous; after each one, registered change hooks run with a
// snapshot of the persisted subset.
type Store struct {
	mu      sync.Mutex
	store   storage.Storage
	ids     ids.Generator
	now     func() time.Time
	applier ThemeApplier
	hooks   []func(Snapshot)

	tasks   []Task
	user    *User
	theme   Theme
	filters Filters
	sortBy  SortOption

	// version increments only when the task list changes; it is the
	// identity key for derived-view memoization.
	version uint64
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Storage is the persistent key-value slot. If nil, the store is
	// memory-only and nothing is persisted.
	Storage storage.Storage

	// IDs generates task identifiers. If nil, a UUID generator is used.
	IDs ids.Generator

	// Now supplies timestamps. If nil, time.Now is used.
	Now func() time.Time

	// ThemeApplier receives theme changes. If nil, changes are recorded
	// but not announced.
	ThemeApplier ThemeApplier
}

// Open creates a store, restoring the persisted subset from the slot when
// present. Missing or malformed persisted data silently falls back to the
// default empty state.
func Open(opts OpenOptions) *Store {
	if opts.IDs == nil {
		opts.IDs = ids.NewUUID()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{
		store:   opts.Storage,
		ids:     opts.IDs,
		now:     opts.Now,
		applier: opts.ThemeApplier,
		theme:   ThemeLight,
		sortBy:  SortNewest,
	}

	s.restore()

	if s.store != nil {
		s.Subscribe(s.persist)
	}
	s.announceTheme()

	return s
}

// restore loads the persisted subset from the slot. Unknown top-level
// fields are ignored; any read or decode failure leaves the defaults.
func (s *Store) restore() {
	if s.store == nil {
		return
	}
	data, ok, err := s.store.Read(SlotKey)
	if err != nil || !ok {
		return
	}

	var persisted Snapshot
	if err := json.Unmarshal(data, &persisted); err != nil {
		return
	}

	s.tasks = persisted.Tasks
	s.user = persisted.User
	if persisted.Theme.IsValid() {
		s.theme = persisted.Theme
	}
}

// Subscribe registers a hook invoked after every successful mutation with
// a snapshot of the persisted subset. Hooks run synchronously in
// registration order.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hooks = append(s.hooks, fn)
}

// persist writes the snapshot to the slot. Writes are best-effort; a
// failed write is dropped without surfacing an error.
func (s *Store) persist(snapshot Snapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	_ = s.store.Write(SlotKey, data)
}

// notify must be called with the lock held.
func (s *Store) notify() {
	if len(s.hooks) == 0 {
		return
	}
	snapshot := Snapshot{
		Tasks: cloneTasks(s.tasks),
		User:  cloneUser(s.user),
		Theme: s.theme,
	}
	for _, hook := range s.hooks {
		hook(snapshot)
	}
}

func (s *Store) announceTheme() {
	if s.applier == nil {
		return
	}
	s.applier.ApplyTheme(s.theme == ThemeDark)
}

// Draft holds the caller-supplied fields for a new task: everything on
// Task except the identifier and timestamps, which the store assigns.
type Draft struct {
	Title          string
	Description    string
	Status         Status
	Priority       Priority
	Category       Category
	DueDate        time.Time
	Tags           []string
	Assignee       string
	EstimatedHours *float64
}

// AddTask creates a task from the draft, assigns a fresh unique ID, sets
// CreatedAt and UpdatedAt to the same instant, and prepends it to the
// task list. Unknown enum values in the draft fall back to defaults; the
// operation always succeeds. Use ValidateDraft at input boundaries that
// want errors instead.
func (s *Store) AddTask(draft Draft) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	created := Task{
		ID:             s.ids.NewID(),
		Title:          draft.Title,
		Description:    draft.Description,
		Status:         draft.Status,
		Priority:       draft.Priority,
		Category:       draft.Category,
		DueDate:        draft.DueDate,
		Tags:           append([]string(nil), draft.Tags...),
		Assignee:       draft.Assignee,
		EstimatedHours: draft.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !created.Status.IsValid() {
		created.Status = StatusTodo
	}
	if !created.Priority.IsValid() {
		created.Priority = PriorityMedium
	}
	if !created.Category.IsValid() {
		created.Category = CategoryDevelopment
	}

	s.tasks = append([]Task{created}, s.tasks...)
	s.version++
	s.notify()

	return created.clone()
}

// UpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title          *string
	Description    *string
	Status         *Status
	Priority       *Priority
	Category       *Category
	DueDate        *time.Time
	Tags           *[]string
	Assignee       *string
	EstimatedHours **float64
}

// UpdateTask applies the given field changes to the task matching id and
// refreshes UpdatedAt. ID and CreatedAt are never modified. When no task
// matches, the list is unchanged and found is false; a missing id is a
// no-op, not an error.
func (s *Store) UpdateTask(id string, opts UpdateOptions) (updated Task, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		if opts.Title != nil {
			s.tasks[i].Title = *opts.Title
		}
		if opts.Description != nil {
			s.tasks[i].Description = *opts.Description
		}
		if opts.Status != nil && opts.Status.IsValid() {
			s.tasks[i].Status = *opts.Status
		}
		if opts.Priority != nil && opts.Priority.IsValid() {
			s.tasks[i].Priority = *opts.Priority
		}
		if opts.Category != nil && opts.Category.IsValid() {
			s.tasks[i].Category = *opts.Category
		}
		if opts.DueDate != nil {
			s.tasks[i].DueDate = *opts.DueDate
		}
		if opts.Tags != nil {
			s.tasks[i].Tags = append([]string(nil), (*opts.Tags)...)
		}
		if opts.Assignee != nil {
			s.tasks[i].Assignee = *opts.Assignee
		}
		if opts.EstimatedHours != nil {
			s.tasks[i].EstimatedHours = *opts.EstimatedHours
		}
		s.tasks[i].UpdatedAt = s.now()

		s.version++
		s.notify()
		return s.tasks[i].clone(), true
	}

	return Task{}, false
}

// DeleteTask removes the task matching id. A missing id is a no-op.
func (s *Store) DeleteTask(id string) (found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.version++
		s.notify()
		return true
	}

	return false
}

// MoveTask changes the task's status; it is equivalent to UpdateTask with
// only the status set.
func (s *Store) MoveTask(id string, status Status) (Task, bool) {
	return s.UpdateTask(id, UpdateOptions{Status: &status})
}

// GetTask returns the task matching id.
func (s *Store) GetTask(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i].clone(), true
		}
	}
	return Task{}, false
}

// SetUser replaces the session identity. A nil user clears the session
// without touching tasks.
func (s *Store) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = cloneUser(user)
	s.notify()
}

// Logout clears the user and wipes all tasks. Taskflow is single-tenant:
// there is no per-user ownership field, so a signed-out store must not
// leave another user's tasks visible.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.tasks = nil
	s.version++
	s.notify()
}

// SetTheme records the presentation mode and announces it to the applier.
// Invalid modes are ignored.
func (s *Store) SetTheme(theme Theme) {
	if !theme.IsValid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	s.announceTheme()
	s.notify()
}

// ToggleTheme flips between light and dark mode.
func (s *Store) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = s.theme.Toggled()
	s.announceTheme()
	s.notify()
	return s.theme
}

// SetFilters shallow-merges the patch into the active filters: fields not
// mentioned are preserved, fields explicitly given replace their prior
// value, including replacing with empty.
func (s *Store) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = s.filters.merge(patch)
	s.notify()
}

// ClearFilters resets filters to empty.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = Filters{}
	s.notify()
}

// SetSortBy replaces the active sort option. Invalid options are ignored.
func (s *Store) SetSortBy(option SortOption) {
	if !option.IsValid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortBy = option
	s.notify()
}

// InitializeDemo replaces the task list wholesale with a fixed seed set.
// For bootstrapping and tests only.
func (s *Store) InitializeDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = demoTasks(s.ids, s.now())
	s.version++
	s.notify()
}

// Tasks returns a copy of the task list in its natural most-recent-first
// order.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneTasks(s.tasks)
}

// VisibleTasks returns the task list with the active filters and sort
// option applied.
func (s *Store) VisibleTasks() []Task {
	s.mu.Lock()
	tasks := cloneTasks(s.tasks)
	filters := s.filters
	sortBy := s.sortBy
	s.mu.Unlock()

	return SortTasks(ApplyFilters(tasks, filters), sortBy)
}

// User returns a copy of the session identity, or nil when signed out.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneUser(s.user)
}

// Theme returns the active presentation mode.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theme
}

// Filters returns the active filter set.
func (s *Store) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters.clone()
}

// SortBy returns the active sort option.
func (s *Store) SortBy() SortOption {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortBy
}

// Version returns the task-list identity counter. It changes exactly when
// the task list changes, so derived views can memoize on it.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.version
}

func cloneUser(user *User) *User {
	if user == nil {
		return nil
	}
	copied := *user
	return &copied
}
