package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskflowapp/taskflow/internal/config"
	"github.com/taskflowapp/taskflow/internal/dates"
	"github.com/taskflowapp/taskflow/internal/editor"
	"github.com/taskflowapp/taskflow/internal/listflags"
	"github.com/taskflowapp/taskflow/task"
)

// add
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Long: `Add a new task.

By default, opens $EDITOR on a TOML representation of the task when
running interactively and no add flags are provided. Use --no-edit to
skip the editor, or --edit to force it.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addTitle       string
	addDescription string
	addStatus      string
	addPriority    string
	addCategory    string
	addDue         string
	addTags        []string
	addAssignee    string
	addHours       float64
	addEdit        bool
	addNoEdit      bool
)

// update
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Long: `Update a task. IDs may be abbreviated to any unique prefix.

By default, opens $EDITOR on a TOML representation of the task when
running interactively and no update flags are provided. Use --no-edit to
skip the editor, or --edit to force it.`,
	Aliases: []string{"edit"},
	Args:    cobra.ExactArgs(1),
	RunE:    runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
	updatePriority    string
	updateCategory    string
	updateDue         string
	updateTags        []string
	updateAssignee    string
	updateHours       float64
	updateEdit        bool
	updateNoEdit      bool
)

// move
var moveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

var (
	listStatuses   []string
	listPriorities []string
	listCategories []string
	listSearch     string
	listDueBefore  string
	listDueAfter   string
	listSort       string
	listJSON       bool
	listAll        bool
)

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, moveCmd, deleteCmd, showCmd, listCmd)
	addTaskFlagAliases(addCmd, updateCmd, listCmd)

	// add flags
	addCmd.Flags().StringVar(&addTitle, "title", "", "Task title")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Status (todo, in-progress, review, done)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high, urgent)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (development, design, marketing, testing, meeting, bug-fix)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (2006-01-02)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag (repeatable)")
	addCmd.Flags().StringVar(&addAssignee, "assignee", "", "Assignee")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "Estimated hours")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no add flags)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	// update flags
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "New status")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date (2006-01-02, empty string clears)")
	updateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "New tags (replaces all)")
	updateCmd.Flags().StringVar(&updateAssignee, "assignee", "", "New assignee")
	updateCmd.Flags().Float64Var(&updateHours, "hours", 0, "New estimated hours (0 clears)")
	updateCmd.Flags().BoolVarP(&updateEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no update flags)")
	updateCmd.Flags().BoolVar(&updateNoEdit, "no-edit", false, "Do not open $EDITOR")

	// show flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	// list flags
	listCmd.Flags().StringSliceVar(&listStatuses, "status", nil, "Filter by status (repeatable)")
	listCmd.Flags().StringSliceVar(&listPriorities, "priority", nil, "Filter by priority (repeatable)")
	listCmd.Flags().StringSliceVar(&listCategories, "category", nil, "Filter by category (repeatable)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by text in title, description, or tags")
	listCmd.Flags().StringVar(&listDueBefore, "due-before", "", "Filter by due date upper bound (2006-01-02)")
	listCmd.Flags().StringVar(&listDueAfter, "due-after", "", "Filter by due date lower bound (2006-01-02)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order (newest, oldest, priority, dueDate, title)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listflags.AddAllFlag(listCmd, &listAll)
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	hasAddFlags := hasChangedFlags(cmd, "title", "description", "status", "priority", "category", "due", "tag", "assignee", "hours")
	useEditor := shouldUseEditor(hasAddFlags, addEdit, addNoEdit, editor.IsInteractive())

	var draft task.Draft
	if useEditor {
		data := editor.DefaultCreateData()
		applyConfigDefaults(&data, cfg)
		if cmd.Flags().Changed("title") {
			data.Title = addTitle
		}
		if cmd.Flags().Changed("description") {
			data.Description = addDescription
		}
		if cmd.Flags().Changed("priority") {
			data.Priority = addPriority
		}
		if cmd.Flags().Changed("category") {
			data.Category = addCategory
		}
		if cmd.Flags().Changed("due") {
			data.Due = addDue
		}
		if cmd.Flags().Changed("tag") {
			data.Tags = addTags
		}
		if cmd.Flags().Changed("assignee") {
			data.Assignee = addAssignee
		}
		if cmd.Flags().Changed("hours") {
			data.EstimatedHours = addHours
		}

		parsed, err := editor.EditTask(data)
		if err != nil {
			return err
		}
		draft, err = parsed.ToDraft()
		if err != nil {
			return err
		}
	} else {
		if addTitle == "" {
			return fmt.Errorf("title is required (use --edit to open editor)")
		}
		draft = task.Draft{
			Title:       addTitle,
			Description: addDescription,
			Status:      task.Status(addStatus),
			Priority:    taskPriorityOrDefault(addPriority, cfg),
			Category:    taskCategoryOrDefault(addCategory, cfg),
			Tags:        addTags,
			Assignee:    addAssignee,
		}
		if addHours > 0 {
			hours := addHours
			draft.EstimatedHours = &hours
		}
		if addDue != "" {
			due, err := time.ParseInLocation(dates.InputLayout, addDue, time.Local)
			if err != nil {
				return fmt.Errorf("parse due date %q: %w", addDue, err)
			}
			draft.DueDate = due
		}
	}

	if err := task.ValidateDraft(draft); err != nil {
		return err
	}

	created := store.AddTask(draft)
	highlight := taskHighlighter(store)
	fmt.Printf("Added task %s: %s\n", highlight(created.ID), created.Title)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, "title", "description", "status", "priority", "category", "due", "tag", "assignee", "hours")
	useEditor := shouldUseEditor(hasFlags, updateEdit, updateNoEdit, editor.IsInteractive())

	var opts task.UpdateOptions
	if useEditor {
		existing, ok := store.GetTask(id)
		if !ok {
			return fmt.Errorf("%w: %s", task.ErrTaskNotFound, args[0])
		}

		data := editor.DataFromTask(&existing)
		if cmd.Flags().Changed("title") {
			data.Title = updateTitle
		}
		if cmd.Flags().Changed("description") {
			data.Description = updateDescription
		}
		if cmd.Flags().Changed("status") {
			data.Status = updateStatus
		}
		if cmd.Flags().Changed("priority") {
			data.Priority = updatePriority
		}
		if cmd.Flags().Changed("category") {
			data.Category = updateCategory
		}
		if cmd.Flags().Changed("due") {
			data.Due = updateDue
		}
		if cmd.Flags().Changed("tag") {
			data.Tags = updateTags
		}
		if cmd.Flags().Changed("assignee") {
			data.Assignee = updateAssignee
		}
		if cmd.Flags().Changed("hours") {
			data.EstimatedHours = updateHours
		}

		parsed, err := editor.EditTask(data)
		if err != nil {
			return err
		}
		if err := task.ValidateTitle(parsed.Title); err != nil {
			return err
		}
		opts, err = parsed.ToUpdateOptions()
		if err != nil {
			return err
		}
	} else {
		if !hasFlags {
			return fmt.Errorf("at least one update flag is required (use --edit to open editor)")
		}

		if cmd.Flags().Changed("title") {
			if err := task.ValidateTitle(updateTitle); err != nil {
				return err
			}
			opts.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			opts.Description = &updateDescription
		}
		if cmd.Flags().Changed("status") {
			status, err := task.NormalizeStatus(task.Status(updateStatus))
			if err != nil {
				return err
			}
			opts.Status = &status
		}
		if cmd.Flags().Changed("priority") {
			priority, err := task.NormalizePriority(task.Priority(updatePriority))
			if err != nil {
				return err
			}
			opts.Priority = &priority
		}
		if cmd.Flags().Changed("category") {
			category, err := task.NormalizeCategory(task.Category(updateCategory))
			if err != nil {
				return err
			}
			opts.Category = &category
		}
		if cmd.Flags().Changed("due") {
			var due time.Time
			if updateDue != "" {
				parsed, err := time.ParseInLocation(dates.InputLayout, updateDue, time.Local)
				if err != nil {
					return fmt.Errorf("parse due date %q: %w", updateDue, err)
				}
				due = parsed
			}
			opts.DueDate = &due
		}
		if cmd.Flags().Changed("tag") {
			tags := append([]string(nil), updateTags...)
			opts.Tags = &tags
		}
		if cmd.Flags().Changed("assignee") {
			opts.Assignee = &updateAssignee
		}
		if cmd.Flags().Changed("hours") {
			var hours *float64
			if updateHours > 0 {
				value := updateHours
				hours = &value
			}
			opts.EstimatedHours = &hours
		}
	}

	updated, found := store.UpdateTask(id, opts)
	if !found {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, args[0])
	}

	highlight := taskHighlighter(store)
	fmt.Printf("Updated task %s: %s\n", highlight(updated.ID), updated.Title)
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}

	status, err := task.NormalizeStatus(task.Status(args[1]))
	if err != nil {
		return err
	}

	moved, found := store.MoveTask(id, status)
	if !found {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, args[0])
	}

	highlight := taskHighlighter(store)
	fmt.Printf("Moved task %s to %s: %s\n", highlight(moved.ID), moved.Status, moved.Title)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	highlight := taskHighlighter(store)
	for _, arg := range args {
		id, err := resolveTaskID(store, arg)
		if err != nil {
			return err
		}
		existing, _ := store.GetTask(id)
		if !store.DeleteTask(id) {
			return fmt.Errorf("%w: %s", task.ErrTaskNotFound, arg)
		}
		fmt.Printf("Deleted task %s: %s\n", highlight(id), existing.Title)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	var tasks []task.Task
	for _, arg := range args {
		id, err := resolveTaskID(store, arg)
		if err != nil {
			return err
		}
		t, ok := store.GetTask(id)
		if !ok {
			return fmt.Errorf("%w: %s", task.ErrTaskNotFound, arg)
		}
		tasks = append(tasks, t)
	}

	if showJSON {
		return encodeJSONToStdout(tasks)
	}

	highlight := taskHighlighter(store)
	for i, t := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(t, highlight, dateLayout(cfg), time.Now())
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	patch, err := filterPatchFromFlags(cmd)
	if err != nil {
		return err
	}
	store.SetFilters(patch)

	if listSort != "" {
		option, err := task.NormalizeSortOption(task.SortOption(listSort))
		if err != nil {
			return err
		}
		store.SetSortBy(option)
	}

	tasks := store.VisibleTasks()

	// Hide done tasks unless asked for explicitly.
	if !listAll && len(listStatuses) == 0 {
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Status != task.StatusDone {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if listJSON {
		return encodeJSONToStdout(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	printTaskTable(store, tasks, dateLayout(cfg), time.Now())
	return nil
}

// filterPatchFromFlags builds the filter patch the list command applies
// for this invocation. Filters are session-transient; nothing here is
// persisted.
func filterPatchFromFlags(cmd *cobra.Command) (task.FilterPatch, error) {
	var patch task.FilterPatch

	if len(listStatuses) > 0 {
		statuses := make([]task.Status, 0, len(listStatuses))
		for _, raw := range listStatuses {
			status, err := task.NormalizeStatus(task.Status(raw))
			if err != nil {
				return task.FilterPatch{}, err
			}
			statuses = append(statuses, status)
		}
		patch.Statuses = &statuses
	}
	if len(listPriorities) > 0 {
		priorities := make([]task.Priority, 0, len(listPriorities))
		for _, raw := range listPriorities {
			priority, err := task.NormalizePriority(task.Priority(raw))
			if err != nil {
				return task.FilterPatch{}, err
			}
			priorities = append(priorities, priority)
		}
		patch.Priorities = &priorities
	}
	if len(listCategories) > 0 {
		categories := make([]task.Category, 0, len(listCategories))
		for _, raw := range listCategories {
			category, err := task.NormalizeCategory(task.Category(raw))
			if err != nil {
				return task.FilterPatch{}, err
			}
			categories = append(categories, category)
		}
		patch.Categories = &categories
	}
	if listSearch != "" {
		patch.Search = &listSearch
	}
	if listDueBefore != "" {
		bound, err := time.ParseInLocation(dates.InputLayout, listDueBefore, time.Local)
		if err != nil {
			return task.FilterPatch{}, fmt.Errorf("parse due-before %q: %w", listDueBefore, err)
		}
		patch.DueBefore = &bound
	}
	if listDueAfter != "" {
		bound, err := time.ParseInLocation(dates.InputLayout, listDueAfter, time.Local)
		if err != nil {
			return task.FilterPatch{}, fmt.Errorf("parse due-after %q: %w", listDueAfter, err)
		}
		patch.DueAfter = &bound
	}

	return patch, nil
}

func applyConfigDefaults(data *editor.TaskData, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Defaults.Priority != "" {
		data.Priority = cfg.Defaults.Priority
	}
	if cfg.Defaults.Category != "" {
		data.Category = cfg.Defaults.Category
	}
}

func taskPriorityOrDefault(flag string, cfg *config.Config) task.Priority {
	if flag != "" {
		return task.Priority(flag)
	}
	if cfg != nil && cfg.Defaults.Priority != "" {
		return task.Priority(cfg.Defaults.Priority)
	}
	return ""
}

func taskCategoryOrDefault(flag string, cfg *config.Config) task.Category {
	if flag != "" {
		return task.Category(flag)
	}
	if cfg != nil && cfg.Defaults.Category != "" {
		return task.Category(cfg.Defaults.Category)
	}
	return ""
}

func dateLayout(cfg *config.Config) string {
	if cfg != nil && cfg.Display.DateLayout != "" {
		return cfg.Display.DateLayout
	}
	return dates.InputLayout
}

// resolveTaskID resolves a possibly-abbreviated ID against the store.
func resolveTaskID(store *task.Store, prefix string) (string, error) {
	index := task.NewIDIndex(store.Tasks())
	return index.Resolve(prefix)
}

func taskHighlighter(store *task.Store) func(string) string {
	index := task.NewIDIndex(store.Tasks())
	prefixLengths := index.PrefixLengths()
	return func(id string) string {
		return highlightTaskID(id, prefixLengths)
	}
}

func hasChangedFlags(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// shouldUseEditor decides whether to open $EDITOR: --edit forces it,
// --no-edit skips it, otherwise it opens only when no field flags were
// given and the session is interactive.
func shouldUseEditor(hasFieldFlags, edit, noEdit, interactive bool) bool {
	if edit {
		return true
	}
	if noEdit {
		return false
	}
	return !hasFieldFlags && interactive
}
