package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/upkeep/internal/cli/formatter"
	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/importer"
	"github.com/alexanderramin/upkeep/internal/schedule"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage maintenance tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskInspectCmd(app),
		newTaskEditCmd(app),
		newTaskCompleteCmd(app),
		newTaskDuplicateCmd(app),
		newTaskRemoveCmd(app),
		newTaskHistoryCmd(app),
		newTaskImportCmd(app),
	)

	return cmd
}

// refreshAlerts re-evaluates the immediate alerts after the task collection
// changed. Alert failures warn rather than fail the command.
func refreshAlerts(cmd *cobra.Command, app *App) {
	if app.Alerts == nil {
		return
	}
	if _, err := app.Alerts.Refresh(context.Background(), app.UserID); err != nil {
		cmd.PrintErrf("warning: refreshing alerts: %v\n", err)
	}
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, category, lastDone, description string
	var interval int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new maintenance task",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No name flag on an interactive terminal means the form flow.
			if name == "" && app.interactive() {
				return runTaskAddForm(cmd, app)
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			if category == "" {
				return fmt.Errorf("--category is required")
			}

			task := &domain.Task{
				Name:         name,
				Category:     category,
				IntervalDays: interval,
				Description:  description,
			}
			if lastDone != "" {
				at, err := time.Parse("2006-01-02", lastDone)
				if err != nil {
					return fmt.Errorf("invalid last completed date %q: %w", lastDone, err)
				}
				task.LastCompleted = at
			}

			if err := app.Tasks.Create(context.Background(), app.UserID, task); err != nil {
				return fmt.Errorf("adding task %q: %w", name, err)
			}

			cmd.Printf("Added task %q, due every %d days.\n", task.Name, task.IntervalDays)
			refreshAlerts(cmd, app)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&category, "category", "", "Category label (free-form)")
	cmd.Flags().IntVar(&interval, "interval", 30, "Recurrence interval in days (1-3650)")
	cmd.Flags().StringVar(&lastDone, "last-completed", "", "Last completion date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "notes", "", "Optional notes")

	return cmd
}

func runTaskAddForm(cmd *cobra.Command, app *App) error {
	values := taskFormValues{Interval: "30"}
	if err := taskAddForm(&values).Run(); err != nil {
		return err
	}
	if values.Category == "" {
		if err := customCategoryForm(&values.Category).Run(); err != nil {
			return err
		}
	}

	interval, err := strconv.Atoi(values.Interval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", values.Interval, err)
	}

	task := &domain.Task{
		Name:         values.Name,
		Category:     values.Category,
		IntervalDays: interval,
		Description:  values.Description,
	}
	if values.LastDone != "" {
		at, err := time.Parse("2006-01-02", values.LastDone)
		if err != nil {
			return fmt.Errorf("invalid last completed date %q: %w", values.LastDone, err)
		}
		task.LastCompleted = at
	}

	if err := app.Tasks.Create(context.Background(), app.UserID, task); err != nil {
		return fmt.Errorf("adding task %q: %w", task.Name, err)
	}
	cmd.Printf("Added task %q, due every %d days.\n", task.Name, task.IntervalDays)
	refreshAlerts(cmd, app)
	return nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var category, sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidSortKeys[sortKey] {
				return fmt.Errorf("invalid sort key %q", sortKey)
			}

			tasks, err := app.Tasks.List(context.Background(), app.UserID)
			if err != nil {
				return fmt.Errorf("loading tasks: %w", err)
			}

			now := time.Now().UTC()
			tasks = schedule.FilterByCategory(tasks, category)
			tasks = schedule.SortTasks(tasks, domain.SortKey(sortKey), now)

			if len(tasks) == 0 {
				cmd.Println("No tasks found.")
				return nil
			}

			cmd.Printf("%s\n", formatter.FormatTaskList(tasks, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", domain.CategoryAll, "Filter by category")
	cmd.Flags().StringVar(&sortKey, "sort", string(domain.SortDaysAscending),
		"Sort order: days-ascending, days-descending, date-added, date-modified, alphabetical")

	return cmd
}

func newTaskInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <task>",
		Short: "Show one task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, app.UserID, id)
			if err != nil {
				return err
			}
			cmd.Printf("%s\n", formatter.FormatTaskDetail(task, time.Now().UTC()))
			return nil
		},
	}
	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var name, category, lastDone, description string
	var interval int

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Update fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var upd domain.TaskUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("category") {
				upd.Category = &category
			}
			if cmd.Flags().Changed("interval") {
				upd.IntervalDays = &interval
			}
			if cmd.Flags().Changed("notes") {
				upd.Description = &description
			}
			if cmd.Flags().Changed("last-completed") {
				at, err := time.Parse("2006-01-02", lastDone)
				if err != nil {
					return fmt.Errorf("invalid last completed date %q: %w", lastDone, err)
				}
				upd.LastCompleted = &at
			}

			task, err := app.Tasks.Update(ctx, app.UserID, id, upd)
			if err != nil {
				return fmt.Errorf("updating task: %w", err)
			}
			cmd.Printf("Updated task %q.\n", task.Name)
			refreshAlerts(cmd, app)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New task name")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().IntVar(&interval, "interval", 0, "New interval in days")
	cmd.Flags().StringVar(&lastDone, "last-completed", "", "New last completion date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "notes", "", "New notes")

	return cmd
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "complete <task>",
		Short: "Mark a task complete, resetting its due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			task, err := app.Tasks.Complete(ctx, app.UserID, id, notes)
			if err != nil {
				return fmt.Errorf("completing task: %w", err)
			}
			cmd.Printf("Completed %q. Next due %s.\n",
				task.Name, schedule.NextDueDate(task).Format("2006-01-02"))
			refreshAlerts(cmd, app)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Optional completion notes")
	return cmd
}

func newTaskDuplicateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicate <task>",
		Short: "Copy a task, starting a fresh recurrence cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			dup, err := app.Tasks.Duplicate(ctx, app.UserID, id)
			if err != nil {
				return fmt.Errorf("duplicating task: %w", err)
			}
			cmd.Printf("Created %q.\n", dup.Name)
			refreshAlerts(cmd, app)
			return nil
		},
	}
	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <task>",
		Short: "Delete a task and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, app.UserID, id)
			if err != nil {
				return err
			}

			if !force && app.interactive() {
				confirmed := false
				prompt := fmt.Sprintf("Delete %q and its history?", task.Name)
				if err := wizardConfirm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					cmd.Println("Aborted.")
					return nil
				}
			}

			if err := app.Tasks.Delete(ctx, app.UserID, id); err != nil {
				return fmt.Errorf("deleting task %q: %w", task.Name, err)
			}
			cmd.Printf("Deleted task %q.\n", task.Name)
			refreshAlerts(cmd, app)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation")
	return cmd
}

func newTaskImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk import tasks from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					cmd.PrintErrf("  %v\n", e)
				}
				return fmt.Errorf("import file has %d validation error(s)", len(errs))
			}

			tasks := importer.ConvertToTasks(schema, app.UserID, time.Now().UTC())
			count, err := app.Tasks.Import(context.Background(), app.UserID, tasks)
			if err != nil {
				return fmt.Errorf("importing tasks: %w", err)
			}
			cmd.Printf("Imported %d task(s).\n", count)
			refreshAlerts(cmd, app)
			return nil
		},
	}
	return cmd
}

func newTaskHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <task>",
		Short: "Show a task's completion log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, app.UserID, id)
			if err != nil {
				return err
			}
			entries, err := app.Tasks.History(ctx, app.UserID, id)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if len(entries) == 0 {
				cmd.Printf("No completions recorded for %q yet.\n", task.Name)
				return nil
			}
			cmd.Printf("%s\n", formatter.FormatHistory(task.Name, entries))
			return nil
		},
	}
	return cmd
}
