package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskclient/internal/actions"
	"taskclient/internal/app"
	"taskclient/internal/models"
)

func taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(taskAddCmd())
	cmd.AddCommand(taskEditCmd())
	cmd.AddCommand(taskDoneCmd())
	cmd.AddCommand(taskRmCmd())

	return cmd
}

func taskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			category, _ := cmd.Flags().GetString("category")
			priority, _ := cmd.Flags().GetString("priority")
			dueDate, _ := cmd.Flags().GetString("due")

			// Reference data first so category/priority ids resolve to
			// names below.
			a.Category.Fetch(cmd.Context())
			a.Priority.Fetch(cmd.Context())

			a.Task.Fetch(cmd.Context(), actions.Filter{
				Category: category,
				Priority: priority,
				DueDate:  dueDate,
			})

			if msg := a.Tasks.Err(); msg != "" {
				return errFailed
			}

			for _, task := range a.Tasks.All() {
				fmt.Println(renderTask(a, task))
			}
			return nil
		},
	}

	cmd.Flags().String("category", "", "Filter by category id")
	cmd.Flags().String("priority", "", "Filter by priority id")
	cmd.Flags().String("due", "", "Filter by due date")

	return cmd
}

func taskAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			dateTime, _ := cmd.Flags().GetString("date")
			deadline, _ := cmd.Flags().GetString("deadline")
			priority, _ := cmd.Flags().GetString("priority")
			categories, _ := cmd.Flags().GetStringSlice("category")

			a.Task.Create(cmd.Context(), models.CreateTask{
				Name:       args[0],
				DateTime:   dateTime,
				Deadline:   deadline,
				Priority:   priority,
				Categories: categories,
			})

			if msg := a.Tasks.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().String("date", "", "Scheduled date")
	cmd.Flags().String("deadline", "", "Deadline")
	cmd.Flags().String("priority", "", "Priority id")
	cmd.Flags().StringSlice("category", nil, "Category ids")

	return cmd
}

func taskEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			var patch models.UpdateTask
			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				patch.Name = &name
			}
			if cmd.Flags().Changed("date") {
				date, _ := cmd.Flags().GetString("date")
				patch.DateTime = &date
			}
			if cmd.Flags().Changed("deadline") {
				deadline, _ := cmd.Flags().GetString("deadline")
				patch.Deadline = &deadline
			}
			if cmd.Flags().Changed("priority") {
				priority, _ := cmd.Flags().GetString("priority")
				patch.Priority = &priority
			}
			if cmd.Flags().Changed("category") {
				categories, _ := cmd.Flags().GetStringSlice("category")
				patch.Categories = &categories
			}

			a.Task.Update(cmd.Context(), args[0], patch)

			if msg := a.Tasks.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("date", "", "New scheduled date")
	cmd.Flags().String("deadline", "", "New deadline")
	cmd.Flags().String("priority", "", "New priority id")
	cmd.Flags().StringSlice("category", nil, "New category ids")

	return cmd
}

func taskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			// Toggle needs the current flag, which lives in the store.
			a.Task.Fetch(cmd.Context(), actions.Filter{})
			a.Task.ToggleCompleted(cmd.Context(), args[0])

			if msg := a.Tasks.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}
}

func taskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			a.Task.Delete(cmd.Context(), args[0])

			if msg := a.Tasks.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}
}

// renderTask resolves the task's weak category/priority references
// against the reference stores at render time.
func renderTask(a *app.App, task models.Task) string {
	mark := " "
	if task.Completed {
		mark = "x"
	}

	line := fmt.Sprintf("[%s] %s  %s", mark, task.ID, task.Name)

	if priority, ok := a.Priorities.ByID(task.Priority); ok {
		line += "  !" + priority.Name
	}

	var names []string
	for _, id := range task.Categories {
		if category, ok := a.Categories.ByID(id); ok {
			names = append(names, category.Name)
		}
	}
	if len(names) > 0 {
		line += "  #" + strings.Join(names, " #")
	}

	if task.Deadline != "" {
		line += "  due " + task.Deadline
	}

	return line
}
