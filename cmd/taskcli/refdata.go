package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskclient/internal/models"
)

func categoryCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			a.Category.Fetch(cmd.Context())
			if msg := a.Categories.Err(); msg != "" {
				return errFailed
			}

			for _, category := range a.Categories.All() {
				if category.Emoji != "" {
					fmt.Printf("%s  %s %s\n", category.ID, category.Emoji, category.Name)
					continue
				}
				fmt.Printf("%s  %s\n", category.ID, category.Name)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a category",
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

			emoji, _ := cmd.Flags().GetString("emoji")
			a.Category.Create(cmd.Context(), models.CreateCategory{
				Name:  args[0],
				Emoji: emoji,
			})

			if msg := a.Categories.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}
	add.Flags().String("emoji", "", "Category emoji")

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a category",
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

			a.Category.Delete(cmd.Context(), args[0])

			if msg := a.Categories.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	cmd.AddCommand(list, add, rm)
	return cmd
}

func priorityCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			a.Priority.Fetch(cmd.Context())
			if msg := a.Priorities.Err(); msg != "" {
				return errFailed
			}

			for _, priority := range a.Priorities.All() {
				fmt.Printf("%s  %s (%s)\n", priority.ID, priority.Name, priority.Color)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a priority",
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

			color, _ := cmd.Flags().GetString("color")
			a.Priority.Create(cmd.Context(), models.CreatePriority{
				Name:  args[0],
				Color: color,
			})

			if msg := a.Priorities.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}
	add.Flags().String("color", "#808080", "Priority color")

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a priority",
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

			a.Priority.Delete(cmd.Context(), args[0])

			if msg := a.Priorities.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Manage priorities",
	}
	cmd.AddCommand(list, add, rm)
	return cmd
}
