package cli

import (
	"fmt"
	"strings"

	"planner/internal/model"
	"planner/internal/schedule"
	"planner/internal/service"

	"github.com/spf13/cobra"
)

func newSectionsCmd(a *app) *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Show active tasks grouped by section",
		Long: `Show active tasks grouped by section.

Examples:
  plannerctl sections
  plannerctl sections --today 2026-03-10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseToday(today)
			if err != nil {
				return err
			}
			groups, err := a.svc.Tasks.Sections(cmd.Context(), day)
			if err != nil {
				return fmt.Errorf("failed to load sections: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, g := range groups {
				fmt.Fprintf(out, "%s (%d)\n", g.Section, len(g.Tasks))
				for i := range g.Tasks {
					printTask(out, &g.Tasks[i])
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Calendar date to bucket against (YYYY-MM-DD)")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var (
		today   string
		section string
		group   string
		due     string
	)
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Quick-add a task",
		Long: `Quick-add a task, optionally straight into a section.

Examples:
  plannerctl add "Renew passport"
  plannerctl add "Plan sprint" --section next-week`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseToday(today)
			if err != nil {
				return err
			}
			in := service.QuickAddInput{
				Title:       strings.Join(args, " "),
				Group:       model.Group(group),
				Section:     schedule.Section(section),
				ClientToday: day,
			}
			if due != "" {
				d, err := model.ParseDate(due)
				if err != nil {
					return err
				}
				in.DueDate = &d
			}

			task, err := a.svc.Tasks.QuickAdd(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to add task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s: %q\n", task.ID, task.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Calendar date to place against (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&section, "section", "s", "", "Section to add into")
	cmd.Flags().StringVarP(&group, "group", "g", "", "personal or work")
	cmd.Flags().StringVar(&due, "due", "", "Explicit due date (YYYY-MM-DD)")
	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	var (
		today  string
		before string
		after  string
	)
	cmd := &cobra.Command{
		Use:   "move [task-id] [section]",
		Short: "Move a task into a section",
		Long: `Move a task into a section, optionally between two neighbors.
The due date and order rank follow the same rules as drag and drop.

Examples:
  plannerctl move 5f1c... today
  plannerctl move 5f1c... this-week --before 9a2b... --today 2026-03-10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseToday(today)
			if err != nil {
				return err
			}
			task, err := a.svc.Scheduler.ReorderTask(cmd.Context(), service.ReorderInput{
				TaskID:        args[0],
				TargetSection: schedule.Section(args[1]),
				BeforeTaskID:  before,
				AfterTaskID:   after,
				ClientToday:   day,
			})
			if err != nil {
				return fmt.Errorf("failed to move task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Moved to %s\n", args[1])
			printTask(cmd.OutOrStdout(), task)
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Calendar date to place against (YYYY-MM-DD)")
	cmd.Flags().StringVar(&before, "before", "", "ID of the task the moved task follows")
	cmd.Flags().StringVar(&after, "after", "", "ID of the task the moved task precedes")
	return cmd
}

func newSnoozeCmd(a *app) *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "snooze [task-id]",
		Short: "Push a task one day out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseToday(today)
			if err != nil {
				return err
			}
			task, err := a.svc.Scheduler.SnoozeTask(cmd.Context(), args[0], day)
			if err != nil {
				return fmt.Errorf("failed to snooze task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Snoozed until %s\n", task.DueDate)
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Calendar date to snooze from (YYYY-MM-DD)")
	return cmd
}

func newRenormalizeCmd(a *app) *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "renormalize [section]",
		Short: "Rewrite the order ranks of a section to evenly spaced values",
		Long: `Rewrite the order ranks of a section to evenly spaced values, keeping
the current order. Run it when repeated drops between the same two
tasks have squeezed ranks together.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseToday(today)
			if err != nil {
				return err
			}
			tasks, err := a.svc.Tasks.Renormalize(cmd.Context(), schedule.Section(args[0]), day)
			if err != nil {
				return fmt.Errorf("failed to renormalize: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Renormalized %d tasks in %s\n", len(tasks), args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Calendar date to bucket against (YYYY-MM-DD)")
	return cmd
}
