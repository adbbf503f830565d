package cli

import (
	"fmt"
	"os"

	"planner/internal/model"
	"planner/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// actionFile is the YAML document the extraction pipeline writes.
type actionFile struct {
	Actions []service.ActionCandidate `yaml:"actions"`
}

// readActionFile parses extracted actions from a YAML file.
func readActionFile(path string) ([]service.ActionCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var f actionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f.Actions, nil
}

func newActionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Review meeting action items",
	}
	cmd.AddCommand(
		newActionsImportCmd(a),
		newActionsListCmd(a),
		newActionsApproveCmd(a),
		newActionsRejectCmd(a),
	)
	return cmd
}

func newActionsImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Stage extracted action items for review",
		Long: `Stage extracted action items for review.

The file holds an "actions" list:

  actions:
    - meeting_title: Weekly sync
      meeting_date: 2026-03-09
      title: Send budget draft
      owner: Sam
      due_date: 2026-03-13`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := readActionFile(args[0])
			if err != nil {
				return err
			}
			staged, err := a.svc.Actions.Stage(cmd.Context(), candidates)
			if err != nil {
				return fmt.Errorf("failed to stage actions: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Staged %d actions\n", len(staged))
			return nil
		},
	}
}

func newActionsListCmd(a *app) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staged action items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := a.svc.Actions.List(cmd.Context(), model.ActionStatus(status))
			if err != nil {
				return fmt.Errorf("failed to list actions: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(actions) == 0 {
				fmt.Fprintln(out, "No actions found.")
				return nil
			}
			for _, act := range actions {
				fmt.Fprintf(out, "  [%s] %s  %s\n", act.Status, act.ID, act.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, approved, rejected)")
	return cmd
}

func newActionsApproveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve [action-id]",
		Short: "Turn a pending action into a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, _, err := a.svc.Actions.Approve(cmd.Context(), args[0], service.ApprovalOverrides{})
			if err != nil {
				return fmt.Errorf("failed to approve action: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created task %s: %q\n", task.ID, task.Title)
			return nil
		},
	}
}

func newActionsRejectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reject [action-id]",
		Short: "Reject a pending action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.svc.Actions.Reject(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to reject action: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Rejected")
			return nil
		},
	}
}
