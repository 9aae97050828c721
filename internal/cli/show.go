package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/diazbsofia/homesolution/internal/domain"
	"github.com/diazbsofia/homesolution/internal/usecase"
)

// projectView is the JSON form of the show command.
type projectView struct {
	Project usecase.ProjectSummary    `json:"project"`
	Tasks   []usecase.TaskSummary     `json:"tasks"`
	Current []usecase.EmployeeSummary `json:"current_employees"`
	History []usecase.EmployeeSummary `json:"employee_history"`
}

// newShowCommand creates the show command.
func newShowCommand(e *env) *cobra.Command {
	var opts struct {
		ProjectID       int
		Address         bool
		Unassigned      bool
		ContinueOnError bool
	}

	cmd := &cobra.Command{
		Use:   "show <scenario.yaml> --project <id>",
		Short: "Apply a scenario and show one project",
		Long: `Apply a scenario file and print the summary of one project, followed by
the employees holding its unfinished tasks and everyone ever assigned.

With --address only the work site address is printed.
With --unassigned only the tasks nobody holds are listed.

Examples:
  homesol show scenario.yaml --project 1
  homesol show scenario.yaml --project 2 --unassigned`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := e.container
			out, runErr := applyScenario(cmd, c, args[0], opts.ContinueOnError)
			if out == nil || (runErr != nil && !opts.ContinueOnError) {
				return runErr
			}

			w := cmd.OutOrStdout()
			jsonOut := c.AppConfig.Output.Format == domain.FormatJSON

			switch {
			case opts.Address:
				res, err := c.ProjectAddressUseCase().Execute(cmd.Context(), usecase.ProjectAddressInput{ProjectID: opts.ProjectID})
				if err != nil {
					return err
				}
				if jsonOut {
					return firstErr(printJSON(w, map[string]string{"address": res.Address}), runErr)
				}
				_, _ = fmt.Fprintln(w, res.Address)
				return runErr

			case opts.Unassigned:
				res, err := c.ProjectTasksUseCase().Execute(cmd.Context(), usecase.ProjectTasksInput{ProjectID: opts.ProjectID, UnassignedOnly: true})
				if err != nil {
					return err
				}
				if jsonOut {
					return firstErr(printJSON(w, res.Tasks), runErr)
				}
				printTaskTable(w, res.Tasks)
				return runErr
			}

			shown, err := c.ShowProjectUseCase().Execute(cmd.Context(), usecase.ShowProjectInput{ProjectID: opts.ProjectID})
			if err != nil {
				return err
			}
			staff, err := c.ProjectEmployeesUseCase().Execute(cmd.Context(), usecase.ProjectEmployeesInput{ProjectID: opts.ProjectID})
			if err != nil {
				return err
			}

			if jsonOut {
				return firstErr(printJSON(w, projectView{
					Project: shown.Project,
					Tasks:   shown.Tasks,
					Current: staff.Current,
					History: staff.History,
				}), runErr)
			}
			s := newStyles(w, c.AppConfig.ColorEnabled())
			_, _ = fmt.Fprint(w, shown.Rendered)
			printEmployeeList(w, s, "Current assignments", staff.Current)
			printEmployeeList(w, s, "Ever assigned", staff.History)
			return runErr
		},
	}

	cmd.Flags().IntVar(&opts.ProjectID, "project", 0, "Project ID (required)")
	cmd.Flags().BoolVar(&opts.Address, "address", false, "Print only the work site address")
	cmd.Flags().BoolVar(&opts.Unassigned, "unassigned", false, "List only unassigned tasks")
	cmd.Flags().BoolVar(&opts.ContinueOnError, "continue-on-error", false, "Keep applying steps after a failure")
	_ = cmd.MarkFlagRequired("project")
	cmd.MarkFlagsMutuallyExclusive("address", "unassigned")

	return cmd
}

func printEmployeeList(w io.Writer, s *styles, title string, employees []usecase.EmployeeSummary) {
	_, _ = fmt.Fprintf(w, "\n%s:\n", s.Heading(title))
	if len(employees) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", s.Muted("(none)"))
		return
	}
	for _, e := range employees {
		_, _ = fmt.Fprintf(w, "  - %d %s (delays: %d)\n", e.ID, e.Name, e.Delays)
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
