package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/diazbsofia/homesolution/internal/app"
	"github.com/diazbsofia/homesolution/internal/domain"
	"github.com/diazbsofia/homesolution/internal/usecase"
)

// report is the final state printed by the run command.
type report struct {
	Total     decimal.Decimal           `json:"total_cost"`
	Projects  []usecase.ProjectSummary  `json:"projects"`
	Employees []usecase.EmployeeSummary `json:"employees"`
	Failures  []string                  `json:"failures,omitempty"`
	Applied   int                       `json:"applied_steps"`
}

// newRunCommand creates the run command.
func newRunCommand(e *env) *cobra.Command {
	var continueOnError bool

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Apply a scenario and print the report",
		Long: `Register the employees and projects of a scenario file, apply its steps
in order and print every project, every employee and the total cost.

By default the run stops at the first failing entry. With --continue-on-error
failures are collected and the remaining steps still run. Either way the
report reflects what was applied and the exit code reflects the first failure.

Examples:
  # Apply a scenario
  homesol run scenario.yaml

  # Keep going past rejected steps, print JSON
  homesol run scenario.yaml --continue-on-error --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := e.container
			out, runErr := applyScenario(cmd, c, args[0], continueOnError)
			if out == nil {
				return runErr
			}

			rep, err := buildReport(cmd, c, out)
			if err != nil {
				return err
			}
			if c.AppConfig.Output.Format == domain.FormatJSON {
				if err := printJSON(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
				return runErr
			}
			printReport(cmd.OutOrStdout(), newStyles(cmd.OutOrStdout(), c.AppConfig.ColorEnabled()), rep)
			return runErr
		},
	}

	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Keep applying steps after a failure")

	return cmd
}

// applyScenario loads and runs the scenario at path. A nil output means nothing was applied.
func applyScenario(cmd *cobra.Command, c *app.Container, path string, continueOnError bool) (*usecase.RunScenarioOutput, error) {
	sc, err := c.LoadScenario(path)
	if err != nil {
		return nil, err
	}
	out, err := c.RunScenarioUseCase().Execute(cmd.Context(), usecase.RunScenarioInput{
		Scenario:        sc,
		ContinueOnError: continueOnError,
	})
	var stepErr *usecase.StepError
	if err != nil && !errors.As(err, &stepErr) {
		return nil, err
	}
	return out, err
}

func buildReport(cmd *cobra.Command, c *app.Container, out *usecase.RunScenarioOutput) (*report, error) {
	projects, err := c.ListProjectsUseCase().Execute(cmd.Context(), usecase.ListProjectsInput{})
	if err != nil {
		return nil, err
	}
	employees, err := c.ListEmployeesUseCase().Execute(cmd.Context(), usecase.ListEmployeesInput{})
	if err != nil {
		return nil, err
	}
	total, err := c.TotalCostUseCase().Execute(cmd.Context())
	if err != nil {
		return nil, err
	}

	rep := &report{
		Projects:  projects.Projects,
		Employees: employees.Employees,
		Total:     total.Total,
		Applied:   out.Applied,
	}
	for _, f := range out.Failures {
		rep.Failures = append(rep.Failures, f.Error())
	}
	return rep, nil
}

func printReport(w io.Writer, s *styles, rep *report) {
	_, _ = fmt.Fprintln(w, s.Heading("Projects"))
	printProjectTable(w, s, rep.Projects)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, s.Heading("Employees"))
	printEmployeeTable(w, s, rep.Employees)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintf(w, "%s %s\n", s.Heading("Total cost:"), money(rep.Total))
	_, _ = fmt.Fprintf(w, "%s\n", s.Muted(fmt.Sprintf("%d steps applied", rep.Applied)))

	if len(rep.Failures) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, s.Failure("Failures"))
		for _, f := range rep.Failures {
			_, _ = fmt.Fprintf(w, "- %s\n", f)
		}
	}
}
