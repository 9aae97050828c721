package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diazbsofia/homesolution/internal/domain"
	"github.com/diazbsofia/homesolution/internal/usecase"
)

// newDelaysCommand creates the delays command.
func newDelaysCommand(e *env) *cobra.Command {
	var employeeID int
	var continueOnError bool

	cmd := &cobra.Command{
		Use:   "delays <scenario.yaml> --employee <id>",
		Short: "Apply a scenario and report an employee's delays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := e.container
			out, runErr := applyScenario(cmd, c, args[0], continueOnError)
			if out == nil || (runErr != nil && !continueOnError) {
				return runErr
			}

			res, err := c.EmployeeDelaysUseCase().Execute(cmd.Context(), usecase.EmployeeDelaysInput{EmployeeID: employeeID})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if c.AppConfig.Output.Format == domain.FormatJSON {
				return firstErr(printJSON(w, res), runErr)
			}
			if !res.HasDelays {
				_, _ = fmt.Fprintf(w, "Employee %d has no delays\n", employeeID)
				return runErr
			}
			_, _ = fmt.Fprintf(w, "Employee %d has %d delays\n", employeeID, res.Delays)
			return runErr
		},
	}

	cmd.Flags().IntVar(&employeeID, "employee", 0, "Employee ID (required)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Keep applying steps after a failure")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}
