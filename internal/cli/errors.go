package cli

import "github.com/diazbsofia/homesolution/internal/domain"

// Exit codes returned by homesol.
const (
	ExitOK                  = 0
	ExitFailure             = 1
	ExitInvalidArgument     = 2
	ExitNotFound            = 3
	ExitInvalidState        = 4
	ExitResourceUnavailable = 5
)

// ExitCode maps err to the process exit code by its domain category.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch domain.CategoryOf(err) {
	case domain.ErrInvalidArgument:
		return ExitInvalidArgument
	case domain.ErrNotFound:
		return ExitNotFound
	case domain.ErrInvalidState:
		return ExitInvalidState
	case domain.ErrResourceUnavailable:
		return ExitResourceUnavailable
	default:
		return ExitFailure
	}
}
