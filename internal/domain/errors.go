package domain

import "errors"

// Error categories. Every domain error unwraps to exactly one of these.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrResourceUnavailable = errors.New("resource unavailable")
)

// Domain errors.
var (
	ErrInvalidDate         = categorized(ErrInvalidArgument, "invalid date")
	ErrEmptyName           = categorized(ErrInvalidArgument, "name cannot be empty")
	ErrInvalidID           = categorized(ErrInvalidArgument, "id must be positive")
	ErrInvalidRate         = categorized(ErrInvalidArgument, "rate must be positive")
	ErrInvalidDays         = categorized(ErrInvalidArgument, "days must be positive")
	ErrInvalidCategory     = categorized(ErrInvalidArgument, "invalid category")
	ErrInvalidKind         = categorized(ErrInvalidArgument, "invalid employee kind")
	ErrEmptyTitle          = categorized(ErrInvalidArgument, "title cannot be empty")
	ErrNoTasks             = categorized(ErrInvalidArgument, "project needs at least one task")
	ErrDuplicateTask       = categorized(ErrInvalidArgument, "task title already exists in project")
	ErrEstimateBeforeStart = categorized(ErrInvalidArgument, "estimate date is before start date")
	ErrFinishBeforeStart   = categorized(ErrInvalidArgument, "completion date is before start date")

	ErrTaskNotFound     = categorized(ErrNotFound, "task not found")
	ErrProjectNotFound  = categorized(ErrNotFound, "project not found")
	ErrEmployeeNotFound = categorized(ErrNotFound, "employee not found")

	ErrAlreadyAssigned     = categorized(ErrInvalidState, "task already has an employee")
	ErrNoCurrentAssignment = categorized(ErrInvalidState, "task has no employee assigned")
	ErrAlreadyFinalized    = categorized(ErrInvalidState, "already finalized")
	ErrProjectFinalized    = categorized(ErrInvalidState, "project is finalized")
	ErrConfigExists        = categorized(ErrInvalidState, "config file already exists")

	ErrAlreadyBusy    = categorized(ErrResourceUnavailable, "employee already busy")
	ErrEmployeeBusy   = categorized(ErrResourceUnavailable, "employee is not free")
	ErrNoFreeEmployee = categorized(ErrResourceUnavailable, "no free employee available")
)

// categoryError is a specific error that also matches its category with errors.Is.
type categoryError struct {
	category error
	msg      string
}

func categorized(category error, msg string) error {
	return &categoryError{category: category, msg: msg}
}

func (e *categoryError) Error() string { return e.msg }

func (e *categoryError) Unwrap() error { return e.category }

// CategoryOf returns the category sentinel err belongs to, or nil for foreign errors.
func CategoryOf(err error) error {
	for _, c := range []error{ErrInvalidArgument, ErrNotFound, ErrInvalidState, ErrResourceUnavailable} {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}
