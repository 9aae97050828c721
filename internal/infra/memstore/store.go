// Package memstore provides in-memory implementations of EmployeeRepository and ProjectRepository.
// Records live for the lifetime of the process.
package memstore

import (
	"fmt"
	"slices"
	"sync"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// Ensure the tables implement the repository interfaces.
var (
	_ domain.EmployeeRepository = (*Employees)(nil)
	_ domain.ProjectRepository  = (*Projects)(nil)
)

// Employees is the central employee table. It owns every Employee record;
// tasks and projects resolve employees through it by id.
// Fields are ordered to minimize memory padding.
type Employees struct {
	records map[int]*domain.Employee
	mu      sync.RWMutex
	nextID  int
}

// NewEmployees creates an empty employee table whose ids start at 1.
func NewEmployees() *Employees {
	return &Employees{
		records: make(map[int]*domain.Employee),
		nextID:  1,
	}
}

// Employee retrieves an employee by ID.
func (s *Employees) Employee(id int) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrEmployeeNotFound, id)
	}
	return e, nil
}

// List retrieves employees matching the filter, sorted by ID.
func (s *Employees) List(filter domain.EmployeeFilter) ([]*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Employee, 0, len(s.records))
	for _, e := range s.records {
		if filter.FreeOnly && !e.IsFree() {
			continue
		}
		res = append(res, e)
	}

	slices.SortFunc(res, func(a, b *domain.Employee) int {
		return a.ID() - b.ID()
	})
	return res, nil
}

// Save creates or updates an employee.
func (s *Employees) Save(e *domain.Employee) error {
	if e == nil {
		return fmt.Errorf("%w: nil employee", domain.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[e.ID()] = e
	if e.ID() >= s.nextID {
		s.nextID = e.ID() + 1
	}
	return nil
}

// NextID returns the ID the next new employee should use.
// The ID is consumed by Save, so a record that fails validation leaves no gap.
func (s *Employees) NextID() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID, nil
}

// Projects holds project records keyed by ID.
// Fields are ordered to minimize memory padding.
type Projects struct {
	records map[int]*domain.Project
	mu      sync.RWMutex
	nextID  int
}

// NewProjects creates an empty project table whose ids start at 1.
func NewProjects() *Projects {
	return &Projects{
		records: make(map[int]*domain.Project),
		nextID:  1,
	}
}

// Get retrieves a project by ID.
func (s *Projects) Get(id int) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrProjectNotFound, id)
	}
	return p, nil
}

// List retrieves projects matching the filter, sorted by ID.
func (s *Projects) List(filter domain.ProjectFilter) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Project, 0, len(s.records))
	for _, p := range s.records {
		// Apply State filter
		if filter.State != nil && p.State() != *filter.State {
			continue
		}
		res = append(res, p)
	}

	slices.SortFunc(res, func(a, b *domain.Project) int {
		return a.ID() - b.ID()
	})
	return res, nil
}

// Save creates or updates a project.
func (s *Projects) Save(p *domain.Project) error {
	if p == nil {
		return fmt.Errorf("%w: nil project", domain.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[p.ID()] = p
	if p.ID() >= s.nextID {
		s.nextID = p.ID() + 1
	}
	return nil
}

// NextID returns the ID the next new project should use.
// The ID is consumed by Save, so a record that fails validation leaves no gap.
func (s *Projects) NextID() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID, nil
}
