// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"sync"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// MockEmployeeRepository is a test double for domain.EmployeeRepository.
// Fields are ordered to minimize memory padding.
type MockEmployeeRepository struct {
	Employees map[int]*domain.Employee
	SaveErr   error
	ListErr   error
	NextIDErr error
	NextIDN   int
}

// NewMockEmployeeRepository creates a new MockEmployeeRepository with initialized maps.
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		Employees: make(map[int]*domain.Employee),
		NextIDN:   1,
	}
}

// Employee retrieves an employee by ID.
func (m *MockEmployeeRepository) Employee(id int) (*domain.Employee, error) {
	e, ok := m.Employees[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrEmployeeNotFound, id)
	}
	return e, nil
}

// List returns employees sorted by ID.
func (m *MockEmployeeRepository) List(filter domain.EmployeeFilter) ([]*domain.Employee, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	res := make([]*domain.Employee, 0, len(m.Employees))
	for _, e := range m.Employees {
		if filter.FreeOnly && !e.IsFree() {
			continue
		}
		res = append(res, e)
	}
	slices.SortFunc(res, func(a, b *domain.Employee) int { return a.ID() - b.ID() })
	return res, nil
}

// Save saves an employee.
func (m *MockEmployeeRepository) Save(e *domain.Employee) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Employees[e.ID()] = e
	if e.ID() >= m.NextIDN {
		m.NextIDN = e.ID() + 1
	}
	return nil
}

// NextID returns the next ID.
func (m *MockEmployeeRepository) NextID() (int, error) {
	if m.NextIDErr != nil {
		return 0, m.NextIDErr
	}
	return m.NextIDN, nil
}

// MockProjectRepository is a test double for domain.ProjectRepository.
// Fields are ordered to minimize memory padding.
type MockProjectRepository struct {
	Projects  map[int]*domain.Project
	SaveErr   error
	ListErr   error
	NextIDErr error
	NextIDN   int
}

// NewMockProjectRepository creates a new MockProjectRepository with initialized maps.
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[int]*domain.Project),
		NextIDN:  1,
	}
}

// Get retrieves a project by ID.
func (m *MockProjectRepository) Get(id int) (*domain.Project, error) {
	p, ok := m.Projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrProjectNotFound, id)
	}
	return p, nil
}

// List returns projects sorted by ID.
func (m *MockProjectRepository) List(filter domain.ProjectFilter) ([]*domain.Project, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	res := make([]*domain.Project, 0, len(m.Projects))
	for _, p := range m.Projects {
		if filter.State != nil && p.State() != *filter.State {
			continue
		}
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b *domain.Project) int { return a.ID() - b.ID() })
	return res, nil
}

// Save saves a project.
func (m *MockProjectRepository) Save(p *domain.Project) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Projects[p.ID()] = p
	if p.ID() >= m.NextIDN {
		m.NextIDN = p.ID() + 1
	}
	return nil
}

// NextID returns the next ID.
func (m *MockProjectRepository) NextID() (int, error) {
	if m.NextIDErr != nil {
		return 0, m.NextIDErr
	}
	return m.NextIDN, nil
}

// LogEntry is a message captured by MockLogger.
type LogEntry struct {
	Level     string
	Category  string
	Msg       string
	ProjectID int
}

// MockLogger is a test double for domain.Logger that records every entry.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level string, projectID int, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, ProjectID: projectID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(projectID int, category, msg string) {
	m.record("debug", projectID, category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(projectID int, category, msg string) {
	m.record("info", projectID, category, msg)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(projectID int, category, msg string) {
	m.record("warn", projectID, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(projectID int, category, msg string) {
	m.record("error", projectID, category, msg)
}

// Levels returns the level of every entry in order.
func (m *MockLogger) Levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		res = append(res, e.Level)
	}
	return res
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	InitedWith *domain.Config
	LocalInfo  domain.ConfigInfo
	GlobalInfo domain.ConfigInfo
	InitLocal  bool
	InitGlobal bool
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo { return m.LocalInfo }

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitLocal = true
	m.InitedWith = cfg
	return nil
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitGlobal = true
	m.InitedWith = cfg
	return nil
}
