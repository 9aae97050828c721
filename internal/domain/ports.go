package domain

// Roster resolves employees by id. It is the single owner of busy and delay state.
type Roster interface {
	// Employee returns the employee with id, or ErrEmployeeNotFound.
	Employee(id int) (*Employee, error)
}

// EmployeeRepository manages employee records.
type EmployeeRepository interface {
	Roster

	// List returns every employee ordered by id.
	List(filter EmployeeFilter) ([]*Employee, error)

	// Save creates or updates an employee.
	Save(e *Employee) error

	// NextID returns the next available employee id.
	NextID() (int, error)
}

// EmployeeFilter specifies criteria for listing employees.
type EmployeeFilter struct {
	FreeOnly bool
}

// ProjectRepository manages project records.
type ProjectRepository interface {
	// Get retrieves a project by id, or ErrProjectNotFound.
	Get(id int) (*Project, error)

	// List retrieves projects matching the filter, ordered by id.
	List(filter ProjectFilter) ([]*Project, error)

	// Save creates or updates a project.
	Save(p *Project) error

	// NextID returns the next available project id.
	NextID() (int, error)
}

// ProjectFilter specifies criteria for listing projects.
type ProjectFilter struct {
	State *State // nil = all projects
}

// Logger records use case activity.
// projectID 0 logs without project context.
type Logger interface {
	Debug(projectID int, category, msg string)
	Info(projectID int, category, msg string)
	Warn(projectID int, category, msg string)
	Error(projectID int, category, msg string)
}

// ConfigLoader loads the merged application configuration.
type ConfigLoader interface {
	// Load returns defaults overlaid with the global and then the local file.
	Load() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetLocalConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitLocalConfig(cfg *Config) error
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
