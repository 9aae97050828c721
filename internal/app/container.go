// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/diazbsofia/homesolution/internal/domain"
	"github.com/diazbsofia/homesolution/internal/infra/config"
	"github.com/diazbsofia/homesolution/internal/infra/logging"
	"github.com/diazbsofia/homesolution/internal/infra/memstore"
	"github.com/diazbsofia/homesolution/internal/infra/scenario"
	"github.com/diazbsofia/homesolution/internal/usecase"
)

// Options carries the values that override configuration files.
// Fields are ordered to minimize memory padding.
type Options struct {
	LogOutput       io.Writer // Overrides [log] file when set
	WorkDir         string    // Directory holding the local config (default: cwd)
	ConfigPath      string    // Explicit local config path
	GlobalConfigDir string    // Empty = XDG default
	LogLevel        string    // Overrides [log] level when set
	Format          string    // Overrides [output] format when set
}

// Config holds the resolved application paths.
type Config struct {
	WorkDir    string // Working directory
	ConfigPath string // Local config file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Employees     domain.EmployeeRepository
	Projects      domain.ProjectRepository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closer    io.Closer

	// Configuration
	Config Config
}

// New creates a Container with in-memory stores and the merged configuration.
func New(opts Options) (*Container, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get current directory: %w", err)
		}
		workDir = cwd
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(workDir, domain.ConfigFileName)
	}

	var loader *config.Loader
	var manager *config.Manager
	if opts.GlobalConfigDir != "" {
		loader = config.NewLoaderWithGlobalDir(configPath, opts.GlobalConfigDir)
		manager = config.NewManagerWithGlobalDir(configPath, opts.GlobalConfigDir)
	} else {
		loader = config.NewLoader(configPath)
		manager = config.NewManager(configPath)
	}

	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(appConfig, opts); err != nil {
		return nil, err
	}

	c := &Container{
		Employees:     memstore.NewEmployees(),
		Projects:      memstore.NewProjects(),
		ConfigLoader:  loader,
		ConfigManager: manager,
		AppConfig:     appConfig,
		Config:        Config{WorkDir: workDir, ConfigPath: configPath},
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	if opts.LogOutput != nil {
		c.Logger = logging.New(opts.LogOutput, level)
		return c, nil
	}
	logger, err := logging.NewFile(appConfig.Log.File, level)
	if err != nil {
		return nil, err
	}
	c.Logger = logger
	c.closer = logger
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(appConfig *domain.Config, employees domain.EmployeeRepository, projects domain.ProjectRepository, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Employees: employees,
		Projects:  projects,
		Logger:    logger,
		AppConfig: appConfig,
	}
}

func applyOverrides(cfg *domain.Config, opts Options) error {
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	return cfg.Validate()
}

// Close releases the log file, if any.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// LoadScenario reads the scenario file at path.
func (c *Container) LoadScenario(path string) (*domain.Scenario, error) {
	return scenario.Load(path)
}

// UseCase factory methods

// RegisterEmployeeUseCase returns a new RegisterEmployee use case.
func (c *Container) RegisterEmployeeUseCase() *usecase.RegisterEmployee {
	return usecase.NewRegisterEmployee(c.Employees, c.Logger)
}

// RegisterProjectUseCase returns a new RegisterProject use case.
func (c *Container) RegisterProjectUseCase() *usecase.RegisterProject {
	return usecase.NewRegisterProject(c.Projects, c.Employees, c.Logger)
}

// AssignEmployeeUseCase returns a new AssignEmployee use case using the configured default policy.
func (c *Container) AssignEmployeeUseCase() *usecase.AssignEmployee {
	return usecase.NewAssignEmployee(c.Projects, c.Employees, c.Logger, c.AppConfig.AssignPolicy())
}

// ReassignEmployeeUseCase returns a new ReassignEmployee use case.
func (c *Container) ReassignEmployeeUseCase() *usecase.ReassignEmployee {
	return usecase.NewReassignEmployee(c.Projects, c.Employees, c.Logger)
}

// RegisterDelayUseCase returns a new RegisterDelay use case.
func (c *Container) RegisterDelayUseCase() *usecase.RegisterDelay {
	return usecase.NewRegisterDelay(c.Projects, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Projects, c.Logger)
}

// FinalizeTaskUseCase returns a new FinalizeTask use case.
func (c *Container) FinalizeTaskUseCase() *usecase.FinalizeTask {
	return usecase.NewFinalizeTask(c.Projects, c.Logger)
}

// FinalizeProjectUseCase returns a new FinalizeProject use case.
func (c *Container) FinalizeProjectUseCase() *usecase.FinalizeProject {
	return usecase.NewFinalizeProject(c.Projects, c.Logger)
}

// RunScenarioUseCase returns a new RunScenario use case wired to this container.
func (c *Container) RunScenarioUseCase() *usecase.RunScenario {
	return usecase.NewRunScenario(
		c.RegisterEmployeeUseCase(),
		c.RegisterProjectUseCase(),
		c.AssignEmployeeUseCase(),
		c.ReassignEmployeeUseCase(),
		c.RegisterDelayUseCase(),
		c.AddTaskUseCase(),
		c.FinalizeTaskUseCase(),
		c.FinalizeProjectUseCase(),
	)
}

// ShowProjectUseCase returns a new ShowProject use case.
func (c *Container) ShowProjectUseCase() *usecase.ShowProject {
	return usecase.NewShowProject(c.Projects)
}

// ListProjectsUseCase returns a new ListProjects use case.
func (c *Container) ListProjectsUseCase() *usecase.ListProjects {
	return usecase.NewListProjects(c.Projects)
}

// ListEmployeesUseCase returns a new ListEmployees use case.
func (c *Container) ListEmployeesUseCase() *usecase.ListEmployees {
	return usecase.NewListEmployees(c.Employees)
}

// EmployeeDelaysUseCase returns a new EmployeeDelays use case.
func (c *Container) EmployeeDelaysUseCase() *usecase.EmployeeDelays {
	return usecase.NewEmployeeDelays(c.Employees)
}

// ProjectEmployeesUseCase returns a new ProjectEmployees use case.
func (c *Container) ProjectEmployeesUseCase() *usecase.ProjectEmployees {
	return usecase.NewProjectEmployees(c.Projects)
}

// ProjectTasksUseCase returns a new ProjectTasks use case.
func (c *Container) ProjectTasksUseCase() *usecase.ProjectTasks {
	return usecase.NewProjectTasks(c.Projects)
}

// ProjectAddressUseCase returns a new ProjectAddress use case.
func (c *Container) ProjectAddressUseCase() *usecase.ProjectAddress {
	return usecase.NewProjectAddress(c.Projects)
}

// TotalCostUseCase returns a new TotalCost use case.
func (c *Container) TotalCostUseCase() *usecase.TotalCost {
	return usecase.NewTotalCost(c.Projects)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}
