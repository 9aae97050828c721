// Package scenario reads YAML scenario files into domain.Scenario values.
//
// A scenario file looks like:
//
//	employees:
//	  - name: Luis
//	    kind: hourly
//	    rate: 10
//	projects:
//	  - address: Calle 123
//	    client: {name: Ana, email: ana@mail.com, phone: "555"}
//	    start: 01/03/2025
//	    estimate: 10/03/2025
//	    tasks:
//	      - {title: Paint, days: 5}
//	steps:
//	  - {op: assign, project: 1, task: Paint}
//	  - {op: delay, project: 1, task: Paint, days: 1}
//	  - {op: finalize, project: 1, date: 12/03/2025}
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/diazbsofia/homesolution/internal/domain"
)

// file is the YAML representation of a scenario.
type file struct {
	Employees []employeeYAML `yaml:"employees"`
	Projects  []projectYAML  `yaml:"projects"`
	Steps     []stepYAML     `yaml:"steps"`
}

type employeeYAML struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Category string   `yaml:"category"`
	Rate     quantity `yaml:"rate"`
}

type projectYAML struct {
	Client   *domain.Client `yaml:"client"`
	Address  string         `yaml:"address"`
	Start    string         `yaml:"start"`
	Estimate string         `yaml:"estimate"`
	Tasks    []taskYAML     `yaml:"tasks"`
}

type taskYAML struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Days        quantity `yaml:"days"`
}

type stepYAML struct {
	Op          string   `yaml:"op"`
	Task        string   `yaml:"task"`
	Description string   `yaml:"description"`
	Policy      string   `yaml:"policy"`
	Date        string   `yaml:"date"`
	Days        quantity `yaml:"days"`
	Project     int      `yaml:"project"`
	Employee    int      `yaml:"employee"`
}

// quantity decodes a YAML number into an exact decimal.
type quantity struct {
	decimal.Decimal
	set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: %q is not a number", node.Line, node.Value)
	}
	q.Decimal = d
	q.set = true
	return nil
}

// Load reads the scenario file at path.
func Load(path string) (*domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a scenario from r. Unknown fields are rejected.
func Parse(r io.Reader) (*domain.Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &domain.Scenario{}, nil
		}
		return nil, fmt.Errorf("%w: scenario: %v", domain.ErrInvalidArgument, err)
	}
	return f.toDomain()
}

func (f *file) toDomain() (*domain.Scenario, error) {
	sc := &domain.Scenario{}

	for i, e := range f.Employees {
		spec, err := e.toDomain()
		if err != nil {
			return nil, fmt.Errorf("employees[%d]: %w", i, err)
		}
		sc.Employees = append(sc.Employees, spec)
	}

	for i, p := range f.Projects {
		spec, err := p.toDomain()
		if err != nil {
			return nil, fmt.Errorf("projects[%d]: %w", i, err)
		}
		sc.Projects = append(sc.Projects, spec)
	}

	for i, s := range f.Steps {
		step, err := s.toDomain()
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
		sc.Steps = append(sc.Steps, step)
	}

	return sc, nil
}

func (e employeeYAML) toDomain() (domain.EmployeeSpec, error) {
	kind, err := domain.ParseKind(e.Kind)
	if err != nil {
		return domain.EmployeeSpec{}, err
	}
	spec := domain.EmployeeSpec{Name: e.Name, Kind: kind, Rate: e.Rate.Decimal}
	if kind == domain.KindSalaried {
		cat, err := domain.ParseCategory(e.Category)
		if err != nil {
			return domain.EmployeeSpec{}, err
		}
		spec.Category = cat
	}
	return spec, nil
}

func (p projectYAML) toDomain() (domain.ProjectSpec, error) {
	start, err := domain.ParseDate(p.Start)
	if err != nil {
		return domain.ProjectSpec{}, fmt.Errorf("start: %w", err)
	}
	estimate, err := domain.ParseDate(p.Estimate)
	if err != nil {
		return domain.ProjectSpec{}, fmt.Errorf("estimate: %w", err)
	}
	spec := domain.ProjectSpec{
		Client:   p.Client,
		Address:  p.Address,
		Start:    start,
		Estimate: estimate,
	}
	for _, t := range p.Tasks {
		spec.Tasks = append(spec.Tasks, domain.TaskSpec{
			Title:       t.Title,
			Description: t.Description,
			Days:        t.Days.Decimal,
		})
	}
	return spec, nil
}

func (s stepYAML) toDomain() (domain.Step, error) {
	op, err := domain.ParseStepOp(s.Op)
	if err != nil {
		return domain.Step{}, err
	}
	step := domain.Step{
		Op:          op,
		ProjectID:   s.Project,
		Title:       s.Task,
		Description: s.Description,
		EmployeeID:  s.Employee,
		Days:        s.Days.Decimal,
	}
	if s.Policy != "" {
		policy, err := domain.ParseAssignPolicy(s.Policy, "")
		if err != nil {
			return domain.Step{}, err
		}
		step.Policy = policy
	}
	switch op {
	case domain.OpDelay, domain.OpAddTask:
		if !s.Days.set {
			return domain.Step{}, fmt.Errorf("%w: %s requires days", domain.ErrInvalidArgument, op)
		}
	case domain.OpFinalize:
		date, err := domain.ParseDate(s.Date)
		if err != nil {
			return domain.Step{}, fmt.Errorf("date: %w", err)
		}
		step.Date = date
	}
	return step, nil
}
