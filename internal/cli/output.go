package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/diazbsofia/homesolution/internal/domain"
	"github.com/diazbsofia/homesolution/internal/usecase"
)

// Colors for state badges and headings.
var colors = struct {
	Heading   lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Pending   lipgloss.Color
	Active    lipgloss.Color
	Finalized lipgloss.Color
}{
	Heading:   lipgloss.Color("#6C5CE7"), // Purple
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Active:    lipgloss.Color("#FDCB6E"), // Yellow
	Finalized: lipgloss.Color("#00B894"), // Green
}

// styles renders text for one output stream. With color off every method returns its input.
type styles struct {
	heading lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
	states  map[domain.State]lipgloss.Style
	enabled bool
}

func newStyles(w io.Writer, enabled bool) *styles {
	r := lipgloss.NewRenderer(w)
	return &styles{
		enabled: enabled,
		heading: r.NewStyle().Bold(true).Foreground(colors.Heading),
		muted:   r.NewStyle().Foreground(colors.Muted),
		failure: r.NewStyle().Bold(true).Foreground(colors.Error),
		states: map[domain.State]lipgloss.Style{
			domain.StatePending:   r.NewStyle().Foreground(colors.Pending),
			domain.StateActive:    r.NewStyle().Foreground(colors.Active),
			domain.StateFinalized: r.NewStyle().Bold(true).Foreground(colors.Finalized),
		},
	}
}

func (s *styles) render(st lipgloss.Style, str string) string {
	if !s.enabled {
		return str
	}
	return st.Render(str)
}

func (s *styles) Heading(str string) string { return s.render(s.heading, str) }

func (s *styles) Muted(str string) string { return s.render(s.muted, str) }

func (s *styles) Failure(str string) string { return s.render(s.failure, str) }

func (s *styles) State(st domain.State) string {
	style, ok := s.states[st]
	if !ok {
		return string(st)
	}
	return s.render(style, string(st))
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	return tw
}

// printProjectTable writes one row per project.
func printProjectTable(w io.Writer, s *styles, projects []usecase.ProjectSummary) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "Client", "Address", "State", "Tasks", "Delays", "Actual", "Cost"})
	for _, p := range projects {
		client := "-"
		if p.Client != nil {
			client = p.Client.Name
		}
		tw.AppendRow(table.Row{
			p.ID, client, p.Address, s.State(p.State), p.Tasks,
			yesNo(p.HasDelays), p.Actual.String(), money(p.Cost),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 8, Align: text.AlignRight}})
	tw.Render()
}

// printEmployeeTable writes one row per employee.
func printEmployeeTable(w io.Writer, s *styles, employees []usecase.EmployeeSummary) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"ID", "Name", "Kind", "Category", "Rate", "Delays", "Status"})
	for _, e := range employees {
		category := string(e.Category)
		if category == "" {
			category = s.Muted("-")
		}
		status := "free"
		if e.Busy {
			status = "busy"
		}
		tw.AppendRow(table.Row{e.ID, e.Name, e.Kind.Display(), category, rateLabel(e), e.Delays, status})
	}
	tw.Render()
}

// printTaskTable writes one row per task.
func printTaskTable(w io.Writer, tasks []usecase.TaskSummary) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"Title", "State", "Employee", "Days", "Delay"})
	for _, t := range tasks {
		employee := "-"
		if t.EmployeeID != 0 {
			employee = strconv.Itoa(t.EmployeeID)
		}
		tw.AppendRow(table.Row{t.Title, string(t.State), employee, t.RequiredDays.String(), t.DelayDays.String()})
	}
	tw.Render()
}

func rateLabel(e usecase.EmployeeSummary) string {
	if e.Kind == domain.KindSalaried {
		return money(e.Rate) + "/day"
	}
	return money(e.Rate) + "/hour"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
