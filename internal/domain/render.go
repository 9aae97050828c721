package domain

import (
	"fmt"
	"strings"
)

// String renders the multi-line project summary.
//
// Format:
//
//	Project #1
//	Address: Calle 123
//	Client: Ana (ana@mail.com - 555)
//	State: ACTIVE
//	Start date: 01/03/2025
//	Estimated date: 10/03/2025
//	Actual date: 10/03/2025
//	Final cost: $540.00
//	Delays: No
//
//	Tasks:
//	  - Paint (Assigned to: Luis) [FINALIZED] [Delay: 1 days]
func (p *Project) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Project #%d\n", p.id)
	fmt.Fprintf(&sb, "Address: %s\n", p.address)
	client := "-"
	if p.client != nil {
		client = p.client.String()
	}
	fmt.Fprintf(&sb, "Client: %s\n", client)
	fmt.Fprintf(&sb, "State: %s\n", p.state)
	fmt.Fprintf(&sb, "Start date: %s\n", p.start)
	fmt.Fprintf(&sb, "Estimated date: %s\n", p.estimate)
	fmt.Fprintf(&sb, "Actual date: %s\n", p.actual)
	fmt.Fprintf(&sb, "Final cost: $%s\n", p.CurrentCost().StringFixed(2))
	fmt.Fprintf(&sb, "Delays: %s\n", yesNo(p.HasDelays()))
	sb.WriteString("\nTasks:\n")
	for _, t := range p.tasks {
		sb.WriteString("  - ")
		sb.WriteString(t.Title())
		if e, ok, err := t.Employee(); err == nil && ok {
			fmt.Fprintf(&sb, " (Assigned to: %s)", e.Name())
		}
		if t.IsFinalized() {
			sb.WriteString(" [FINALIZED]")
		}
		if t.HasDelay() {
			fmt.Fprintf(&sb, " [Delay: %s days]", t.DelayDays())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
