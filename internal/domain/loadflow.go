package domain

// ComponentStatus is the outcome of a load flow on one connected component.
type ComponentStatus string

const (
	StatusConverged           ComponentStatus = "CONVERGED"
	StatusMaxIterationReached ComponentStatus = "MAX_ITERATION_REACHED"
	StatusFailed              ComponentStatus = "FAILED"
	StatusNoCalculation       ComponentStatus = "NO_CALCULATION"
)

// ComponentResult is the load-flow outcome of one connected component.
type ComponentResult struct {
	// ComponentNum is 0 for the main (largest) component.
	ComponentNum int             `json:"component_num"`
	Status       ComponentStatus `json:"status"`
	StatusText   string          `json:"status_text,omitempty"`
	BusCount     int             `json:"bus_count"`
	Iterations   int             `json:"iterations"`
	SlackBusID   string          `json:"slack_bus_id,omitempty"`

	// SlackBusActivePowerMismatch is the active power left at the slack bus
	// after distribution, in MW.
	SlackBusActivePowerMismatch float64 `json:"slack_bus_active_power_mismatch"`

	// DistributedActivePower is the active power spread over generators, in MW.
	DistributedActivePower float64 `json:"distributed_active_power"`
}

// LoadFlowResult gathers the component results of one solver run.
type LoadFlowResult struct {
	Components []ComponentResult `json:"components"`
}

// Main returns the result of the main component.
func (r LoadFlowResult) Main() (ComponentResult, bool) {
	for _, c := range r.Components {
		if c.ComponentNum == 0 {
			return c, true
		}
	}
	return ComponentResult{}, false
}

// Converged reports whether the main component converged.
func (r LoadFlowResult) Converged() bool {
	m, ok := r.Main()
	return ok && m.Status == StatusConverged
}

// Iterations returns the total Newton iterations over all components.
func (r LoadFlowResult) Iterations() int {
	total := 0
	for _, c := range r.Components {
		total += c.Iterations
	}
	return total
}
