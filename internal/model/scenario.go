package model

// Scenario is a named configuration, used to compare outcomes side by side.
type Scenario struct {
	Name   string
	Config TaxConfig
}

// ScenarioResult pairs a scenario with its calculation.
type ScenarioResult struct {
	Scenario  string     `json:"scenario"`
	Breakdown *Breakdown `json:"breakdown"`
}
