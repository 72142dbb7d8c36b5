package model

// CalculationResponse wraps any calculation result for JSON output.
type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   any                 `json:"calculation_result"`
	Error               *ErrorResponse      `json:"error,omitempty"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	Command                string `json:"command"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
