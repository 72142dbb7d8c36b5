package engine

import (
	"time"

	"github.com/google/uuid"

	"netto-engine/internal/model"
)

// Run times fn and wraps its result with calculation metadata. A failed run
// keeps the error message and a nil result.
func Run(command string, fn func() (any, error)) *model.CalculationResponse {
	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)
	now := time.Now().UTC()

	resp := &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			Command:                command,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     model.OutcomeSuccess,
		},
		CalculationResult: result,
	}
	if err != nil {
		resp.CalculationMetadata.CalculationOutcome = model.OutcomeFailure
		resp.CalculationResult = nil
		resp.Error = &model.ErrorResponse{Message: err.Error()}
	}
	return resp
}
