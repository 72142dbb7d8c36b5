package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netto-engine/internal/model"
)

func TestRunSuccess(t *testing.T) {
	resp := Run("net", func() (any, error) {
		return New(nil).Calculate(30000, 0, model.DefaultTaxConfig())
	})

	meta := resp.CalculationMetadata
	assert.Equal(t, model.OutcomeSuccess, meta.CalculationOutcome)
	assert.Equal(t, "net", meta.Command)
	_, err := uuid.Parse(meta.CalculationID)
	assert.NoError(t, err)

	started, err := time.Parse(time.RFC3339, meta.CalculationStartedAt)
	require.NoError(t, err)
	completed, err := time.Parse(time.RFC3339, meta.CalculationCompletedAt)
	require.NoError(t, err)
	assert.False(t, completed.Before(started))
	assert.GreaterOrEqual(t, meta.CalculationDurationMs, int64(0))

	b, ok := resp.CalculationResult.(*model.Breakdown)
	require.True(t, ok)
	assert.Equal(t, 30000.0, b.Salary)
	assert.Nil(t, resp.Error)
}

func TestRunFailure(t *testing.T) {
	resp := Run("gross", func() (any, error) {
		return 12.0, errors.New("boom")
	})
	assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
	assert.Nil(t, resp.CalculationResult)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "boom", resp.Error.Message)
}

func TestRunIDsAreUnique(t *testing.T) {
	a := Run("net", func() (any, error) { return nil, nil })
	b := Run("net", func() (any, error) { return nil, nil })
	assert.NotEqual(t, a.CalculationMetadata.CalculationID, b.CalculationMetadata.CalculationID)
}
