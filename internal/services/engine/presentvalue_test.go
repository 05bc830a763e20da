package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/internal/models"
)

func principalInputs() models.CalculationInputs {
	return models.CalculationInputs{
		CalculationTarget:    models.TargetPrincipal,
		FutureValue:          20000,
		AnnualInterestRate:   5,
		TimePeriod:           10,
		CompoundingFrequency: models.CompoundAnnually,
	}
}

func TestPrincipal_AnnualCompounding(t *testing.T) {
	res := Calculate(principalInputs())

	require.Empty(t, res.Error)
	// 20000 / 1.05^10
	assert.InDelta(t, 12278.27, res.Principal, valueTolerance)

	// Only the principal field is populated for this target.
	assert.Zero(t, res.FutureValue)
	assert.Empty(t, res.GrowthData)
	assert.Nil(t, res.RealFutureValue)
}

func TestPrincipal_ZeroRateReturnsFutureValue(t *testing.T) {
	in := principalInputs()
	in.AnnualInterestRate = 0

	res := Calculate(in)
	require.Empty(t, res.Error)
	assert.Equal(t, 20000.0, res.Principal)
}

func TestPrincipal_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.CalculationInputs)
		wantErr string
	}{
		{
			name:    "zero future value",
			mutate:  func(in *models.CalculationInputs) { in.FutureValue = 0 },
			wantErr: errFutureValueNotPositive,
		},
		{
			name:    "negative rate",
			mutate:  func(in *models.CalculationInputs) { in.AnnualInterestRate = -0.5 },
			wantErr: errRateNegative,
		},
		{
			name:    "zero time period",
			mutate:  func(in *models.CalculationInputs) { in.TimePeriod = 0 },
			wantErr: errTimeNotPositive,
		},
		{
			name:    "zero compounding frequency",
			mutate:  func(in *models.CalculationInputs) { in.CompoundingFrequency = 0 },
			wantErr: errFrequencyNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := principalInputs()
			tt.mutate(&in)

			res := Calculate(in)
			assert.Equal(t, tt.wantErr, res.Error)
			assertZeroedValues(t, res)
		})
	}
}
