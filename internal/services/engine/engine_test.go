package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/internal/models"
)

func TestCalculate_DispatchesByTarget(t *testing.T) {
	inflation := 2.0

	tests := []struct {
		name   string
		inputs models.CalculationInputs
		check  func(t *testing.T, res models.CalculationResult)
	}{
		{
			name: "future value",
			inputs: models.CalculationInputs{
				CalculationTarget:    models.TargetFutureValue,
				Principal:            10000,
				AnnualInterestRate:   5,
				TimePeriod:           10,
				CompoundingFrequency: models.CompoundAnnually,
				InflationRate:        &inflation,
			},
			check: func(t *testing.T, res models.CalculationResult) {
				assert.Greater(t, res.FutureValue, 10000.0)
				assert.NotNil(t, res.RealFutureValue)
				assert.NotEmpty(t, res.GrowthData)
			},
		},
		{
			name: "principal",
			inputs: models.CalculationInputs{
				CalculationTarget:    models.TargetPrincipal,
				FutureValue:          20000,
				AnnualInterestRate:   5,
				TimePeriod:           10,
				CompoundingFrequency: models.CompoundAnnually,
			},
			check: func(t *testing.T, res models.CalculationResult) {
				assert.Greater(t, res.Principal, 0.0)
				assert.Less(t, res.Principal, 20000.0)
			},
		},
		{
			name: "annual interest rate",
			inputs: models.CalculationInputs{
				CalculationTarget:    models.TargetAnnualInterestRate,
				Principal:            10000,
				FutureValue:          20000,
				TimePeriod:           10,
				CompoundingFrequency: models.CompoundMonthly,
			},
			check: func(t *testing.T, res models.CalculationResult) {
				assert.Greater(t, res.AnnualInterestRate, 0.0)
			},
		},
		{
			name: "time period",
			inputs: models.CalculationInputs{
				CalculationTarget:    models.TargetTimePeriod,
				Principal:            10000,
				FutureValue:          20000,
				AnnualInterestRate:   5,
				CompoundingFrequency: models.CompoundAnnually,
			},
			check: func(t *testing.T, res models.CalculationResult) {
				assert.Greater(t, res.TimePeriod, 0.0)
			},
		},
		{
			name: "loan payment",
			inputs: models.CalculationInputs{
				CalculationTarget: models.TargetLoanPayment,
				LoanAmount:        100000,
				LoanInterestRate:  4.5,
				LoanTerm:          30,
				PaymentFrequency:  models.PayMonthly,
			},
			check: func(t *testing.T, res models.CalculationResult) {
				assert.Greater(t, res.Payment, 0.0)
				assert.Len(t, res.AmortizationSchedule, 360)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(tt.inputs)
			assert.Empty(t, res.Error)
			assert.Equal(t, tt.inputs.CalculationTarget, res.CalculationTarget)
			tt.check(t, res)
		})
	}
}

func TestCalculate_InvalidTarget(t *testing.T) {
	for _, target := range []models.CalculationTarget{"", "net_worth", "FUTURE_VALUE"} {
		t.Run(string(target), func(t *testing.T) {
			res := Calculate(models.CalculationInputs{CalculationTarget: target})

			assert.Equal(t, ErrInvalidTarget, res.Error)
			// The target is echoed even when it is not recognized.
			assert.Equal(t, target, res.CalculationTarget)
			assertZeroedValues(t, res)
		})
	}
}

// assertZeroedValues checks that a failed result carries no computed values,
// and in particular no NaN or Inf.
func assertZeroedValues(t *testing.T, res models.CalculationResult) {
	t.Helper()

	assert.True(t, res.HasError())
	assert.Zero(t, res.FutureValue)
	assert.Nil(t, res.RealFutureValue)
	assert.Empty(t, res.GrowthData)
	assert.Zero(t, res.Principal)
	assert.Zero(t, res.AnnualInterestRate)
	assert.Zero(t, res.TimePeriod)
	assert.Zero(t, res.Payment)
	assert.Zero(t, res.TotalAmountPaid)
	assert.Zero(t, res.TotalInterestPaid)
	assert.Empty(t, res.AmortizationSchedule)

	for _, v := range []float64{
		res.FutureValue, res.Principal, res.AnnualInterestRate,
		res.TimePeriod, res.Payment, res.TotalAmountPaid, res.TotalInterestPaid,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}
