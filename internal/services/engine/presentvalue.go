package engine

import (
	"math"

	"fincalc/internal/models"
)

const errFutureValueNotPositive = "Future value must be greater than zero."

// solvePrincipal computes the present value P = FV / (1 + r/n)^(n·t), the
// algebraic inverse of the future value formula.
func solvePrincipal(in models.CalculationInputs) models.CalculationResult {
	switch {
	case in.FutureValue <= 0:
		return errorResult(in.CalculationTarget, errFutureValueNotPositive)
	case in.AnnualInterestRate < 0:
		return errorResult(in.CalculationTarget, errRateNegative)
	case in.TimePeriod <= 0:
		return errorResult(in.CalculationTarget, errTimeNotPositive)
	case in.CompoundingFrequency <= 0:
		return errorResult(in.CalculationTarget, errFrequencyNotPositive)
	}

	r := in.AnnualInterestRate / 100
	n := float64(in.CompoundingFrequency)

	return models.CalculationResult{
		CalculationTarget: in.CalculationTarget,
		Principal:         in.FutureValue / math.Pow(1+r/n, n*in.TimePeriod),
	}
}
