package engine

import (
	"math"

	"fincalc/internal/models"
)

const errFutureValueBelowPrincipal = "Future value must be greater than or equal to principal to achieve a positive rate."

// solveAnnualInterestRate computes r = n·((FV/P)^(1/(n·t)) − 1), returned as
// a percent. A future value below the principal would need a negative rate,
// which the solver rejects rather than returning.
func solveAnnualInterestRate(in models.CalculationInputs) models.CalculationResult {
	switch {
	case in.Principal <= 0:
		return errorResult(in.CalculationTarget, errPrincipalNotPositive)
	case in.FutureValue <= 0:
		return errorResult(in.CalculationTarget, errFutureValueNotPositive)
	case in.TimePeriod <= 0:
		return errorResult(in.CalculationTarget, errTimeNotPositive)
	case in.CompoundingFrequency <= 0:
		return errorResult(in.CalculationTarget, errFrequencyNotPositive)
	case in.FutureValue < in.Principal:
		return errorResult(in.CalculationTarget, errFutureValueBelowPrincipal)
	}

	n := float64(in.CompoundingFrequency)
	ratio := in.FutureValue / in.Principal

	return models.CalculationResult{
		CalculationTarget:  in.CalculationTarget,
		AnnualInterestRate: n * (math.Pow(ratio, 1/(n*in.TimePeriod)) - 1) * 100,
	}
}
