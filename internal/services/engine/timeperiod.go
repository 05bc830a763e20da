package engine

import (
	"math"

	"fincalc/internal/models"
)

const errRateNotPositive = "Annual interest rate must be greater than zero."

// solveTimePeriod computes t = ln(FV/P) / (n·ln(1 + r/n)). The rate must be
// strictly positive: at r = 0 the denominator is ln(1) = 0.
func solveTimePeriod(in models.CalculationInputs) models.CalculationResult {
	switch {
	case in.Principal <= 0:
		return errorResult(in.CalculationTarget, errPrincipalNotPositive)
	case in.FutureValue <= 0:
		return errorResult(in.CalculationTarget, errFutureValueNotPositive)
	case in.AnnualInterestRate <= 0:
		return errorResult(in.CalculationTarget, errRateNotPositive)
	case in.CompoundingFrequency <= 0:
		return errorResult(in.CalculationTarget, errFrequencyNotPositive)
	case in.FutureValue < in.Principal:
		return errorResult(in.CalculationTarget, errFutureValueBelowPrincipal)
	}

	r := in.AnnualInterestRate / 100
	n := float64(in.CompoundingFrequency)

	return models.CalculationResult{
		CalculationTarget: in.CalculationTarget,
		TimePeriod:        math.Log(in.FutureValue/in.Principal) / (n * math.Log(1+r/n)),
	}
}
