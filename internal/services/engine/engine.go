// Package engine implements the financial calculation engine: a dispatcher
// over five closed-form solvers (future value, present value, annual rate,
// time period, loan payment with amortization schedule).
//
// All solvers are pure functions over float64 scalars. Domain validation
// failures are returned as data on the result, never as Go errors or panics,
// and each solver either fully succeeds or returns one error string with
// every numeric field zeroed.
package engine

import (
	"fincalc/internal/models"
)

// ErrInvalidTarget is the message returned for an unrecognized target.
const ErrInvalidTarget = "Invalid calculation target."

// Calculate runs the solver matching the calculation target on the inputs.
// The target is always stamped onto the result, including the invalid-target
// fallback. Validation checks run in a fixed order per solver and the first
// failing check wins.
func Calculate(in models.CalculationInputs) models.CalculationResult {
	switch in.CalculationTarget {
	case models.TargetFutureValue:
		return solveFutureValue(in)
	case models.TargetPrincipal:
		return solvePrincipal(in)
	case models.TargetAnnualInterestRate:
		return solveAnnualInterestRate(in)
	case models.TargetTimePeriod:
		return solveTimePeriod(in)
	case models.TargetLoanPayment:
		return solveLoanPayment(in)
	default:
		return errorResult(in.CalculationTarget, ErrInvalidTarget)
	}
}

// errorResult builds a failed result: one error string, target echoed,
// everything else zero.
func errorResult(target models.CalculationTarget, msg string) models.CalculationResult {
	return models.CalculationResult{
		CalculationTarget: target,
		Error:             msg,
	}
}
