package engine

import (
	"math"

	"fincalc/internal/models"
)

// Error messages for the loan payment solver, in check order.
const (
	errLoanAmountNotPositive   = "Loan amount must be greater than zero."
	errLoanRateNegative        = "Loan interest rate cannot be negative."
	errLoanTermNotPositive     = "Loan term must be greater than zero."
	errPayFrequencyNotPositive = "Payment frequency must be greater than zero."
)

// solveLoanPayment computes the periodic payment for an amortizing loan and
// generates the full payment schedule.
//
// The schedule is the one genuinely sequential computation in the engine:
// each row's interest depends on the balance left by the previous row. The
// final row pays off the exact remaining balance so the schedule always ends
// at zero, and the totals are summed from the corrected schedule rather than
// taken as payment × N, which would re-accumulate the float drift the final
// row exists to absorb.
func solveLoanPayment(in models.CalculationInputs) models.CalculationResult {
	switch {
	case in.LoanAmount <= 0:
		return errorResult(in.CalculationTarget, errLoanAmountNotPositive)
	case in.LoanInterestRate < 0:
		return errorResult(in.CalculationTarget, errLoanRateNegative)
	case in.LoanTerm <= 0:
		return errorResult(in.CalculationTarget, errLoanTermNotPositive)
	case in.PaymentFrequency <= 0:
		return errorResult(in.CalculationTarget, errPayFrequencyNotPositive)
	}

	i := in.LoanInterestRate / 100 / float64(in.PaymentFrequency)
	n := int(math.Round(in.LoanTerm * float64(in.PaymentFrequency)))
	if n < 1 {
		n = 1
	}

	var payment float64
	if i == 0 {
		// Zero-interest loans split the principal evenly.
		payment = in.LoanAmount / float64(n)
	} else {
		factor := math.Pow(1+i, float64(n))
		payment = in.LoanAmount * i * factor / (factor - 1)
	}

	schedule := make([]models.AmortizationEntry, 0, n)
	balance := in.LoanAmount

	for p := 1; p <= n; p++ {
		interest := balance * i
		principalPaid := payment - interest
		rowPayment := payment

		if p == n {
			// Pay off exactly what is left, absorbing the drift of the
			// previous n−1 divisions.
			principalPaid = balance
			rowPayment = balance + interest
		}

		starting := balance
		balance -= principalPaid

		schedule = append(schedule, models.AmortizationEntry{
			PaymentNumber:   p,
			Payment:         rowPayment,
			StartingBalance: starting,
			InterestPaid:    interest,
			PrincipalPaid:   principalPaid,
			EndingBalance:   math.Max(0, balance),
		})
	}

	var totalPaid, totalInterest float64
	for _, e := range schedule {
		totalPaid += e.InterestPaid + e.PrincipalPaid
		totalInterest += e.InterestPaid
	}

	return models.CalculationResult{
		CalculationTarget:    in.CalculationTarget,
		Payment:              payment,
		TotalAmountPaid:      totalPaid,
		TotalInterestPaid:    totalInterest,
		AmortizationSchedule: schedule,
	}
}
