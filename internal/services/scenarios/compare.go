package scenarios

import (
	"math"

	"fincalc/internal/models"
)

// Compare builds a side-by-side comparison of two saved scenarios. Diffs
// are B minus A, percent changes are relative to A, and the cheaper
// scenario is the one with the lower total amount paid over the loan life.
func (s *Store) Compare(idA, idB string) (*models.ScenarioComparison, error) {
	a, err := s.Get(idA)
	if err != nil {
		return nil, err
	}
	b, err := s.Get(idB)
	if err != nil {
		return nil, err
	}

	cmp := &models.ScenarioComparison{
		A: summarize(a),
		B: summarize(b),
	}

	cmp.PaymentDiff = cmp.B.Payment - cmp.A.Payment
	cmp.TotalPaidDiff = cmp.B.TotalAmountPaid - cmp.A.TotalAmountPaid
	cmp.TotalInterestDiff = cmp.B.TotalInterestPaid - cmp.A.TotalInterestPaid
	cmp.PaymentChange = percentChange(cmp.B.Payment, cmp.A.Payment)
	cmp.TotalPaidChange = percentChange(cmp.B.TotalAmountPaid, cmp.A.TotalAmountPaid)

	switch {
	case cmp.TotalPaidDiff > 0:
		cmp.CheaperScenarioID = cmp.A.ID
		cmp.Savings = cmp.TotalPaidDiff
	case cmp.TotalPaidDiff < 0:
		cmp.CheaperScenarioID = cmp.B.ID
		cmp.Savings = -cmp.TotalPaidDiff
	}

	return cmp, nil
}

func summarize(sc *models.Scenario) models.ScenarioSummary {
	return models.ScenarioSummary{
		ID:                sc.ID,
		Name:              sc.Name,
		LoanAmount:        sc.Inputs.LoanAmount,
		LoanInterestRate:  sc.Inputs.LoanInterestRate,
		LoanTerm:          sc.Inputs.LoanTerm,
		PaymentFrequency:  sc.Inputs.PaymentFrequency,
		Payment:           sc.Result.Payment,
		TotalAmountPaid:   sc.Result.TotalAmountPaid,
		TotalInterestPaid: sc.Result.TotalInterestPaid,
	}
}

// percentChange returns the change from previous to current as a percent of
// the previous value.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / math.Abs(previous)) * 100
}
