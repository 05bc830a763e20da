package models

import "time"

// Scenario is a saved loan calculation: the inputs that produced it plus the
// full result, snapshotted under a user-supplied name for later side-by-side
// comparison. Only loan_payment results are saved.
type Scenario struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"created_at"`
	Inputs    CalculationInputs `json:"inputs"`
	Result    CalculationResult `json:"result"`
}

// ScenarioSummary is the comparison-relevant slice of a saved scenario.
type ScenarioSummary struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	LoanAmount        float64          `json:"loan_amount"`
	LoanInterestRate  float64          `json:"loan_interest_rate"`
	LoanTerm          float64          `json:"loan_term"`
	PaymentFrequency  PaymentFrequency `json:"payment_frequency"`
	Payment           float64          `json:"payment"`
	TotalAmountPaid   float64          `json:"total_amount_paid"`
	TotalInterestPaid float64          `json:"total_interest_paid"`
}

// ScenarioComparison holds a side-by-side comparison of two saved scenarios.
// Diffs are B minus A; percent changes are relative to A. CheaperScenarioID
// identifies the scenario with the lower total amount paid over the loan
// life, and is empty when the totals are equal.
type ScenarioComparison struct {
	A ScenarioSummary `json:"a"`
	B ScenarioSummary `json:"b"`

	PaymentDiff       float64 `json:"payment_diff"`
	TotalPaidDiff     float64 `json:"total_paid_diff"`
	TotalInterestDiff float64 `json:"total_interest_diff"`

	PaymentChange   float64 `json:"payment_change_percent"`
	TotalPaidChange float64 `json:"total_paid_change_percent"`

	CheaperScenarioID string  `json:"cheaper_scenario_id,omitempty"`
	Savings           float64 `json:"savings"`
}
