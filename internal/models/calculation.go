package models

// CalculationTarget selects which solver runs and which input fields are
// semantically meaningful for a calculation.
type CalculationTarget string

const (
	TargetFutureValue        CalculationTarget = "future_value"
	TargetPrincipal          CalculationTarget = "principal"
	TargetAnnualInterestRate CalculationTarget = "annual_interest_rate"
	TargetTimePeriod         CalculationTarget = "time_period"
	TargetLoanPayment        CalculationTarget = "loan_payment"
)

// Valid reports whether the target is one of the five known calculations.
func (t CalculationTarget) Valid() bool {
	switch t {
	case TargetFutureValue, TargetPrincipal, TargetAnnualInterestRate,
		TargetTimePeriod, TargetLoanPayment:
		return true
	}
	return false
}

// CompoundingFrequency is the number of compounding events per year for the
// four investment calculations: 1, 2, 4, 12 or 365.
type CompoundingFrequency int

const (
	CompoundAnnually     CompoundingFrequency = 1
	CompoundSemiAnnually CompoundingFrequency = 2
	CompoundQuarterly    CompoundingFrequency = 4
	CompoundMonthly      CompoundingFrequency = 12
	CompoundDaily        CompoundingFrequency = 365
)

// PaymentFrequency is the number of loan payments per year: 1, 2, 4, 12, 26
// or 52. It governs the amortization period count, not compounding, so it is
// a distinct type from CompoundingFrequency even though values overlap.
type PaymentFrequency int

const (
	PayAnnually     PaymentFrequency = 1
	PaySemiAnnually PaymentFrequency = 2
	PayQuarterly    PaymentFrequency = 4
	PayMonthly      PaymentFrequency = 12
	PayBiweekly     PaymentFrequency = 26
	PayWeekly       PaymentFrequency = 52
)

// CalculationInputs carries the calculation target plus the subset of fields
// that target requires. Rates are percentages (5.0 means 5%), time and term
// are years. Each solver validates its own required fields, so a missing
// field fails the matching check instead of producing NaN downstream.
type CalculationInputs struct {
	CalculationTarget CalculationTarget `json:"calculation_target"`

	// Investment fields
	Principal            float64              `json:"principal,omitempty"`
	FutureValue          float64              `json:"future_value,omitempty"`
	AnnualInterestRate   float64              `json:"annual_interest_rate,omitempty"`
	TimePeriod           float64              `json:"time_period,omitempty"`
	CompoundingFrequency CompoundingFrequency `json:"compounding_frequency,omitempty"`
	InflationRate        *float64             `json:"inflation_rate,omitempty"`

	// Loan fields
	LoanAmount       float64          `json:"loan_amount,omitempty"`
	LoanInterestRate float64          `json:"loan_interest_rate,omitempty"`
	LoanTerm         float64          `json:"loan_term,omitempty"`
	PaymentFrequency PaymentFrequency `json:"payment_frequency,omitempty"`
}

// GrowthPoint is one whole-year sample of an investment's nominal value.
type GrowthPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// AmortizationEntry is one payment line of a loan schedule.
//
// Per entry: InterestPaid = StartingBalance × periodic rate, and
// EndingBalance = max(0, StartingBalance − PrincipalPaid). The final entry's
// EndingBalance is exactly zero.
type AmortizationEntry struct {
	PaymentNumber   int     `json:"payment_number"`
	Payment         float64 `json:"payment"`
	StartingBalance float64 `json:"starting_balance"`
	InterestPaid    float64 `json:"interest_paid"`
	PrincipalPaid   float64 `json:"principal_paid"`
	EndingBalance   float64 `json:"ending_balance"`
}

// CalculationResult is the outcome of one solver call. Each target populates
// exactly its own field set; Error is mutually exclusive with any computed
// value, and the target is always echoed back, error or not. Results are
// built once by a solver and never mutated afterwards.
type CalculationResult struct {
	CalculationTarget CalculationTarget `json:"calculation_target"`

	// future_value
	FutureValue     float64       `json:"future_value,omitempty"`
	RealFutureValue *float64      `json:"real_future_value,omitempty"`
	GrowthData      []GrowthPoint `json:"growth_data,omitempty"`

	// principal
	Principal float64 `json:"principal,omitempty"`

	// annual_interest_rate (percent)
	AnnualInterestRate float64 `json:"annual_interest_rate,omitempty"`

	// time_period (years)
	TimePeriod float64 `json:"time_period,omitempty"`

	// loan_payment
	Payment              float64             `json:"payment,omitempty"`
	TotalAmountPaid      float64             `json:"total_amount_paid,omitempty"`
	TotalInterestPaid    float64             `json:"total_interest_paid,omitempty"`
	AmortizationSchedule []AmortizationEntry `json:"amortization_schedule,omitempty"`

	Error string `json:"error,omitempty"`
}

// HasError reports whether the calculation failed domain validation.
func (r *CalculationResult) HasError() bool {
	return r.Error != ""
}
