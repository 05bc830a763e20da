package engine

import (
	"math"

	"fincalc/internal/models"
)

// Error messages for the future value solver, in check order.
const (
	errPrincipalNotPositive = "Principal must be greater than zero."
	errRateNegative         = "Annual interest rate cannot be negative."
	errTimeNotPositive      = "Time period must be greater than zero."
	errFrequencyNotPositive = "Compounding frequency must be greater than zero."
	errInflationNegative    = "Inflation rate cannot be negative."
)

// solveFutureValue computes FV = P·(1 + r/n)^(n·t), plus a per-year growth
// series and, when an inflation rate is supplied, the inflation-adjusted
// future value.
func solveFutureValue(in models.CalculationInputs) models.CalculationResult {
	switch {
	case in.Principal <= 0:
		return errorResult(in.CalculationTarget, errPrincipalNotPositive)
	case in.AnnualInterestRate < 0:
		return errorResult(in.CalculationTarget, errRateNegative)
	case in.TimePeriod <= 0:
		return errorResult(in.CalculationTarget, errTimeNotPositive)
	case in.CompoundingFrequency <= 0:
		return errorResult(in.CalculationTarget, errFrequencyNotPositive)
	case in.InflationRate != nil && *in.InflationRate < 0:
		return errorResult(in.CalculationTarget, errInflationNegative)
	}

	r := in.AnnualInterestRate / 100
	n := float64(in.CompoundingFrequency)
	t := in.TimePeriod

	res := models.CalculationResult{CalculationTarget: in.CalculationTarget}
	res.FutureValue = in.Principal * math.Pow(1+r/n, n*t)

	if in.InflationRate != nil {
		// Inflation deflates on an annual basis regardless of the
		// investment's own compounding frequency. The asymmetry with the
		// nominal calculation is intentional.
		real := res.FutureValue / math.Pow(1+*in.InflationRate/100, t)
		res.RealFutureValue = &real
	}

	// One point per whole year. Each value is computed independently from
	// the principal rather than compounded from the previous point, so no
	// float error accumulates across the series. A fractional final year is
	// truncated, matching the whole-year cadence of the series.
	growth := make([]models.GrowthPoint, 0, int(t))
	for year := 1; float64(year) <= t; year++ {
		growth = append(growth, models.GrowthPoint{
			Year:  year,
			Value: in.Principal * math.Pow(1+r/n, n*float64(year)),
		})
	}
	res.GrowthData = growth

	return res
}
