package service

import (
	"math"

	"compound-interest/domain"
)

// PeriodicRate converts a nominal annual percentage into the monthly rate.
func PeriodicRate(annualRate float64) float64 {
	return annualRate / 100 / MonthsPerYear
}

// Periods normalizes a duration to a number of monthly periods.
func Periods(duration float64, unit domain.DurationUnit) float64 {
	if unit == domain.UnitYears {
		return duration * MonthsPerYear
	}
	return duration
}

// MonthlyContribution normalizes a contribution amount to a monthly one.
func MonthlyContribution(amount float64, freq domain.ContributionFrequency) float64 {
	if freq == domain.FrequencyAnnual {
		return amount / MonthsPerYear
	}
	return amount
}

// AnnuityOrdinary is the future value of equal payments deposited at the end
// of each period. rate must be non-zero.
func AnnuityOrdinary(contribution, rate, periods float64) float64 {
	return contribution * ((math.Pow(1+rate, periods) - 1) / rate)
}

// AnnuityDue is AnnuityOrdinary with every payment earning one more period.
func AnnuityDue(contribution, rate, periods float64) float64 {
	return AnnuityOrdinary(contribution, rate, periods) * (1 + rate)
}

// Compute returns the future value of in and the passive income it yields.
//
// in must have passed validation: a non-positive interest rate is a
// programming error and panics. Compute has no side effects and is safe for
// concurrent use.
func Compute(in domain.InvestmentInput) domain.InvestmentResult {
	rate := PeriodicRate(in.InterestRate)
	if !(rate > 0) {
		panic("service: Compute called with a non-positive interest rate")
	}
	periods := Periods(in.InvestmentDuration, in.DurationUnit)
	contribution := MonthlyContribution(in.PeriodicContribution, in.ContributionFrequency)

	futureValue := in.InitialCapital * math.Pow(1+rate, periods)

	if contribution > 0 {
		if in.ContributionTiming == domain.TimingStart {
			futureValue += AnnuityDue(contribution, rate, periods)
		} else {
			futureValue += AnnuityOrdinary(contribution, rate, periods)
		}
	}

	// Ingresos derivados del saldo final, no de los aportes
	monthly := futureValue * rate
	yearly := monthly * MonthsPerYear

	return domain.InvestmentResult{
		FutureValue:   futureValue,
		DailyIncome:   yearly / DaysPerYear,
		MonthlyIncome: monthly,
		YearlyIncome:  yearly,
	}
}
