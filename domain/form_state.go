package domain

// FormState is everything the calculator screen shows: the raw fields plus
// the last computed result. It is what gets persisted between sessions.
type FormState struct {
	InvestmentForm
	Result        float64 `json:"result"`
	DailyIncome   float64 `json:"dailyIncome"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	YearlyIncome  float64 `json:"yearlyIncome"`
}

// DefaultFormState is the state of a fresh calculator.
func DefaultFormState() FormState {
	return FormState{
		InvestmentForm: InvestmentForm{
			ContributionFrequency: FrequencyMonthly,
			DurationUnit:          UnitYears,
			ContributionTiming:    TimingStart,
		},
	}
}

// WithResult returns a copy of s carrying r as the last result.
func (s FormState) WithResult(r InvestmentResult) FormState {
	s.Result = r.FutureValue
	s.DailyIncome = r.DailyIncome
	s.MonthlyIncome = r.MonthlyIncome
	s.YearlyIncome = r.YearlyIncome
	return s
}
