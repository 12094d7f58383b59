package domain

type ContributionFrequency string

const (
	FrequencyMonthly ContributionFrequency = "monthly"
	FrequencyAnnual  ContributionFrequency = "annual"
)

type DurationUnit string

const (
	UnitMonths DurationUnit = "months"
	UnitYears  DurationUnit = "years"
)

// ContributionTiming says whether each period's contribution is deposited
// before (start) or after (end) that period's growth is applied.
type ContributionTiming string

const (
	TimingStart ContributionTiming = "start"
	TimingEnd   ContributionTiming = "end"
)

// Field names used as keys in ValidationErrors and as JSON names.
const (
	FieldInitialCapital        = "initialCapital"
	FieldPeriodicContribution  = "periodicContribution"
	FieldContributionFrequency = "contributionFrequency"
	FieldInvestmentDuration    = "investmentDuration"
	FieldDurationUnit          = "durationUnit"
	FieldInterestRate          = "interestRate"
	FieldContributionTiming    = "contributionTiming"
)

// InvestmentForm holds the calculator fields exactly as the user typed them.
type InvestmentForm struct {
	InitialCapital        string                `json:"initialCapital" yaml:"initialCapital"`
	PeriodicContribution  string                `json:"periodicContribution" yaml:"periodicContribution"`
	ContributionFrequency ContributionFrequency `json:"contributionFrequency" yaml:"contributionFrequency"`
	InvestmentDuration    string                `json:"investmentDuration" yaml:"investmentDuration"`
	DurationUnit          DurationUnit          `json:"durationUnit" yaml:"durationUnit"`
	InterestRate          string                `json:"interestRate" yaml:"interestRate"`
	ContributionTiming    ContributionTiming    `json:"contributionTiming" yaml:"contributionTiming"`
}

// InvestmentInput is the parsed, validated form the engine works on.
type InvestmentInput struct {
	InitialCapital        float64               `json:"initialCapital" validate:"gte=0"`
	PeriodicContribution  float64               `json:"periodicContribution" validate:"gte=0"`
	ContributionFrequency ContributionFrequency `json:"contributionFrequency" validate:"oneof=monthly annual"`
	InvestmentDuration    float64               `json:"investmentDuration" validate:"gt=0"`
	DurationUnit          DurationUnit          `json:"durationUnit" validate:"oneof=months years"`
	InterestRate          float64               `json:"interestRate" validate:"gt=0"`
	ContributionTiming    ContributionTiming    `json:"contributionTiming" validate:"oneof=start end"`
}

type InvestmentResult struct {
	FutureValue   float64 `json:"futureValue" yaml:"futureValue"`
	DailyIncome   float64 `json:"dailyIncome" yaml:"dailyIncome"`
	MonthlyIncome float64 `json:"monthlyIncome" yaml:"monthlyIncome"`
	YearlyIncome  float64 `json:"yearlyIncome" yaml:"yearlyIncome"`
}

// FormattedResult is InvestmentResult rendered for display, 2 decimals with
// a currency prefix.
type FormattedResult struct {
	FutureValue   string `json:"futureValue" yaml:"futureValue"`
	DailyIncome   string `json:"dailyIncome" yaml:"dailyIncome"`
	MonthlyIncome string `json:"monthlyIncome" yaml:"monthlyIncome"`
	YearlyIncome  string `json:"yearlyIncome" yaml:"yearlyIncome"`
}
