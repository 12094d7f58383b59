package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compound-interest/domain"
)

func validForm() domain.InvestmentForm {
	return domain.InvestmentForm{
		InitialCapital:        "1000",
		PeriodicContribution:  "100",
		ContributionFrequency: domain.FrequencyMonthly,
		InvestmentDuration:    "10",
		DurationUnit:          domain.UnitYears,
		InterestRate:          "5",
		ContributionTiming:    domain.TimingStart,
	}
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *domain.InvestmentForm)
		want   domain.ValidationErrors
	}{
		{
			name:   "valid form",
			modify: func(f *domain.InvestmentForm) {},
			want:   domain.ValidationErrors{},
		},
		{
			name: "capital and contribution both blank",
			modify: func(f *domain.InvestmentForm) {
				f.InitialCapital = ""
				f.PeriodicContribution = ""
			},
			want: domain.ValidationErrors{
				domain.FieldInitialCapital:       MsgCapitalOrContribution,
				domain.FieldPeriodicContribution: MsgCapitalOrContribution,
			},
		},
		{
			name: "both explicitly zero",
			modify: func(f *domain.InvestmentForm) {
				f.InitialCapital = "0"
				f.PeriodicContribution = "0"
			},
			want: domain.ValidationErrors{},
		},
		{
			name:   "only contribution",
			modify: func(f *domain.InvestmentForm) { f.InitialCapital = "" },
			want:   domain.ValidationErrors{},
		},
		{
			name:   "negative capital",
			modify: func(f *domain.InvestmentForm) { f.InitialCapital = "-1" },
			want:   domain.ValidationErrors{domain.FieldInitialCapital: MsgCapitalNonNegative},
		},
		{
			name:   "unparseable contribution",
			modify: func(f *domain.InvestmentForm) { f.PeriodicContribution = "abc" },
			want:   domain.ValidationErrors{domain.FieldPeriodicContribution: MsgContributionNegative},
		},
		{
			name:   "blank duration",
			modify: func(f *domain.InvestmentForm) { f.InvestmentDuration = "" },
			want:   domain.ValidationErrors{domain.FieldInvestmentDuration: MsgDurationPositive},
		},
		{
			name:   "zero duration",
			modify: func(f *domain.InvestmentForm) { f.InvestmentDuration = "0" },
			want:   domain.ValidationErrors{domain.FieldInvestmentDuration: MsgDurationPositive},
		},
		{
			name:   "zero rate",
			modify: func(f *domain.InvestmentForm) { f.InterestRate = "0" },
			want:   domain.ValidationErrors{domain.FieldInterestRate: MsgRatePositive},
		},
		{
			name:   "negative rate",
			modify: func(f *domain.InvestmentForm) { f.InterestRate = "-3" },
			want:   domain.ValidationErrors{domain.FieldInterestRate: MsgRatePositive},
		},
		{
			name:   "infinite rate",
			modify: func(f *domain.InvestmentForm) { f.InterestRate = "Inf" },
			want:   domain.ValidationErrors{domain.FieldInterestRate: MsgRatePositive},
		},
		{
			name:   "unknown timing",
			modify: func(f *domain.InvestmentForm) { f.ContributionTiming = "middle" },
			want:   domain.ValidationErrors{domain.FieldContributionTiming: MsgInvalidOption},
		},
		{
			name: "blank options take defaults",
			modify: func(f *domain.InvestmentForm) {
				f.ContributionFrequency = ""
				f.DurationUnit = ""
				f.ContributionTiming = ""
			},
			want: domain.ValidationErrors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.modify(&form)
			assert.Equal(t, tt.want, ValidateAll(form))
		})
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		field string
		value string
		want  string
	}{
		{domain.FieldInitialCapital, "", ""},
		{domain.FieldInitialCapital, "0", ""},
		{domain.FieldInitialCapital, "-0.01", MsgNonNegative},
		{domain.FieldPeriodicContribution, "x", MsgNonNegative},
		{domain.FieldInvestmentDuration, "", ""},
		{domain.FieldInvestmentDuration, "0", MsgDurationPositive},
		{domain.FieldInvestmentDuration, "1.5", ""},
		{domain.FieldInterestRate, "0", MsgRatePositive},
		{domain.FieldInterestRate, "3.2", ""},
		{domain.FieldDurationUnit, "weeks", MsgInvalidOption},
		{domain.FieldContributionFrequency, "annual", ""},
		{"somethingElse", "-5", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateField(tt.field, tt.value), "%s=%q", tt.field, tt.value)
	}
}

func TestParseForm_Defaults(t *testing.T) {
	in := ParseForm(domain.InvestmentForm{
		PeriodicContribution: "50",
		InvestmentDuration:   "24",
		InterestRate:         "3.5",
	})

	assert.Equal(t, domain.InvestmentInput{
		InitialCapital:        0,
		PeriodicContribution:  50,
		ContributionFrequency: domain.FrequencyMonthly,
		InvestmentDuration:    24,
		DurationUnit:          domain.UnitYears,
		InterestRate:          3.5,
		ContributionTiming:    domain.TimingStart,
	}, in)
}

func TestCheckInput(t *testing.T) {
	valid := ParseForm(validForm())
	require.NoError(t, CheckInput(valid))

	bad := valid
	bad.InterestRate = 0
	bad.InitialCapital = math.NaN()
	bad.DurationUnit = "weeks"

	err := CheckInput(bad)
	require.Error(t, err)

	var fields domain.ValidationErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, domain.ValidationErrors{
		domain.FieldInterestRate:   MsgRatePositive,
		domain.FieldInitialCapital: MsgCapitalNonNegative,
		domain.FieldDurationUnit:   MsgInvalidOption,
	}, fields)
}

func TestNormalizeNumber(t *testing.T) {
	cases := map[string]string{
		"":       "",
		"0":      "0",
		"007":    "7",
		"000":    "0",
		"00.5":   "0.5",
		" 12 ":   "12",
		"100":    "100",
		"-05":    "-05",
		"1000.0": "1000.0",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeNumber(in), "input %q", in)
	}
}

func TestIsFormField(t *testing.T) {
	assert.True(t, IsFormField(domain.FieldInterestRate))
	assert.True(t, IsFormField(domain.FieldContributionTiming))
	assert.False(t, IsFormField("result"))
}
