package service

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"compound-interest/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar errores con el nombre JSON del campo
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var enumRules = map[string]string{
	domain.FieldContributionFrequency: "oneof=monthly annual",
	domain.FieldDurationUnit:          "oneof=months years",
	domain.FieldContributionTiming:    "oneof=start end",
}

// parseNumber parses a trimmed text field. Non-finite values do not count
// as numbers.
func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func nonNegative(raw string) bool {
	n, ok := parseNumber(raw)
	return ok && n >= 0
}

func positive(raw string) bool {
	n, ok := parseNumber(raw)
	return ok && n > 0
}

func validOption(field, value string) bool {
	rule, ok := enumRules[field]
	if !ok {
		return true
	}
	return validate.Var(value, rule) == nil
}

// ValidateField checks a single field as it is being edited and returns the
// message to show next to it, or "" when the value is acceptable. Blank
// values are never flagged here: the cross-field rules live in ValidateAll.
func ValidateField(field, value string) string {
	if isBlank(value) {
		return ""
	}

	switch field {
	case domain.FieldInitialCapital, domain.FieldPeriodicContribution:
		if !nonNegative(value) {
			return MsgNonNegative
		}
	case domain.FieldInvestmentDuration:
		if !positive(value) {
			return MsgDurationPositive
		}
	case domain.FieldInterestRate:
		if !positive(value) {
			return MsgRatePositive
		}
	case domain.FieldContributionFrequency, domain.FieldDurationUnit, domain.FieldContributionTiming:
		if !validOption(field, strings.TrimSpace(value)) {
			return MsgInvalidOption
		}
	}
	return ""
}

// ValidateAll runs every rule, including the "capital or contribution" one,
// and returns the errors keyed by field. An empty map means the form can be
// calculated.
func ValidateAll(form domain.InvestmentForm) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if isBlank(form.InitialCapital) && isBlank(form.PeriodicContribution) {
		errs[domain.FieldInitialCapital] = MsgCapitalOrContribution
		errs[domain.FieldPeriodicContribution] = MsgCapitalOrContribution
	} else {
		if !isBlank(form.InitialCapital) && !nonNegative(form.InitialCapital) {
			errs[domain.FieldInitialCapital] = MsgCapitalNonNegative
		}
		if !isBlank(form.PeriodicContribution) && !nonNegative(form.PeriodicContribution) {
			errs[domain.FieldPeriodicContribution] = MsgContributionNegative
		}
	}

	if !positive(form.InvestmentDuration) {
		errs[domain.FieldInvestmentDuration] = MsgDurationPositive
	}
	if !positive(form.InterestRate) {
		errs[domain.FieldInterestRate] = MsgRatePositive
	}

	// Las opciones vacías toman el valor por defecto
	options := map[string]string{
		domain.FieldContributionFrequency: string(form.ContributionFrequency),
		domain.FieldDurationUnit:          string(form.DurationUnit),
		domain.FieldContributionTiming:    string(form.ContributionTiming),
	}
	for field, value := range options {
		if value != "" && !validOption(field, value) {
			errs[field] = MsgInvalidOption
		}
	}

	return errs
}

// ParseForm converts a form that passed ValidateAll into engine input.
// Blank amounts become 0 and blank options take the calculator defaults.
func ParseForm(form domain.InvestmentForm) domain.InvestmentInput {
	defaults := domain.DefaultFormState()

	in := domain.InvestmentInput{
		ContributionFrequency: form.ContributionFrequency,
		DurationUnit:          form.DurationUnit,
		ContributionTiming:    form.ContributionTiming,
	}
	in.InitialCapital, _ = parseNumber(form.InitialCapital)
	in.PeriodicContribution, _ = parseNumber(form.PeriodicContribution)
	in.InvestmentDuration, _ = parseNumber(form.InvestmentDuration)
	in.InterestRate, _ = parseNumber(form.InterestRate)

	if in.ContributionFrequency == "" {
		in.ContributionFrequency = defaults.ContributionFrequency
	}
	if in.DurationUnit == "" {
		in.DurationUnit = defaults.DurationUnit
	}
	if in.ContributionTiming == "" {
		in.ContributionTiming = defaults.ContributionTiming
	}
	return in
}

var inputMessages = map[string]string{
	domain.FieldInitialCapital:        MsgCapitalNonNegative,
	domain.FieldPeriodicContribution:  MsgContributionNegative,
	domain.FieldInvestmentDuration:    MsgDurationPositive,
	domain.FieldInterestRate:          MsgRatePositive,
	domain.FieldContributionFrequency: MsgInvalidOption,
	domain.FieldDurationUnit:          MsgInvalidOption,
	domain.FieldContributionTiming:    MsgInvalidOption,
}

// CheckInput verifies the numeric contract Compute relies on. It returns
// domain.ValidationErrors, or nil when in can be computed.
func CheckInput(in domain.InvestmentInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := domain.ValidationErrors{}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = inputMessages[fe.Field()]
	}
	return errs
}

// IsFormField reports whether name is one of the calculator's fields.
func IsFormField(name string) bool {
	_, ok := inputMessages[name]
	return ok
}
