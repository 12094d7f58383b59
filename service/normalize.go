package service

import (
	"regexp"
	"strings"

	"compound-interest/domain"
)

var leadingZeros = regexp.MustCompile(`^0+(\d)`)

// NormalizeNumber trims a numeric text field and drops redundant leading
// zeros ("007" -> "7", "00.5" -> "0.5"). A lone "0" is kept.
func NormalizeNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	return leadingZeros.ReplaceAllString(raw, "${1}")
}

func NormalizeForm(form domain.InvestmentForm) domain.InvestmentForm {
	form.InitialCapital = NormalizeNumber(form.InitialCapital)
	form.PeriodicContribution = NormalizeNumber(form.PeriodicContribution)
	form.InvestmentDuration = NormalizeNumber(form.InvestmentDuration)
	form.InterestRate = NormalizeNumber(form.InterestRate)
	return form
}
