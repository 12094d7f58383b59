package service

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"compound-interest/domain"
)

// go-money formats cents held in an int64.
var maxCents = decimal.NewFromInt(math.MaxInt64)

// FormatAmount rounds v to cents and renders it behind the currency symbol,
// without thousands separators: 4190.6155 -> "$4190.62".
func FormatAmount(v float64, symbol string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return symbol + strconv.FormatFloat(v, 'f', -1, 64)
	}

	cents := decimal.NewFromFloat(v).Round(2).Shift(2)
	if cents.Abs().GreaterThanOrEqual(maxCents) {
		amount := cents.Shift(-2)
		if amount.IsNegative() {
			return "-" + symbol + amount.Neg().StringFixed(2)
		}
		return symbol + amount.StringFixed(2)
	}
	return money.NewFormatter(2, ".", "", symbol, "$1").Format(cents.IntPart())
}

func FormatResult(r domain.InvestmentResult, symbol string) domain.FormattedResult {
	return domain.FormattedResult{
		FutureValue:   FormatAmount(r.FutureValue, symbol),
		DailyIncome:   FormatAmount(r.DailyIncome, symbol),
		MonthlyIncome: FormatAmount(r.MonthlyIncome, symbol),
		YearlyIncome:  FormatAmount(r.YearlyIncome, symbol),
	}
}

// CopyText is the future value as copied to the clipboard: 2 decimals, no symbol.
func CopyText(r domain.InvestmentResult) string {
	if math.IsNaN(r.FutureValue) || math.IsInf(r.FutureValue, 0) {
		return strconv.FormatFloat(r.FutureValue, 'f', -1, 64)
	}
	return decimal.NewFromFloat(r.FutureValue).StringFixed(2)
}
