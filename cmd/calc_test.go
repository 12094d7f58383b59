package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"compound-interest/domain"
	"compound-interest/service"
)

func capitalOnlyForm() domain.InvestmentForm {
	return domain.InvestmentForm{
		InitialCapital:     "1000",
		InvestmentDuration: "12",
		DurationUnit:       domain.UnitYears,
		InterestRate:       "12",
		ContributionTiming: domain.TimingStart,
	}
}

func TestRunCalc_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := runCalc(context.Background(), &stdout, &stderr, capitalOnlyForm(), "text", "$")

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "Valor futuro:     $4190.62")
	assert.Contains(t, out, "Diario:         $1.38")
	assert.Contains(t, out, "Mensual:        $41.91")
	assert.Contains(t, out, "Anual:          $502.87")
	assert.Empty(t, stderr.String())
}

func TestRunCalc_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, runCalc(context.Background(), &stdout, &stderr, capitalOnlyForm(), "json", "$"))

	var out calcOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.InDelta(t, 4190.62, out.Result.FutureValue, 0.005)
	assert.Equal(t, "$4190.62", out.Formatted.FutureValue)
}

func TestRunCalc_YAML(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, runCalc(context.Background(), &stdout, &stderr, capitalOnlyForm(), "yaml", "€"))

	var out calcOutput
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "€41.91", out.Formatted.MonthlyIncome)
}

func TestRunCalc_Refused(t *testing.T) {
	var stdout, stderr bytes.Buffer
	form := capitalOnlyForm()
	form.InterestRate = "0"

	err := runCalc(context.Background(), &stdout, &stderr, form, "text", "$")

	require.ErrorIs(t, err, service.ErrValidation)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "interestRate: "+service.MsgRatePositive)
}

func TestRunCalc_UnknownOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCalc(context.Background(), &stdout, &stderr, capitalOnlyForm(), "xml", "$")
	assert.Error(t, err)
}

func TestCalcCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("display:\n  currency_symbol: \"USD \"\n"), 0o600))

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"--config", cfgPath,
		"calc",
		"--contribution", "100",
		"--duration", "1",
		"--rate", "6",
		"--timing", "end",
	})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "USD 1233.56")
}

func TestCalcCommand_BadFlagValue(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	root.SetArgs([]string{"calc", "--capital", "-5", "--duration", "1", "--rate", "3", "--unit", "weeks"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "durationUnit: "+service.MsgInvalidOption)
	assert.Contains(t, stderr.String(), "initialCapital: "+service.MsgCapitalNonNegative)
}

func TestRunCalc_ResultOutOfRange(t *testing.T) {
	var stdout, stderr bytes.Buffer
	form := capitalOnlyForm()
	form.InvestmentDuration = "1000"
	form.InterestRate = "1000"

	err := runCalc(context.Background(), &stdout, &stderr, form, "text", "$")

	require.ErrorIs(t, err, service.ErrResultOutOfRange)
	assert.Empty(t, stdout.String())
}
