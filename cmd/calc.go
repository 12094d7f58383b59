package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"compound-interest/config"
	"compound-interest/domain"
	"compound-interest/repository"
	"compound-interest/service"
)

type calcOutput struct {
	Result    domain.InvestmentResult `json:"result" yaml:"result"`
	Formatted domain.FormattedResult  `json:"formatted" yaml:"formatted"`
}

func newCalcCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		form   domain.InvestmentForm
		freq   string
		unit   string
		timing string
		output string
	)

	c := &cobra.Command{
		Use:   "calc",
		Short: "Calcula el valor futuro y el ingreso pasivo estimado",
		Long: `Calcula el valor futuro de una inversión.

Ejemplos:
  compound-interest calc --capital 1000 --rate 12 --duration 12
  compound-interest calc --contribution 100 --rate 6 --duration 1 --timing end
  compound-interest calc --capital 500 --contribution 1200 --frequency annual -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			form.ContributionFrequency = domain.ContributionFrequency(freq)
			form.DurationUnit = domain.DurationUnit(unit)
			form.ContributionTiming = domain.ContributionTiming(timing)
			return runCalc(c.Context(), c.OutOrStdout(), c.ErrOrStderr(), form, output, cfg.Display.CurrencySymbol)
		},
	}

	f := c.Flags()
	f.StringVar(&form.InitialCapital, "capital", "", "Capital inicial")
	f.StringVar(&form.PeriodicContribution, "contribution", "", "Aporte periódico")
	f.StringVar(&freq, "frequency", string(domain.FrequencyMonthly), "Frecuencia de aportes (monthly, annual)")
	f.StringVar(&form.InvestmentDuration, "duration", "", "Duración de la inversión")
	f.StringVar(&unit, "unit", string(domain.UnitYears), "Unidad de la duración (months, years)")
	f.StringVarP(&form.InterestRate, "rate", "r", "", "Tasa de interés anual en %")
	f.StringVar(&timing, "timing", string(domain.TimingStart), "Momento de los aportes (start, end)")
	f.StringVarP(&output, "output", "o", "text", "Formato de salida (text, json, yaml)")

	return c
}

func runCalc(
	ctx context.Context,
	stdout, stderr io.Writer,
	form domain.InvestmentForm,
	output, symbol string,
) error {
	if output != "text" && output != "json" && output != "yaml" {
		return fmt.Errorf("formato de salida desconocido: %q", output)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	svc := service.NewInterestService(
		repository.NewCalculationRepositoryMemory(),
		repository.NewFormStateStore(repository.NewMemoryCache(), ""),
	)

	result, err := svc.Calculate(ctx, form)
	if err != nil {
		var refusal *service.RefusalError
		if errors.As(err, &refusal) {
			printFieldErrors(stderr, refusal.Fields)
		}
		return err
	}

	out := calcOutput{Result: result, Formatted: service.FormatResult(result, symbol)}
	switch output {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(stdout, "Valor futuro:     %s\n", out.Formatted.FutureValue)
	fmt.Fprintln(stdout, "Ingresos estimados")
	fmt.Fprintf(stdout, "  Diario:         %s\n", out.Formatted.DailyIncome)
	fmt.Fprintf(stdout, "  Mensual:        %s\n", out.Formatted.MonthlyIncome)
	fmt.Fprintf(stdout, "  Anual:          %s\n", out.Formatted.YearlyIncome)
	return nil
}

func printFieldErrors(w io.Writer, errs domain.ValidationErrors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(w, "  %s: %s\n", field, errs[field])
	}
}
