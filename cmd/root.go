// Package cmd implements the compound-interest command line: a one-shot
// calculator and the HTTP API server.
package cmd

import (
	"github.com/spf13/cobra"

	"compound-interest/config"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "compound-interest",
		Short: "Calculadora de interés compuesto",
		Long: `Calcula el valor futuro de una inversión con capitalización mensual y
aportes periódicos opcionales, y estima el ingreso pasivo que genera.

Comandos:
  calc   - calcula un escenario y muestra el resultado
  serve  - expone la calculadora como API HTTP`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Archivo de configuración YAML (opcional)")

	load := func() (*config.Config, error) { return config.Load(cfgFile) }
	root.AddCommand(newCalcCmd(load), newServeCmd(load))
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
