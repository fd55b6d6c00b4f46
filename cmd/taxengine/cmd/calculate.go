package cmd

import (
	"fmt"
	"os"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/calculation"
	"github.com/camayank/jorss-gbo-taai-sub004/internal/config"
	"github.com/camayank/jorss-gbo-taai-sub004/internal/output"
	"github.com/camayank/jorss-gbo-taai-sub004/internal/snapshot"
	"github.com/spf13/cobra"
)

var (
	inputFile string
	format    string
)

// calculateCmd runs the engine over one input file.
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate federal tax from a YAML tax return file",
	Long: `Calculate parses a tax return input file, runs the full federal
calculation, and prints the breakdown.

Identical inputs always produce identical results; results are memoized
by a content hash of the input.`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to the YAML tax return file (required)")
	calculateCmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console or json")
	calculateCmd.MarkFlagRequired("input")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	log.Debugf("loading tax return from %s", inputFile)

	parser := config.NewInputParser()
	ret, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return err
	}

	engine := calculation.NewFederalTaxEngine()
	engine.SetLogger(log)

	cache := snapshot.NewCache()
	bd, err := cache.GetOrCompute(ret, engine.Calculate)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	out, err := output.NewFormatter(format).Format(bd)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
