package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taxdoc/india-tax-calculator/internal/calculation"
	"github.com/taxdoc/india-tax-calculator/internal/config"
	"github.com/taxdoc/india-tax-calculator/internal/output"
)

var (
	inputFile    string
	outputFormat string
	outputFile   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "taxdoc",
	Short: "Indian tax and statutory penalty calculator",
	Long: `taxdoc computes Indian income-tax regime comparisons, GST and TDS
late-filing penalties, rent agreement stamp duty, and invoice GST totals
from a YAML request file.`,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the calculations described in a request file",
	RunE:  runCalculate,
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a starter request file",
	RunE:  runExample,
}

func init() {
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "request file (YAML)")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "console",
		fmt.Sprintf("output format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	calculateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write report to a timestamped file instead of stdout")
	calculateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log calculation steps")
	_ = calculateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(exampleCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	request, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load request: %w", err)
	}

	engine := calculation.NewCalculationEngine()
	if verbose {
		engine.Logger = stderrLogger{}
	}

	report, err := engine.Run(request)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	formatter := output.GetFormatterByName(outputFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s; aliases: %s)",
			outputFormat,
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", "))
	}

	if outputFile != "" {
		ext := formatter.Name()
		if ext == "console" {
			ext = "txt"
		}
		name, err := output.WriteFormatted(formatter, report, ext)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runExample(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	data, err := yaml.Marshal(parser.CreateExampleRequest())
	if err != nil {
		return fmt.Errorf("failed to render example: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// stderrLogger satisfies calculation.Logger for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) logf(level, format string, args ...any) {
	prefix := fmt.Sprintf("[%s] %s ", time.Now().Format("15:04:05"), level)
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}

func (l stderrLogger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l stderrLogger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l stderrLogger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l stderrLogger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
