package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"robotaxi-economics/config"
	"robotaxi-economics/domain"
	"robotaxi-economics/service"
)

var (
	presetName string
	overrides  []string
	asJSON     bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Print the monthly cash flow for a preset",
	RunE:  runEvaluate,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Print the utilization x price heatmap for a preset",
	RunE:  runSweep,
}

func init() {
	for _, c := range []*cobra.Command{evaluateCmd, sweepCmd} {
		c.Flags().StringVarP(&presetName, "preset", "p", "baseline", "preset to start from")
		c.Flags().StringArrayVar(&overrides, "set", nil, "override a field, e.g. --set price_per_mile=1.8")
		c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	}
}

// applyOverrides parses field=value pairs onto a.
func applyOverrides(a domain.AssumptionSet, pairs []string) (domain.AssumptionSet, error) {
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return a, fmt.Errorf("override %q must look like field=value", pair)
		}
		field, err := domain.ParseField(strings.TrimSpace(name))
		if err != nil {
			return a, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return a, fmt.Errorf("override %q: %w", pair, err)
		}
		if a, err = a.With(field, v); err != nil {
			return a, err
		}
	}
	return a, nil
}

func loadAssumptions() (domain.AssumptionSet, *service.EconomicsService, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return domain.AssumptionSet{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	economics := service.NewEconomicsService(service.NewLoanService())
	presets, err := newPresetService(cfg, economics)
	if err != nil {
		return domain.AssumptionSet{}, nil, err
	}

	a, err := presets.Get(presetName)
	if err != nil {
		return domain.AssumptionSet{}, nil, err
	}
	a, err = applyOverrides(a, overrides)
	return a, economics, err
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	a, economics, err := loadAssumptions()
	if err != nil {
		return err
	}

	r, err := economics.Evaluate(a)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return printEvaluation(out, a, r)
}

func printEvaluation(out io.Writer, a domain.AssumptionSet, r domain.CashFlowResult) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Paid miles / month\t%.1f\t\n", r.PaidMilesPerMonth)
	fmt.Fprintf(tw, "Total miles / month\t%.1f\t\n", r.TotalMilesPerMonth)
	fmt.Fprintf(tw, "Deadhead miles / month\t%.1f\t\n", r.DeadheadMilesPerMonth)
	for _, step := range service.Waterfall(r) {
		fmt.Fprintf(tw, "%s\t%.2f\t\n", step.Category, step.Value)
	}
	fmt.Fprintf(tw, "Annual cash flow / car\t%.2f\t\n", r.AnnualCashFlowPerCar)
	if a.NumVehicles > 1 {
		fmt.Fprintf(tw, "Fleet cash flow / month (%d cars)\t%.2f\t\n", a.NumVehicles, r.Fleet.CashFlow)
	}
	return tw.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	a, economics, err := loadAssumptions()
	if err != nil {
		return err
	}

	x, y := service.DefaultAxes()
	grid, err := service.NewSensitivityService(economics).Sweep2D(a, x.Values, y.Values, x.Field, y.Field)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return json.NewEncoder(out).Encode(grid)
	}
	return printGrid(out, grid)
}

func printGrid(out io.Writer, grid domain.Grid) error {
	tw := tabwriter.NewWriter(out, 0, 0, 1, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%s \\ %s\t", grid.Y.Field, grid.X.Field)
	for _, x := range grid.X.Values {
		fmt.Fprintf(tw, "%.2f\t", x)
	}
	fmt.Fprintln(tw)

	for i, row := range grid.Cells {
		fmt.Fprintf(tw, "%.0f\t", grid.Y.Values[i])
		for _, cell := range row {
			fmt.Fprintf(tw, "%.0f\t", cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
