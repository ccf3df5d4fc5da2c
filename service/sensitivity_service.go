package service

import (
	"fmt"

	"robotaxi-economics/domain"
)

// SensitivityService sweeps the calculator over one or two varying fields.
// Every cell is an independent evaluation; nothing is cached.
//
// Sweeps fail fast: the first cell the calculator rejects aborts the sweep
// with a *CellError and no partial grid is returned.
type SensitivityService struct {
	economics *EconomicsService
}

func NewSensitivityService(economics *EconomicsService) *SensitivityService {
	return &SensitivityService{economics: economics}
}

// DefaultAxes returns the utilization (rows) and price-per-mile (columns)
// axes used by the dashboard heatmap.
func DefaultAxes() (x, y domain.Axis) {
	x = domain.Axis{Field: domain.FieldPricePerMile, Values: steps(1.00, 0.10, 11)}
	y = domain.Axis{Field: domain.FieldPaidUtilizationPct, Values: steps(30, 10, 7)}
	return x, y
}

func steps(start, step float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values
}

func validateAxis(field domain.Field, values []float64) error {
	if _, err := domain.ParseField(string(field)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSweep, err)
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: axis %s has no values", ErrInvalidSweep, field)
	}
	if len(values) > MaxSweepAxisLength {
		return fmt.Errorf("%w: axis %s exceeds %d values", ErrInvalidSweep, field, MaxSweepAxisLength)
	}
	return nil
}

// Sweep2D evaluates monthly cash flow per car for every (x, y) pair.
// Rows follow yValues and columns follow xValues.
func (s *SensitivityService) Sweep2D(
	base domain.AssumptionSet,
	xValues, yValues []float64,
	xField, yField domain.Field,
) (domain.Grid, error) {

	if err := validateAxis(xField, xValues); err != nil {
		return domain.Grid{}, err
	}
	if err := validateAxis(yField, yValues); err != nil {
		return domain.Grid{}, err
	}
	if xField == yField {
		return domain.Grid{}, fmt.Errorf("%w: both axes sweep %s", ErrInvalidSweep, xField)
	}

	cells := make([][]float64, len(yValues))
	for i, y := range yValues {
		row := make([]float64, len(xValues))
		for j, x := range xValues {
			cf, err := s.cell(base, xField, x, yField, y)
			if err != nil {
				return domain.Grid{}, &CellError{Row: i, Col: j, X: x, Y: y, Err: err}
			}
			row[j] = cf
		}
		cells[i] = row
	}

	return domain.Grid{
		X:     domain.Axis{Field: xField, Values: append([]float64(nil), xValues...)},
		Y:     domain.Axis{Field: yField, Values: append([]float64(nil), yValues...)},
		Cells: cells,
	}, nil
}

func (s *SensitivityService) cell(
	base domain.AssumptionSet,
	xField domain.Field, x float64,
	yField domain.Field, y float64,
) (float64, error) {
	a, err := base.With(xField, x)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAssumption, err)
	}
	a, err = a.With(yField, y)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAssumption, err)
	}

	result, err := s.economics.Evaluate(a)
	if err != nil {
		return 0, err
	}
	return result.CashFlowPerCar, nil
}

// Sweep1D evaluates monthly cash flow per car across values of one field.
func (s *SensitivityService) Sweep1D(
	base domain.AssumptionSet,
	values []float64,
	field domain.Field,
) ([]float64, error) {

	if err := validateAxis(field, values); err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	for i, v := range values {
		a, err := base.With(field, v)
		if err != nil {
			return nil, &CellError{Col: i, X: v, Err: fmt.Errorf("%w: %v", ErrInvalidAssumption, err)}
		}
		result, err := s.economics.Evaluate(a)
		if err != nil {
			return nil, &CellError{Col: i, X: v, Err: err}
		}
		out[i] = result.CashFlowPerCar
	}
	return out, nil
}

// Analyze runs Sweep1D and locates the break-even points.
func (s *SensitivityService) Analyze(req domain.Sweep1DRequest) (domain.Sweep1DResult, error) {
	cashFlows, err := s.Sweep1D(req.Assumptions, req.Values, req.Field)
	if err != nil {
		return domain.Sweep1DResult{}, err
	}

	return domain.Sweep1DResult{
		Field:      req.Field,
		Values:     append([]float64(nil), req.Values...),
		CashFlows:  cashFlows,
		BreakEvens: BreakEven(req.Values, cashFlows),
	}, nil
}

// BreakEven finds where cash flow crosses zero between adjacent samples and
// linearly interpolates the crossing. A sample that is exactly zero is
// reported at its own value. Sequences of unequal length yield nil.
func BreakEven(values, cashFlows []float64) []domain.BreakEvenPoint {
	if len(values) != len(cashFlows) {
		return nil
	}

	var points []domain.BreakEvenPoint
	for i, c := range cashFlows {
		if c == 0 {
			prev, next := 0.0, 0.0
			if i > 0 {
				prev = cashFlows[i-1]
			}
			if i+1 < len(cashFlows) {
				next = cashFlows[i+1]
			}
			points = append(points, domain.BreakEvenPoint{Value: values[i], Direction: sign(next - prev)})
			continue
		}

		if i+1 == len(cashFlows) {
			break
		}
		n := cashFlows[i+1]
		if n == 0 || sign(n) == sign(c) {
			continue
		}

		v0, v1 := values[i], values[i+1]
		points = append(points, domain.BreakEvenPoint{
			Value:     v0 + (v1-v0)*(-c)/(n-c),
			Direction: sign(n - c),
		})
	}

	return points
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
