package domain

// Axis is an ordered set of values for one swept field.
type Axis struct {
	Field  Field     `json:"field"`
	Values []float64 `json:"values"`
}

// Grid holds monthly cash flow per car for every combination of the two
// axes. Cells[i][j] corresponds to Y.Values[i] and X.Values[j].
type Grid struct {
	X     Axis        `json:"x"`
	Y     Axis        `json:"y"`
	Cells [][]float64 `json:"cells"`
}

type SweepRequest struct {
	Assumptions AssumptionSet `json:"assumptions"`
	XField      Field         `json:"x_field"`
	XValues     []float64     `json:"x_values"`
	YField      Field         `json:"y_field"`
	YValues     []float64     `json:"y_values"`
}

type Sweep1DRequest struct {
	Assumptions AssumptionSet `json:"assumptions"`
	Field       Field         `json:"field"`
	Values      []float64     `json:"values"`
}

// BreakEvenPoint is an interpolated value of the swept field where monthly
// cash flow crosses zero. Direction is +1 when cash flow turns positive and
// -1 when it turns negative.
type BreakEvenPoint struct {
	Value     float64 `json:"value"`
	Direction int     `json:"direction"`
}

type Sweep1DResult struct {
	Field      Field            `json:"field"`
	Values     []float64        `json:"values"`
	CashFlows  []float64        `json:"cash_flows"`
	BreakEvens []BreakEvenPoint `json:"break_evens"`
}
