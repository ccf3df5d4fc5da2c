package domain

// InvestmentInput describes an all-cash vehicle purchase held for a number
// of years.
type InvestmentInput struct {
	Assumptions          AssumptionSet `json:"assumptions"`
	OperationalLifeYears int           `json:"operational_life_years"`
	DiscountRatePct      float64       `json:"discount_rate_pct"`
}

type InvestmentResult struct {
	AnnualCashFlow float64   `json:"annual_cash_flow"`
	CashFlows      []float64 `json:"cash_flows"`
	NPV            float64   `json:"npv"`
	// IRR is nil when the cash flows have no internal rate of return.
	IRR *float64 `json:"irr,omitempty"`
	// PaybackYears is nil when the vehicle never pays for itself.
	PaybackYears *float64 `json:"payback_years,omitempty"`
}
