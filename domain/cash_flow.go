package domain

// FleetResult scales the per-vehicle figures by the number of vehicles.
type FleetResult struct {
	NetRevenue     float64 `json:"net_revenue"`
	TotalCosts     float64 `json:"total_costs"`
	CashFlow       float64 `json:"cash_flow"`
	AnnualCashFlow float64 `json:"annual_cash_flow"`
	TotalMiles     float64 `json:"total_miles"`
	DeadheadMiles  float64 `json:"deadhead_miles"`
}

// CashFlowResult is the monthly cash flow derived from an AssumptionSet.
type CashFlowResult struct {
	HoursPerMonth         float64 `json:"hours_per_month"`
	PaidHoursPerMonth     float64 `json:"paid_hours_per_month"`
	PaidMilesPerMonth     float64 `json:"paid_miles_per_month"`
	TotalMilesPerMonth    float64 `json:"total_miles_per_month"`
	DeadheadMilesPerMonth float64 `json:"deadhead_miles_per_month"`

	GrossRevenue float64 `json:"gross_revenue"`
	PlatformCut  float64 `json:"platform_cut"`
	NetRevenue   float64 `json:"net_revenue"`

	VariableOpex float64 `json:"variable_opex"`
	FixedOpex    float64 `json:"fixed_opex"`
	MonthlyDebt  float64 `json:"monthly_debt"`
	TotalCosts   float64 `json:"total_costs"`

	CashFlowPerCar       float64 `json:"cash_flow_per_car"`
	AnnualCashFlowPerCar float64 `json:"annual_cash_flow_per_car"`

	Fleet FleetResult `json:"fleet"`
}

// WaterfallStep is one bar of the monthly profit waterfall.
type WaterfallStep struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

const (
	WaterfallGrossFares   = "Gross Fares"
	WaterfallPlatformFee  = "Platform Fee"
	WaterfallVariableOpex = "Variable Opex"
	WaterfallFixedOpex    = "Fixed Opex"
	WaterfallLoanPayment  = "Loan Payment"
	WaterfallNetProfit    = "Net Profit"
)
