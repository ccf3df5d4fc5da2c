package service

const (
	DaysPerMonth   = 30.5
	MonthsPerYear  = 12
	MaxPercent     = 100.0
	MaxTermMonths  = 600 // 50 años
	MinTermMonths  = 1
	MaxNumVehicles = 100_000

	MaxSweepAxisLength = 50 // máximo de valores por eje

	MinOperationalLifeYears = 1
	MaxOperationalLifeYears = 30

	// Intervalo de búsqueda para la TIR
	irrLowerBound = -0.99
	irrUpperBound = 10.0
	irrTolerance  = 1e-9
	irrMaxIter    = 200

	ScheduleMonthsForFirstYear = 12
)

// AllowedLoanTerms are the financing terms offered for vehicle loans.
var AllowedLoanTerms = []int{36, 48, 60, 72}
