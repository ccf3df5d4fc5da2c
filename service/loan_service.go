package service

import (
	"errors"
	"fmt"
	"math"

	"robotaxi-economics/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// LoanService amortizes the vehicle loan.
type LoanService struct{}

// NewLoanService creates a new LoanService.
func NewLoanService() *LoanService {
	return &LoanService{}
}

// MonthlyPayment returns the fixed monthly payment that retires principal
// over termMonths at annualRatePct. A zero rate falls back to straight-line
// repayment. The result is not rounded.
func (s *LoanService) MonthlyPayment(principal, annualRatePct float64, termMonths int) float64 {
	monthlyRate := annualRatePct / 100 / 12
	n := float64(termMonths)

	if monthlyRate == 0 {
		return principal / n
	}

	// (1+r)^n - 1 without cancellation for very small r
	growthMinusOne := math.Expm1(n * math.Log1p(monthlyRate))
	if growthMinusOne == 0 {
		return principal / n
	}
	return principal * monthlyRate * (growthMinusOne + 1) / growthMinusOne
}

func (s *LoanService) validate(input domain.LoanInput) error {
	if input.Amount < 0 {
		return errors.New("monto inválido")
	}
	if input.InterestRate < 0 {
		return errors.New("tasa inválida")
	}
	if input.TermMonths < MinTermMonths {
		return errors.New("plazo inválido")
	}
	if input.TermMonths > MaxTermMonths {
		return fmt.Errorf("plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}
	return nil
}

// CalculateLoan summarizes the loan rounded to cents.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if err := s.validate(input); err != nil {
		return domain.LoanResult{}, err
	}

	cuota := s.MonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
	total := cuota * float64(input.TermMonths)
	intereses := total - input.Amount

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(cuota),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(intereses),
	}, nil
}

// Schedule builds the month-by-month amortization table. The last payment
// absorbs any rounding residue so the closing balance is exactly zero.
func (s *LoanService) Schedule(
	input domain.LoanInput,
) ([]domain.AmortizationEntry, error) {

	if err := s.validate(input); err != nil {
		return nil, err
	}

	payment := s.MonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
	monthlyRate := input.InterestRate / 100 / 12
	balance := input.Amount

	schedule := make([]domain.AmortizationEntry, 0, input.TermMonths)
	for month := 1; month <= input.TermMonths; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		if month == input.TermMonths {
			principal = balance
		}
		balance -= principal

		schedule = append(schedule, domain.AmortizationEntry{
			Month:     month,
			Payment:   principal + interest,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}

	return schedule, nil
}

// FirstYearInterest sums the interest portion of the first twelve payments
// (or fewer when the term is shorter).
func (s *LoanService) FirstYearInterest(input domain.LoanInput) (float64, error) {
	schedule, err := s.Schedule(input)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i := 0; i < len(schedule) && i < ScheduleMonthsForFirstYear; i++ {
		total += schedule[i].Interest
	}
	return total, nil
}
