package service

import (
	"math"
	"testing"

	"robotaxi-economics/domain"
)

func TestCalculateLoan_WithInterest(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{
		Amount:       24000,
		InterestRate: 7.5,
		TermMonths:   60,
	}

	result, err := service.CalculateLoan(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment != 480.91 {
		t.Errorf("expected cuota 480.91, got %.2f", result.MonthlyPayment)
	}

	if result.TotalInterest <= 0 {
		t.Errorf("expected positive total interest, got %.2f", result.TotalInterest)
	}
}

func TestCalculateLoan_ZeroInterest(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{
		Amount:       1200,
		InterestRate: 0,
		TermMonths:   12,
	}

	result, err := service.CalculateLoan(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 100.0
	if result.MonthlyPayment != expected {
		t.Errorf("expected %.2f, got %.2f", expected, result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected no interest, got %.2f", result.TotalInterest)
	}
}

func TestCalculateLoan_InvalidAmount(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{
		Amount:       -1,
		InterestRate: 10,
		TermMonths:   12,
	}

	if _, err := service.CalculateLoan(input); err == nil {
		t.Errorf("expected error for invalid amount")
	}
}

func TestCalculateLoan_InvalidTerm(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{
		Amount:       1000,
		InterestRate: 10,
		TermMonths:   0,
	}

	if _, err := service.CalculateLoan(input); err == nil {
		t.Errorf("expected error for invalid term")
	}
}

func TestMonthlyPayment_StraightLineIdentity(t *testing.T) {

	service := NewLoanService()

	payment := service.MonthlyPayment(24000, 0, 60)
	if payment*60 != 24000 {
		t.Errorf("expected payment*term = 24000, got %v", payment*60)
	}
}

func TestMonthlyPayment_InterestExceedsStraightLine(t *testing.T) {

	service := NewLoanService()

	for _, term := range AllowedLoanTerms {
		payment := service.MonthlyPayment(24000, 7.5, term)
		if payment <= 24000/float64(term) {
			t.Errorf("term %d: expected payment above %v, got %v", term, 24000/float64(term), payment)
		}
	}
}

func TestSchedule_RetiresPrincipal(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{Amount: 24000, InterestRate: 7.5, TermMonths: 60}
	schedule, err := service.Schedule(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule) != 60 {
		t.Fatalf("expected 60 entries, got %d", len(schedule))
	}
	if schedule[len(schedule)-1].Balance != 0 {
		t.Errorf("expected zero closing balance, got %v", schedule[len(schedule)-1].Balance)
	}

	principal := 0.0
	for _, e := range schedule {
		principal += e.Principal
	}
	if math.Abs(principal-24000) > 1e-6 {
		t.Errorf("expected principal to sum to 24000, got %v", principal)
	}

	// El interés baja cada mes
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Interest >= schedule[i-1].Interest {
			t.Fatalf("interest did not decrease at month %d", schedule[i].Month)
		}
	}
}

func TestFirstYearInterest(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanInput{Amount: 24000, InterestRate: 7.5, TermMonths: 60}
	interest, err := service.FirstYearInterest(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Menor que el interés simple sobre el saldo inicial
	if interest <= 0 || interest >= 24000*0.075 {
		t.Errorf("unexpected first-year interest %v", interest)
	}
}

func TestMonthlyPayment_TinyRateStaysFinite(t *testing.T) {

	service := NewLoanService()

	payment := service.MonthlyPayment(24000, 1e-15, 60)
	if math.IsInf(payment, 0) || math.IsNaN(payment) {
		t.Fatalf("expected finite payment, got %v", payment)
	}
	if math.Abs(payment-400) > 1e-6 {
		t.Errorf("expected payment close to straight-line 400, got %v", payment)
	}
}
