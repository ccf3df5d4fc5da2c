package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"robotaxi-economics/domain"
)

const defaultChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// InsightService writes a short explanation of an evaluation. With an API
// key it asks a chat model; otherwise, or when the call fails, it falls back
// to a fixed template. It never alters the numbers it explains.
type InsightService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	log        *logrus.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewInsightService(apiKey string, log *logrus.Logger) *InsightService {
	return &InsightService{
		apiKey:  apiKey,
		apiURL:  defaultChatCompletionsURL,
		model:   "gpt-4o-mini",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// WithEndpoint points the service at a different chat-completions URL.
func (s *InsightService) WithEndpoint(url string) *InsightService {
	s.apiURL = url
	return s
}

// Explain describes the monthly result in a few sentences.
func (s *InsightService) Explain(
	ctx context.Context,
	a domain.AssumptionSet,
	r domain.CashFlowResult,
) string {
	if !s.enabled {
		return FallbackExplanation(a, r)
	}

	prompt := fmt.Sprintf(`Explain the unit economics of this autonomous ride-hailing vehicle in 3 sentences.

ASSUMPTIONS:
- Price per mile: $%.2f
- Paid utilization: %.1f%%
- Active hours per day: %.1f
- Platform fee: %.1f%%
- Fleet size: %d

MONTHLY RESULT PER VEHICLE:
- Paid miles: %.0f, total miles: %.0f, deadhead miles: %.0f
- Gross fares: $%.2f, net revenue: $%.2f
- Variable opex: $%.2f, fixed opex: $%.2f, loan payment: $%.2f
- Cash flow: $%.2f (annual $%.2f)

Mention the main cost driver and whether the vehicle is profitable.`,
		a.PricePerMile, a.PaidUtilizationPct, a.HoursActivePerDay, a.PlatformFeePct, a.NumVehicles,
		r.PaidMilesPerMonth, r.TotalMilesPerMonth, r.DeadheadMilesPerMonth,
		r.GrossRevenue, r.NetRevenue,
		r.VariableOpex, r.FixedOpex, r.MonthlyDebt,
		r.CashFlowPerCar, r.AnnualCashFlowPerCar)

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		s.log.WithError(err).Warn("insight request failed, using fallback explanation")
		return FallbackExplanation(a, r)
	}

	return explanation
}

func (s *InsightService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a transportation finance analyst. You explain fleet unit economics plainly, quote the numbers you are given and never invent new ones.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 250,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return parsed.Choices[0].Message.Content, nil
}

// FallbackExplanation is the template used when no model is available.
func FallbackExplanation(a domain.AssumptionSet, r domain.CashFlowResult) string {
	deadheadShare := 0.0
	if r.TotalMilesPerMonth != 0 {
		deadheadShare = r.DeadheadMilesPerMonth / r.TotalMilesPerMonth * 100
	}

	status := "is profitable"
	switch {
	case r.CashFlowPerCar < 0:
		status = "loses money"
	case r.CashFlowPerCar == 0:
		status = "breaks even"
	}

	text := fmt.Sprintf("Each vehicle %s at $%.2f per month ($%.2f per year). "+
		"It drives %.0f miles a month, %.1f%% of them deadhead, and pays $%.2f toward the loan.",
		status, r.CashFlowPerCar, r.AnnualCashFlowPerCar,
		r.TotalMilesPerMonth, deadheadShare, r.MonthlyDebt)

	if a.NumVehicles > 1 {
		text += fmt.Sprintf(" Across %d vehicles the fleet nets $%.2f per month.", a.NumVehicles, r.Fleet.CashFlow)
	}
	return text
}
