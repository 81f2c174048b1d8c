package currency

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"intothestar/config"

	"go.uber.org/zap"
)

func newMockService() *DefaultCurrencyService {
	config.AppConfig.ExchangeRateAPIKey = ""
	return NewDefaultCurrencyService(nil, zap.NewNop())
}

func TestConvertMockRates(t *testing.T) {
	svc := newMockService()

	cases := []struct {
		amount   float64
		target   string
		expected float64
	}{
		{100, "USD", 27},
		{100, "INR", 2250},
		{500, "EUR", 125},
		{500, "AED", 500},
	}
	for _, tc := range cases {
		got := svc.Convert(context.Background(), tc.amount, tc.target)
		if got != tc.expected {
			t.Errorf("Convert(%v, %s) = %v, want %v", tc.amount, tc.target, got, tc.expected)
		}
	}
}

func TestConvertUnknownCurrencyFallsBackToParity(t *testing.T) {
	svc := newMockService()

	if got := svc.Convert(context.Background(), 500, "XYZ"); got != 500 {
		t.Fatalf("unknown currency should convert 1:1, got %v", got)
	}
}

func TestConvertRoundsToTwoDecimals(t *testing.T) {
	svc := newMockService()

	// 123.45 * 0.27 = 33.3315 -> 33.33
	if got := svc.Convert(context.Background(), 123.45, "USD"); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestConvertLiveLookupFailureFallsBackToParity(t *testing.T) {
	config.AppConfig.ExchangeRateAPIKey = "test-key"
	config.AppConfig.BaseCurrency = "AED"
	defer func() { config.AppConfig.ExchangeRateAPIKey = "" }()

	svc := NewDefaultCurrencyService(nil, zap.NewNop())
	svc.HTTPClient = &http.Client{Transport: failingTransport{}, Timeout: time.Second}

	if got := svc.Convert(context.Background(), 500, "USD"); got != 500 {
		t.Fatalf("failed live lookup should convert 1:1, got %v", got)
	}
}
