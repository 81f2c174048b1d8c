package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"intothestar/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Converter turns a base-currency amount into a display-currency amount.
// Conversion never fails the caller: every lookup problem degrades to a
// fallback rate.
type Converter interface {
	Convert(ctx context.Context, amountBase float64, targetCurrency string) float64
}

// mockRates is the static table used when no live source is configured.
var mockRates = map[string]float64{
	"USD": 0.27,
	"INR": 22.5,
	"EUR": 0.25,
	"GBP": 0.21,
	"AUD": 0.41,
	"AED": 1.0,
}

const rateCacheTTL = time.Hour

// DefaultCurrencyService resolves rates from ExchangeRate-API when a key is
// configured, caching them in Redis; otherwise it serves the mock table.
type DefaultCurrencyService struct {
	Cache      *redis.Client // optional; nil disables caching
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewDefaultCurrencyService(cache *redis.Client, logger *zap.Logger) *DefaultCurrencyService {
	return &DefaultCurrencyService{
		Cache:      cache,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Logger:     logger,
	}
}

type exchangeRateAPIResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"conversion_rates"`
}

// Convert applies the resolved rate and rounds to 2 decimals.
func (s *DefaultCurrencyService) Convert(ctx context.Context, amountBase float64, targetCurrency string) float64 {
	rate := s.rate(ctx, targetCurrency)
	return math.Round(amountBase*rate*100) / 100
}

func (s *DefaultCurrencyService) rate(ctx context.Context, target string) float64 {
	if config.AppConfig.ExchangeRateAPIKey == "" {
		if rate, ok := mockRates[target]; ok {
			return rate
		}
		// Unknown currency codes fall back to a 1:1 rate.
		return 1.0
	}

	base := config.AppConfig.BaseCurrency
	cacheKey := fmt.Sprintf("fxrate:%s:%s", base, target)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			if rate, err := strconv.ParseFloat(cached, 64); err == nil {
				return rate
			}
		}
	}

	rate, err := s.fetchRate(ctx, base, target)
	if err != nil {
		s.Logger.Warn("Exchange rate lookup failed, using 1:1 rate",
			zap.String("target", target), zap.Error(err))
		return 1.0
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, cacheKey, strconv.FormatFloat(rate, 'f', -1, 64), rateCacheTTL).Err(); err != nil {
			s.Logger.Debug("Failed to cache exchange rate", zap.Error(err))
		}
	}
	return rate
}

// fetchRate fetches the base->target rate from ExchangeRate-API.
func (s *DefaultCurrencyService) fetchRate(ctx context.Context, base, target string) (float64, error) {
	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/%s",
		config.AppConfig.ExchangeRateAPIKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request failed: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var rateResp exchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&rateResp); err != nil {
		return 0, fmt.Errorf("decoding response failed: %w", err)
	}
	if rateResp.Result != "success" {
		return 0, fmt.Errorf("exchange API returned failure result")
	}

	rate, ok := rateResp.Rates[target]
	if !ok {
		return 0, fmt.Errorf("exchange rate for %s not found", target)
	}
	return rate, nil
}
