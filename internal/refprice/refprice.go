package refprice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Feed supplies an indicative spot price per kilo for a metal. It is
// display-only context for the order board and never feeds back into
// order or board state.
type Feed interface {
	GetSpot(ctx context.Context, metal string) (float64, error)
}

// QuoteAPIFeed implements Feed against a metals quote HTTP API.
type QuoteAPIFeed struct {
	client  *http.Client
	baseURL string
}

// NewQuoteAPIFeed returns a feed backed by the quote API at baseURL.
func NewQuoteAPIFeed(baseURL string) *QuoteAPIFeed {
	return &QuoteAPIFeed{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
	}
}

// internal: map our metal names ("silver") to quote API symbols ("XAG").
func mapMetalToSymbol(metal string) (string, error) {
	switch metal {
	case "silver":
		return "XAG", nil
	case "gold":
		return "XAU", nil
	default:
		return "", fmt.Errorf("unsupported metal: %s", metal)
	}
}

type quoteResponse struct {
	Symbol       string  `json:"symbol"`
	Currency     string  `json:"currency"`
	PricePerKilo float64 `json:"price_per_kilo"`
}

// GetSpot returns the spot price per kilo for the given metal (e.g. "silver").
func (f *QuoteAPIFeed) GetSpot(ctx context.Context, metal string) (float64, error) {
	symbol, err := mapMetalToSymbol(metal)
	if err != nil {
		return 0, err
	}

	u := fmt.Sprintf("%s/v1/spot?symbol=%s&currency=GBP", f.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("quote api: unexpected status %d", resp.StatusCode)
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}

	if body.PricePerKilo <= 0 {
		return 0, fmt.Errorf("quote api: no price for %s", symbol)
	}

	return body.PricePerKilo, nil
}
