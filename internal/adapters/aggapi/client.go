// Package aggapi is the HTTP client for the remote aggregation API. It is a
// thin boundary adapter: it fetches, validates and defaults the payload, and
// hands immutable domain values to the core. No business logic lives here.
package aggapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portsrepo "github.com/fynlens/fynlens_backend/internal/core/ports/repositories"
	"github.com/go-playground/validator/v10"
)

// Client talks to the aggregation backend with a bearer token.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	validate       *validator.Validate
	defaultDayPaid int
}

// ClientOption is a functional option for configuring the client.
type ClientOption func(*Client)

// WithDefaultDayOfMonthPaid sets the pay day substituted when the customer
// profile does not carry a valid one.
func WithDefaultDayOfMonthPaid(day int) ClientOption {
	return func(c *Client) {
		if day >= 1 && day <= 31 {
			c.defaultDayPaid = day
		}
	}
}

// NewClient creates a new aggregation API client.
func NewClient(baseURL, token string, options ...ClientOption) *Client {
	client := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		token:          token,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		validate:       validator.New(),
		defaultDayPaid: 1,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

var _ portsrepo.AggregateReader = (*Client)(nil)

// ratesEnvelope is the wire shape of the exchange-rates endpoint.
type ratesEnvelope struct {
	ExchangeRates []domain.ExchangeRate `json:"exchangeRates"`
}

// FetchExchangeRates retrieves the current exchange-rate table.
func (c *Client) FetchExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	var envelope ratesEnvelope
	if err := c.get(ctx, "/v1/exchange-rates", &envelope); err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}
	rates, err := c.normalizeRates(envelope.ExchangeRates)
	if err != nil {
		return nil, err
	}
	return rates, nil
}

// FetchAggregate retrieves the full aggregate snapshot.
func (c *Client) FetchAggregate(ctx context.Context) (*domain.Aggregate, error) {
	var agg domain.Aggregate
	if err := c.get(ctx, "/v1/aggregate", &agg); err != nil {
		return nil, fmt.Errorf("fetch aggregate: %w", err)
	}
	if err := c.normalizeAggregate(&agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

// normalizeRates validates and canonicalizes the rate table at the boundary
// so the core never has to re-check payload quality.
func (c *Client) normalizeRates(rates []domain.ExchangeRate) ([]domain.ExchangeRate, error) {
	normalized := make([]domain.ExchangeRate, 0, len(rates))
	for _, rate := range rates {
		if err := c.validate.Var(rate.CurrencyCode, "required,len=3,alpha"); err != nil {
			return nil, fmt.Errorf("%w: exchange rate currency code %q", apperrors.ErrValidation, rate.CurrencyCode)
		}
		if err := c.validate.Var(rate.Date, "required,datetime=2006-01-02"); err != nil {
			return nil, fmt.Errorf("%w: exchange rate date %q", apperrors.ErrValidation, rate.Date)
		}
		if rate.Rate.IsNegative() {
			return nil, fmt.Errorf("%w: negative exchange rate for %s", apperrors.ErrValidation, rate.CurrencyCode)
		}
		rate.CurrencyCode = strings.ToUpper(rate.CurrencyCode)
		normalized = append(normalized, rate)
	}
	return normalized, nil
}

// normalizeAggregate validates the customer profile and canonicalizes
// currency codes. Defaults are applied here, at the boundary, never inside
// the core.
func (c *Client) normalizeAggregate(agg *domain.Aggregate) error {
	if err := c.validate.Var(agg.CustomerInfo.CustomerID, "required"); err != nil {
		return fmt.Errorf("%w: aggregate missing customer ID", apperrors.ErrValidation)
	}
	if agg.CustomerInfo.DayOfMonthPaid < 1 || agg.CustomerInfo.DayOfMonthPaid > 31 {
		agg.CustomerInfo.DayOfMonthPaid = c.defaultDayPaid
	}
	if agg.CustomerInfo.DefaultCurrencyCode == "" {
		agg.CustomerInfo.DefaultCurrencyCode = "USD"
	}
	agg.CustomerInfo.DefaultCurrencyCode = strings.ToUpper(agg.CustomerInfo.DefaultCurrencyCode)

	for i := range agg.Accounts {
		agg.Accounts[i].CurrencyCode = strings.ToUpper(agg.Accounts[i].CurrencyCode)
	}
	rates, err := c.normalizeRates(agg.ExchangeRates)
	if err != nil {
		return err
	}
	agg.ExchangeRates = rates
	return nil
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
