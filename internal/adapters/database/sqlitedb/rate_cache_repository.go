// Package sqlitedb persists the exchange-rate offline fallback cache in an
// embedded sqlite database.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portsrepo "github.com/fynlens/fynlens_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rateCacheKey is the fixed storage key for the cached rate table. The cache
// only ever holds the single most recent fetch.
const rateCacheKey = "exchange-rates"

// RateCacheRepository implements the rate cache port on sqlite.
type RateCacheRepository struct {
	db *sql.DB
}

// NewRateCacheRepository creates a new sqlite-backed rate cache.
func NewRateCacheRepository(db *sql.DB) *RateCacheRepository {
	return &RateCacheRepository{db: db}
}

var _ portsrepo.RateCacheRepository = (*RateCacheRepository)(nil)

// SaveRates replaces the cached rate table wholesale, stamped with fetchedAt.
func (r *RateCacheRepository) SaveRates(ctx context.Context, rates []domain.ExchangeRate, fetchedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rate cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM exchange_rate_cache WHERE cache_key = ?`, rateCacheKey); err != nil {
		return fmt.Errorf("clear rate cache: %w", err)
	}

	const insert = `INSERT INTO exchange_rate_cache
		(cache_key, exchange_rate_id, currency_code, rate, rate_date, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	stamp := fetchedAt.UTC().Format(time.RFC3339)
	for _, rate := range rates {
		rateID := rate.ExchangeRateID
		if rateID == "" {
			rateID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, insert,
			rateCacheKey, rateID, rate.CurrencyCode, rate.Rate.String(), rate.Date, stamp); err != nil {
			return fmt.Errorf("insert cached rate for %s: %w", rate.CurrencyCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rate cache: %w", err)
	}
	return nil
}

// LoadRates returns the cached rates and when they were fetched, or
// apperrors.ErrNotFound when the cache is empty.
func (r *RateCacheRepository) LoadRates(ctx context.Context) ([]domain.ExchangeRate, time.Time, error) {
	const query = `SELECT exchange_rate_id, currency_code, rate, rate_date, fetched_at
		FROM exchange_rate_cache WHERE cache_key = ?`
	rows, err := r.db.QueryContext(ctx, query, rateCacheKey)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("query rate cache: %w", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	var fetchedAt time.Time
	for rows.Next() {
		var rate domain.ExchangeRate
		var rateStr, fetchedAtStr string
		if err := rows.Scan(&rate.ExchangeRateID, &rate.CurrencyCode, &rateStr, &rate.Date, &fetchedAtStr); err != nil {
			return nil, time.Time{}, fmt.Errorf("scan cached rate: %w", err)
		}
		rate.Rate, err = decimal.NewFromString(rateStr)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("parse cached rate %q: %w", rateStr, err)
		}
		if stamp, err := time.Parse(time.RFC3339, fetchedAtStr); err == nil {
			fetchedAt = stamp
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("iterate rate cache: %w", err)
	}
	if len(rates) == 0 {
		return nil, time.Time{}, fmt.Errorf("%w: exchange rate cache is empty", apperrors.ErrNotFound)
	}
	return rates, fetchedAt, nil
}
