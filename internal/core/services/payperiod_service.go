package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fynlens/fynlens_backend/internal/apperrors"
	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/utils/payperiod"
)

// payPeriodService implements the PayPeriodSvcFacade interface
type payPeriodService struct {
	BaseService
	aggregateSvc portssvc.AggregateReaderSvc
	now          func() time.Time
}

// PayPeriodServiceOption is a functional option for configuring the pay-period service
type PayPeriodServiceOption func(*payPeriodService)

// WithPayPeriodClock overrides the clock used for "today".
func WithPayPeriodClock(now func() time.Time) PayPeriodServiceOption {
	return func(s *payPeriodService) {
		s.now = now
	}
}

// NewPayPeriodService creates a new pay-period service reading the customer's
// pay day from the aggregate snapshot.
func NewPayPeriodService(aggregateSvc portssvc.AggregateReaderSvc, options ...PayPeriodServiceOption) portssvc.PayPeriodSvcFacade {
	svc := &payPeriodService{
		aggregateSvc: aggregateSvc,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PayPeriodSvcFacade = (*payPeriodService)(nil)

// CurrentPeriod describes the pay period containing today.
func (s *payPeriodService) CurrentPeriod(ctx context.Context) (*domain.PayPeriodInfo, error) {
	agg, err := s.aggregateSvc.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aggregate for current pay period: %w", err)
	}
	day := agg.DayOfMonthPaid()
	return s.describe(payperiod.Current(s.now(), day), day), nil
}

// PeriodInfo describes an arbitrary pay period.
func (s *payPeriodService) PeriodInfo(ctx context.Context, period int) (*domain.PayPeriodInfo, error) {
	if month := period % 100; month < 1 || month > 12 || period < 100 {
		return nil, fmt.Errorf("%w: invalid pay period %d", apperrors.ErrValidation, period)
	}
	agg, err := s.aggregateSvc.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aggregate for pay period info: %w", err)
	}
	return s.describe(period, agg.DayOfMonthPaid()), nil
}

func (s *payPeriodService) describe(period, dayOfMonthPaid int) *domain.PayPeriodInfo {
	return &domain.PayPeriodInfo{
		Period:        period,
		Start:         payperiod.Start(period, dayOfMonthPaid),
		End:           payperiod.End(period, dayOfMonthPaid),
		DaysRemaining: payperiod.DaysRemaining(period, dayOfMonthPaid, s.now()),
	}
}
