package services_test

import (
	"context"
	"testing"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
	portssvc "github.com/fynlens/fynlens_backend/internal/core/ports/services"
	"github.com/fynlens/fynlens_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func moneyPtr(amount string, currency string, sign domain.MoneySign) *domain.Money {
	return &domain.Money{Amount: decimal.RequireFromString(amount), CurrencyCode: currency, Sign: sign}
}

type NetWorthServiceTestSuite struct {
	suite.Suite
	mockAggregate *MockAggregateReaderSvc
	service       portssvc.NetWorthSvcFacade
}

func (suite *NetWorthServiceTestSuite) SetupTest() {
	suite.mockAggregate = new(MockAggregateReaderSvc)
	suite.service = services.NewNetWorthService(suite.mockAggregate, services.NewCurrencyService())
}

func (suite *NetWorthServiceTestSuite) TestNetWorth_BankAndCreditCard() {
	ctx := context.Background()
	agg := &domain.Aggregate{
		CustomerInfo: domain.CustomerInfo{DefaultCurrencyCode: "USD"},
		Accounts: []domain.Account{
			{
				AccountID:    "acc-cheque",
				AccountClass: domain.AccountClassBank,
				CurrencyCode: "USD",
				Have:         moneyPtr("2500", "USD", domain.Credit),
				IncludeInNav: true,
			},
			{
				AccountID:    "acc-visa",
				AccountClass: domain.AccountClassCreditCard,
				CurrencyCode: "USD",
				// Positive balance on a credit account is an outstanding debt.
				Have:         moneyPtr("800", "USD", domain.Credit),
				IncludeInNav: true,
			},
		},
	}
	suite.mockAggregate.On("Snapshot", ctx).Return(agg, nil).Once()

	summary, err := suite.service.NetWorth(ctx, "")

	suite.Require().NoError(err)
	suite.Equal("USD", summary.CurrencyCode)
	suite.True(summary.TotalAssets.Equal(decimal.RequireFromString("2500")), "got %s", summary.TotalAssets)
	suite.True(summary.TotalLiabilities.Equal(decimal.RequireFromString("800")))
	suite.True(summary.NetWorth.Equal(decimal.RequireFromString("1700")))
}

func (suite *NetWorthServiceTestSuite) TestNetWorth_CreditAccountInCustomersFavor() {
	ctx := context.Background()
	agg := &domain.Aggregate{
		CustomerInfo: domain.CustomerInfo{DefaultCurrencyCode: "USD"},
		Accounts: []domain.Account{
			{
				AccountID:    "acc-visa",
				AccountClass: domain.AccountClassCreditCard,
				CurrencyCode: "USD",
				// Overpaid card: negative balance is an asset.
				Have:         moneyPtr("150", "USD", domain.Debit),
				IncludeInNav: true,
			},
		},
	}
	suite.mockAggregate.On("Snapshot", ctx).Return(agg, nil).Once()

	summary, err := suite.service.NetWorth(ctx, "USD")

	suite.Require().NoError(err)
	suite.True(summary.TotalAssets.Equal(decimal.RequireFromString("150")))
	suite.True(summary.TotalLiabilities.IsZero())
}

func (suite *NetWorthServiceTestSuite) TestNetWorth_OweLegs() {
	ctx := context.Background()
	agg := &domain.Aggregate{
		CustomerInfo: domain.CustomerInfo{DefaultCurrencyCode: "USD"},
		Accounts: []domain.Account{
			{
				AccountID:    "acc-loan",
				AccountClass: domain.AccountClassLoan,
				CurrencyCode: "USD",
				Owe:          moneyPtr("10000", "USD", domain.Debit),
				IncludeInNav: true,
			},
			{
				AccountID:    "acc-visa",
				AccountClass: domain.AccountClassCreditCard,
				CurrencyCode: "USD",
				// Credit owe legs count by absolute value either way.
				Owe:          moneyPtr("300", "USD", domain.Debit),
				IncludeInNav: true,
			},
		},
	}
	suite.mockAggregate.On("Snapshot", ctx).Return(agg, nil).Once()

	summary, err := suite.service.NetWorth(ctx, "USD")

	suite.Require().NoError(err)
	suite.True(summary.TotalLiabilities.Equal(decimal.RequireFromString("10300")), "got %s", summary.TotalLiabilities)
	suite.True(summary.NetWorth.Equal(decimal.RequireFromString("-10300")))
}

func (suite *NetWorthServiceTestSuite) TestNetWorth_SkipsIneligibleAccounts() {
	ctx := context.Background()
	agg := &domain.Aggregate{
		CustomerInfo: domain.CustomerInfo{DefaultCurrencyCode: "USD"},
		Accounts: []domain.Account{
			{
				AccountID:    "acc-hidden",
				AccountClass: domain.AccountClassBank,
				CurrencyCode: "USD",
				Have:         moneyPtr("999999", "USD", domain.Credit),
				IncludeInNav: false,
			},
			{
				AccountID:    "acc-closed",
				AccountClass: domain.AccountClassBank,
				CurrencyCode: "USD",
				Have:         moneyPtr("500", "USD", domain.Credit),
				Deactivated:  true,
				IncludeInNav: true,
			},
			{
				AccountID:    "acc-live",
				AccountClass: domain.AccountClassBank,
				CurrencyCode: "USD",
				Have:         moneyPtr("100", "USD", domain.Credit),
				IncludeInNav: true,
			},
		},
	}
	suite.mockAggregate.On("Snapshot", ctx).Return(agg, nil).Once()

	summary, err := suite.service.NetWorth(ctx, "USD")

	suite.Require().NoError(err)
	suite.True(summary.TotalAssets.Equal(decimal.RequireFromString("100")))
}

func (suite *NetWorthServiceTestSuite) TestNetWorth_ConvertsAcrossCurrencies() {
	ctx := context.Background()
	agg := &domain.Aggregate{
		CustomerInfo: domain.CustomerInfo{DefaultCurrencyCode: "ZAR"},
		ExchangeRates: []domain.ExchangeRate{
			{CurrencyCode: "ZAR", Rate: decimal.RequireFromString("18.5"), Date: "2024-10-01"},
		},
		Accounts: []domain.Account{
			{
				AccountID:    "acc-usd",
				AccountClass: domain.AccountClassBank,
				CurrencyCode: "USD",
				Have:         moneyPtr("100", "USD", domain.Credit),
				IncludeInNav: true,
			},
			{
				// No GBP rate: the leg contributes its original amount.
				AccountID:    "acc-gbp",
				AccountClass: domain.AccountClassBank,
				CurrencyCode: "GBP",
				Have:         moneyPtr("50", "GBP", domain.Credit),
				IncludeInNav: true,
			},
		},
	}
	suite.mockAggregate.On("Snapshot", ctx).Return(agg, nil).Once()

	summary, err := suite.service.NetWorth(ctx, "")

	suite.Require().NoError(err)
	suite.Equal("ZAR", summary.CurrencyCode)
	// 100 USD * 18.5 + unconverted 50 GBP.
	suite.True(summary.TotalAssets.Equal(decimal.RequireFromString("1900")), "got %s", summary.TotalAssets)
}

func TestNetWorthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}
