package domain_test

import (
	"testing"

	"github.com/fynlens/fynlens_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccount_IsCreditType(t *testing.T) {
	assert.True(t, domain.Account{AccountClass: domain.AccountClassCreditCard}.IsCreditType())
	assert.True(t, domain.Account{AccountClass: domain.AccountClassBank, AccountType: "revolving credit"}.IsCreditType())
	assert.False(t, domain.Account{AccountClass: domain.AccountClassBank, AccountType: "cheque"}.IsCreditType())
}

func TestAccount_ContributesToNetWorth(t *testing.T) {
	assert.True(t, domain.Account{IncludeInNav: true}.ContributesToNetWorth())
	assert.False(t, domain.Account{IncludeInNav: true, Deactivated: true}.ContributesToNetWorth())
	assert.False(t, domain.Account{IncludeInNav: true, IsDeleted: true}.ContributesToNetWorth())
	assert.False(t, domain.Account{}.ContributesToNetWorth())
}
