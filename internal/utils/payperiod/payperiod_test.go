package payperiod_test

import (
	"testing"
	"time"

	"github.com/fynlens/fynlens_backend/internal/utils/payperiod"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodFor_EarlyPayDayRollsBack(t *testing.T) {
	// Paid on the 5th: days before the 5th belong to the previous month's period.
	assert.Equal(t, 202403, payperiod.PeriodFor(date(2024, time.April, 3), 5))
	assert.Equal(t, 202404, payperiod.PeriodFor(date(2024, time.April, 5), 5))
	assert.Equal(t, 202404, payperiod.PeriodFor(date(2024, time.April, 20), 5))
}

func TestPeriodFor_EarlyPayDayYearBoundary(t *testing.T) {
	assert.Equal(t, 202312, payperiod.PeriodFor(date(2024, time.January, 2), 5))
}

func TestPeriodFor_LatePayDayRollsForward(t *testing.T) {
	// Paid on the 25th: days from the 25th onward belong to the next month's period.
	assert.Equal(t, 202411, payperiod.PeriodFor(date(2024, time.October, 25), 25))
	assert.Equal(t, 202411, payperiod.PeriodFor(date(2024, time.October, 31), 25))
	assert.Equal(t, 202501, payperiod.PeriodFor(date(2024, time.December, 26), 25))
}

func TestPeriodFor_LatePayDayBeforePayDay(t *testing.T) {
	// Neither branch fires: before the pay day with a late pay day, the
	// calendar month stands.
	assert.Equal(t, 202410, payperiod.PeriodFor(date(2024, time.October, 10), 25))
}

func TestPeriodFor_FirstOfMonth(t *testing.T) {
	// dayPaid 1 never rolls back (no day is below 1) and never rolls forward
	// below the 15th threshold.
	assert.Equal(t, 202410, payperiod.PeriodFor(date(2024, time.October, 1), 1))
	assert.Equal(t, 202410, payperiod.PeriodFor(date(2024, time.October, 31), 1))
}

func TestPeriodFor_LastDayOfMonthPayDay(t *testing.T) {
	// 30 and 31 mean "last day of the month", so February resolves to the 29th
	// in a leap year.
	assert.Equal(t, 202403, payperiod.PeriodFor(date(2024, time.February, 29), 31))
	assert.Equal(t, 202402, payperiod.PeriodFor(date(2024, time.February, 28), 31))
	assert.Equal(t, 202405, payperiod.PeriodFor(date(2024, time.April, 30), 30))
}

func TestNext(t *testing.T) {
	assert.Equal(t, 202405, payperiod.Next(202404))
	assert.Equal(t, 202501, payperiod.Next(202412))
}

func TestStart_EarlyPayDay(t *testing.T) {
	assert.Equal(t, date(2024, time.April, 5), payperiod.Start(202404, 5))
}

func TestStart_LatePayDayOpensPreviousMonth(t *testing.T) {
	assert.Equal(t, date(2024, time.September, 25), payperiod.Start(202410, 25))
	assert.Equal(t, date(2023, time.December, 25), payperiod.Start(202401, 25))
}

func TestStart_ClampsToShortMonth(t *testing.T) {
	// Period 202403 with pay day 31 opens on the last day of February.
	assert.Equal(t, date(2024, time.February, 29), payperiod.Start(202403, 31))
	assert.Equal(t, date(2023, time.February, 28), payperiod.Start(202303, 31))
}

func TestEnd_IsDayBeforeNextStart(t *testing.T) {
	assert.Equal(t, date(2024, time.May, 4), payperiod.End(202404, 5))
	assert.Equal(t, date(2024, time.October, 24), payperiod.End(202410, 25))
}

func TestDaysRemaining(t *testing.T) {
	// Period 202404 with pay day 5 ends on 2024-05-04.
	assert.Equal(t, 4, payperiod.DaysRemaining(202404, 5, date(2024, time.April, 30)))
	assert.Equal(t, 0, payperiod.DaysRemaining(202404, 5, date(2024, time.May, 4)))
}

func TestDaysRemaining_ClampedAfterPeriodEnds(t *testing.T) {
	assert.Equal(t, 0, payperiod.DaysRemaining(202404, 5, date(2024, time.June, 1)))
}

func TestCurrent_MatchesPeriodFor(t *testing.T) {
	now := date(2024, time.October, 10)
	assert.Equal(t, payperiod.PeriodFor(now, 25), payperiod.Current(now, 25))
}
