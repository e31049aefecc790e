// Package payperiod maps calendar dates onto the customer's custom monthly
// billing cycle. A pay period is identified by an integer year*100+month and
// need not align with calendar months: it opens on the customer's configured
// "day of month paid".
package payperiod

import "time"

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// normalize wraps a (year, month) pair after month arithmetic.
func normalize(year int, month int) (int, time.Month) {
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	return year, time.Month(month)
}

// PeriodFor computes the pay period containing date for the given
// dayOfMonthPaid (1-31; 30 and 31 mean "last day of the month", resolved per
// month so short months track correctly).
//
// The two branch conditions below are not complements of each other: a pay
// day in the first half of the month rolls early-month dates back, while a
// pay day from the 15th onward rolls late-month dates forward. Dates matching
// neither branch stay in their calendar month.
func PeriodFor(date time.Time, dayOfMonthPaid int) int {
	day := dayOfMonthPaid
	if dayOfMonthPaid >= 30 {
		day = lastDayOfMonth(date.Year(), date.Month())
	}

	year := date.Year()
	month := int(date.Month())
	switch {
	case dayOfMonthPaid < 15 && date.Day() < day:
		y, m := normalize(year, month-1)
		year, month = y, int(m)
	case dayOfMonthPaid >= 15 && date.Day() >= day:
		y, m := normalize(year, month+1)
		year, month = y, int(m)
	}
	return year*100 + month
}

// Current computes the pay period containing now.
func Current(now time.Time, dayOfMonthPaid int) int {
	return PeriodFor(now, dayOfMonthPaid)
}

// Next returns the period immediately after period.
func Next(period int) int {
	year, month := normalize(period/100, period%100+1)
	return year*100 + int(month)
}

// Start returns the first day of the period. Periods for pay days from the
// 15th onward open in the preceding calendar month; pay days of 29 and below
// are clamped to the month's last day when the month is shorter.
func Start(period int, dayOfMonthPaid int) time.Time {
	year := period / 100
	month := period % 100
	if dayOfMonthPaid >= 15 {
		y, m := normalize(year, month-1)
		year, month = y, int(m)
	}

	y, m := normalize(year, month)
	day := dayOfMonthPaid
	if last := lastDayOfMonth(y, m); dayOfMonthPaid >= 30 || day > last {
		day = last
	}
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period: the next period's start minus one
// day.
func End(period int, dayOfMonthPaid int) time.Time {
	return Start(Next(period), dayOfMonthPaid).AddDate(0, 0, -1)
}

// DaysRemaining returns how many whole days are left in the period as of now,
// clamped to zero once the period has ended.
func DaysRemaining(period int, dayOfMonthPaid int, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	remaining := int(End(period, dayOfMonthPaid).Sub(today).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}
