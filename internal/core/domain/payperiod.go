package domain

import "time"

// PayPeriodInfo describes one pay period's boundaries for presentation.
type PayPeriodInfo struct {
	Period        int       `json:"period"` // YYYYMM encoding
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DaysRemaining int       `json:"daysRemaining"`
}
