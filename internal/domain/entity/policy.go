package entity

import (
	"time"
)

// RateLimitPolicy holds the immutable notification frequency caps.
type RateLimitPolicy struct {
	DailyLimit           int
	WeeklyLimit          int
	MonthlyLimit         int
	CooldownHours        int
	MerchantWeeklyLimit  int
	MerchantMonthlyLimit int
	AllowedHourStart     int
	AllowedHourEnd       int
	IgnoreHourWindow     bool
}

const (
	// WeekWindow is the trailing window used by the weekly caps.
	WeekWindow = 7 * 24 * time.Hour
	// MonthWindow is the trailing window used by the monthly caps and history retention.
	MonthWindow = 30 * 24 * time.Hour
)

// InHourWindow reports whether hour lies in [AllowedHourStart, AllowedHourEnd).
func (p RateLimitPolicy) InHourWindow(hour int) bool {
	if p.IgnoreHourWindow {
		return true
	}

	return hour >= p.AllowedHourStart && hour < p.AllowedHourEnd
}
