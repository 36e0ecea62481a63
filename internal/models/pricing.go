package models

import "math"

// PriceTable holds the amount for each booking cycle. The monthly amount is
// authoritative; the other cycles are derived once, at listing creation, and
// are never re-derived afterwards.
type PriceTable struct {
	Day   int `json:"Day"`
	Week  int `json:"Week"`
	Month int `json:"Month"`
	Year  int `json:"Year"`
}

// DerivePriceTable computes the cycle table from a monthly amount:
// Day = round(M/15), Week = round(M/4), Year = M*11.
func DerivePriceTable(monthly int) PriceTable {
	return PriceTable{
		Day:   int(math.Round(float64(monthly) / 15)),
		Week:  int(math.Round(float64(monthly) / 4)),
		Month: monthly,
		Year:  monthly * 11,
	}
}

// ForCycle returns the amount for the given booking cycle.
func (p PriceTable) ForCycle(c BookingCycle) int {
	switch c {
	case CycleDay:
		return p.Day
	case CycleWeek:
		return p.Week
	case CycleYear:
		return p.Year
	default:
		return p.Month
	}
}
