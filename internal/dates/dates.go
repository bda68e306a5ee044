// Package dates holds the calendar math shared by the KPI calculators and
// the alert engine.
package dates

import "time"

// DaysUntil returns the signed whole-day difference from now to t.
// Negative means t is in the past.
func DaysUntil(now, t time.Time) int {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(tDay.Sub(nowDay).Hours() / 24)
}

// MonthsBetween returns the whole months elapsed from earlier to later,
// never negative.
func MonthsBetween(earlier, later time.Time) int {
	if later.Before(earlier) {
		return 0
	}
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if later.Day() < earlier.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// NextAnnual projects an annual event (birthday, anniversary) onto the
// current or next year, whichever occurrence falls on or after today.
func NextAnnual(event, now time.Time) time.Time {
	next := time.Date(now.Year(), event.Month(), event.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = next.AddDate(1, 0, 0)
	}
	return next
}
