package services

import "time"

// DateLayout is the date-only format used for all deadline arithmetic.
const DateLayout = "2006-01-02"

// Working-day offsets for the two report obligations.
const (
	AccomplishmentDeadlineDays = 3
	LiquidationDeadlineDays    = 7
)

// AddWorkingDays advances from start one calendar day at a time, counting only
// non-Saturday/non-Sunday days, and returns the date of the nth such day.
// Weekends are determined by day-of-week only; there is no holiday calendar.
// n = 0 returns start unchanged.
func AddWorkingDays(start time.Time, n int) time.Time {
	d := start
	for counted := 0; counted < n; {
		d = d.AddDate(0, 0, 1)
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			counted++
		}
	}
	return d
}

// CalculateDeadline returns the date n working days after the event end date as
// a date-only string. The arithmetic is done in UTC on the parsed date so the
// result does not depend on the caller's time zone.
func CalculateDeadline(eventEndDate string, n int) (string, error) {
	end, err := time.ParseInLocation(DateLayout, eventEndDate, time.UTC)
	if err != nil {
		return "", err
	}
	return AddWorkingDays(end, n).Format(DateLayout), nil
}

// DeadlineDaysFor returns the working-day offset for a report kind.
func DeadlineDaysFor(kind string) int {
	if kind == "liquidation" {
		return LiquidationDeadlineDays
	}
	return AccomplishmentDeadlineDays
}
