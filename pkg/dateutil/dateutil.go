package dateutil

import (
	"time"
)

// Date truncates a time to its calendar date in UTC. All statutory date
// arithmetic works on calendar dates without time-of-day.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween calculates the number of calendar days from one date to another.
// The result is negative when 'to' precedes 'from'.
func DaysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)).Hours() / 24)
}

// AddMonths adds a specified number of calendar months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// AgreementEndDate returns the last day of a rental term: the start date
// plus the term in months, minus one day. An 11-month agreement starting on
// the 1st ends on the last day before the 11-month mark.
func AgreementEndDate(startDate time.Time, durationMonths int) time.Time {
	return Date(startDate).AddDate(0, durationMonths, 0).AddDate(0, 0, -1)
}

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// FinancialYear returns the Indian financial year a date falls in,
// identified by its starting calendar year. April 1st opens a new year.
func FinancialYear(date time.Time) int {
	if date.Month() >= time.April {
		return date.Year()
	}
	return date.Year() - 1
}

// FinancialYearStart returns April 1st of the given financial year
func FinancialYearStart(fy int) time.Time {
	return time.Date(fy, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// FinancialYearEnd returns March 31st closing the given financial year
func FinancialYearEnd(fy int) time.Time {
	return time.Date(fy+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}
