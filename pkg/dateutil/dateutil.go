package dateutil

import (
	"math"
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BirthYear returns the birth year implied by being age years old at atDate.
func BirthYear(age int, atDate time.Time) int {
	return atDate.Year() - age
}

// PenaltyFreeWithdrawalAge is the whole-year age at which IRA/401k withdrawals stop
// incurring the early-withdrawal penalty (the 59½ rule, reached during the 60th year).
const PenaltyFreeWithdrawalAge = 60

// EarlySocialSecurityAge is the earliest Social Security claiming age.
const EarlySocialSecurityAge = 62

// FullRetirementAge calculates the Social Security Full Retirement Age based on birth year.
// Fractional ages (66 and 2 months, etc.) are rounded down to the whole year.
func FullRetirementAge(birthYear int) int {
	switch {
	case birthYear <= 1942:
		return 65
	case birthYear <= 1959:
		return 66
	default: // 1960 and later
		return 67
	}
}

// FullRetirementAgeMonths returns the Full Retirement Age as years plus extra months.
func FullRetirementAgeMonths(birthYear int) (years, months int) {
	switch {
	case birthYear <= 1937:
		return 65, 0
	case birthYear <= 1942:
		return 65, (birthYear - 1937) * 2
	case birthYear <= 1954:
		return 66, 0
	case birthYear <= 1959:
		return 66, (birthYear - 1954) * 2
	default:
		return 67, 0
	}
}

// GetRMDAge returns the age when RMDs start for a given birth year
func GetRMDAge(birthYear int) int {
	switch {
	case birthYear <= 1950:
		return 72
	case birthYear >= 1951 && birthYear <= 1959:
		return 73
	default: // 1960 and later
		return 75
	}
}

// Elapsed is a calendar-aware difference between two dates.
type Elapsed struct {
	Years  int
	Months int
	Days   int
}

// Since returns the years, months and days between from and to.
// A to before from yields a zero Elapsed.
func Since(from, to time.Time) Elapsed {
	if !to.After(from) {
		return Elapsed{}
	}
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	months := 0
	for months < 11 && !from.AddDate(years, months+1, 0).After(to) {
		months++
	}
	days := int(math.Round(to.Sub(from.AddDate(years, months, 0)).Hours() / 24))
	return Elapsed{Years: years, Months: months, Days: days}
}

// TotalMonths returns the elapsed time in whole months.
func (e Elapsed) TotalMonths() int {
	return e.Years*12 + e.Months
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

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}
