package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAgeCalculation tests the age calculation function with various scenarios
func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
		description string
	}{
		{
			name:        "Same month and day",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
			description: "Exact birthday",
		},
		{
			name:        "Day before birthday",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC),
			expectedAge: 59,
			description: "One day before 60th birthday",
		},
		{
			name:        "Day after birthday",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
			description: "One day after 60th birthday",
		},
		{
			name:        "Month before birthday",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 59,
			description: "Same day, month before birthday",
		},
		{
			name:        "Month after birthday",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
			description: "Same day, month after birthday",
		},
		{
			name:        "Leap year birth, non-leap year check",
			birthDate:   time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
			description: "Born on leap day, checking on Feb 28",
		},
		{
			name:        "Leap year birth, leap year check",
			birthDate:   time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
			description: "Born on leap day, checking on leap day",
		},
		{
			name:        "Late in the year",
			birthDate:   time.Date(1995, 11, 3, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
			expectedAge: 29,
			description: "Birthday not reached yet this year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := Age(tt.birthDate, tt.atDate)
			assert.Equal(t, tt.expectedAge, age,
				"%s: Expected age %d, got %d", tt.description, tt.expectedAge, age)
		})
	}
}


func TestBirthYear(t *testing.T) {
	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1995, BirthYear(30, at))
	assert.Equal(t, 2025, BirthYear(0, at))
}

// TestFullRetirementAge tests Social Security FRA calculation
func TestFullRetirementAge(t *testing.T) {
	tests := []struct {
		birthYear      int
		expectedFRA    int
		expectedMonths int
	}{
		{1937, 65, 0},
		{1940, 65, 6},
		{1950, 66, 0},
		{1957, 66, 6},
		{1959, 66, 10},
		{1960, 67, 0},
		{1995, 67, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("Born_%d", tt.birthYear), func(t *testing.T) {
			assert.Equal(t, tt.expectedFRA, FullRetirementAge(tt.birthYear))
			years, months := FullRetirementAgeMonths(tt.birthYear)
			assert.Equal(t, tt.expectedFRA, years)
			assert.Equal(t, tt.expectedMonths, months)
		})
	}
}

// TestGetRMDAge tests the RMD age determination
func TestGetRMDAge(t *testing.T) {
	tests := []struct {
		name        string
		birthYear   int
		expectedAge int
	}{
		{"Born 1950 or earlier", 1950, 72},
		{"Born 1951-1959", 1955, 73},
		{"Born 1960 or later", 1965, 75},
		{"Young saver", 1995, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedAge, GetRMDAge(tt.birthYear))
		})
	}
}

func TestSince(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected Elapsed
	}{
		{
			name:     "whole years",
			from:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2030, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: Elapsed{Years: 5},
		},
		{
			name:     "short month",
			from:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: Elapsed{Days: 29}, // Jan 31 plus one month normalizes past Mar 1
		},
		{
			name:     "borrows a year",
			from:     time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			expected: Elapsed{Months: 2, Days: 21},
		},
		{
			name:     "reversed range",
			from:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: Elapsed{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Since(tt.from, tt.to))
		})
	}

	assert.Equal(t, 26, Elapsed{Years: 2, Months: 2, Days: 9}.TotalMonths())
}

// TestLeapYearCalculation tests leap year determination
func TestLeapYearCalculation(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2000, true},  // Divisible by 400
		{1900, false}, // Divisible by 100 but not 400
		{2004, true},  // Divisible by 4
		{2001, false}, // Not divisible by 4
		{2024, true},
		{2025, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("Year_%d", tt.year), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLeapYear(tt.year))
		})
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
	assert.Equal(t, 365, DaysInYear(1900))
}

// TestDateArithmetic tests date arithmetic functions
func TestDateArithmetic(t *testing.T) {
	baseDate := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, time.Date(2030, 6, 15, 12, 30, 45, 0, time.UTC), AddYears(baseDate, 5))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), BeginningOfYear(baseDate))
}
