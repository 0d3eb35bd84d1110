package schedule

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/beesaferoot/property-leasing/models"
)

func date(s string) models.Date { return models.MustParseDate(s) }

func TestDurationMonths(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"same day", "2024-01-15", "2024-01-15", 0},
		{"partial trailing month counts", "2024-01-15", "2024-03-20", 3},
		{"exact two months", "2024-01-15", "2024-03-15", 2},
		{"day before anniversary", "2024-01-15", "2024-03-14", 2},
		{"across year boundary", "2023-11-30", "2024-02-01", 3},
		{"within first month", "2024-01-15", "2024-01-31", 1},
		{"full year", "2024-02-29", "2025-02-28", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMonths(date(tt.start), date(tt.end)))
		})
	}
}

func TestDurationMonthsIsMonotonic(t *testing.T) {
	start := date("2024-01-31")
	end := start
	prev := DurationMonths(start, end)
	for i := 0; i < 800; i++ {
		end = end.AddDays(1)
		got := DurationMonths(start, end)
		assert.GreaterOrEqual(t, got, prev, "duration dropped at %s", end)
		prev = got
	}
}

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name   string
		rent   decimal.Decimal
		period models.Frequency
		months int
		want   string
	}{
		{"monthly", decimal.NewFromInt(1000), models.Monthly, 3, "3000"},
		{"yearly prorated", decimal.NewFromInt(12000), models.Yearly, 3, "3000"},
		{"yearly uneven", decimal.NewFromInt(1000), models.Yearly, 1, "83.33"},
		{"fractional monthly", decimal.RequireFromString("999.99"), models.Monthly, 2, "1999.98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalAmount(tt.rent, tt.period, tt.months)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name string
		from string
		f    models.Frequency
		want string
	}{
		{"monthly", "2024-01-15", models.Monthly, "2024-02-15"},
		{"monthly year rollover", "2024-12-10", models.Monthly, "2025-01-10"},
		{"monthly clamps to leap february", "2024-01-31", models.Monthly, "2024-02-29"},
		{"monthly clamps to february", "2023-01-31", models.Monthly, "2023-02-28"},
		{"monthly clamps to 30 day month", "2024-03-31", models.Monthly, "2024-04-30"},
		{"yearly", "2024-05-20", models.Yearly, "2025-05-20"},
		{"yearly from leap day", "2024-02-29", models.Yearly, "2025-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDueDate(date(tt.from), tt.f).String())
		})
	}
}

func TestNextDueDateComposesMonthly(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= 28; day++ {
			d := models.NewDate(2024, month, day)
			twice := NextDueDate(NextDueDate(d, models.Monthly), models.Monthly)

			assert.Equal(t, AddMonths(d, 2), twice)
			assert.Equal(t, day, twice.Day())
			assert.Equal(t, (int(month)+1)%12+1, int(twice.Month()))
		}
	}
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, "2023-12-15", AddMonths(date("2024-01-15"), -1).String())
	assert.Equal(t, "2026-03-31", AddMonths(date("2024-01-31"), 26).String())
	assert.Equal(t, "2024-02-29", AddMonths(date("2024-03-31"), -1).String())
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2100, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.December))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date("2024-03-01"), date("2024-03-01")))
	assert.Equal(t, 29, DaysBetween(date("2024-02-01"), date("2024-03-01")))
	assert.Equal(t, -1, DaysBetween(date("2024-01-01"), date("2023-12-31")))
}
