// Package schedule holds the date and amount arithmetic of the leasing engine.
// Every function is pure and works on calendar dates only.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/beesaferoot/property-leasing/models"
)

var twelve = decimal.NewFromInt(12)

// DurationMonths counts the billable months between start and end. A partial
// trailing month (end day past the start day) counts as a full month.
func DurationMonths(start, end models.Date) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	if end.Day() > start.Day() {
		months++
	}
	return months
}

// TotalAmount is the amount owed for a rental of the given length. A yearly
// rent is prorated per month; the result is rounded to cents.
func TotalAmount(rent decimal.Decimal, period models.Frequency, months int) decimal.Decimal {
	n := decimal.NewFromInt(int64(months))
	if period == models.Yearly {
		// rent*months/12 rather than (rent/12)*months keeps the division exact where possible
		return rent.Mul(n).Div(twelve).Round(2)
	}
	return rent.Mul(n).Round(2)
}

// NextDueDate advances from by one period. Monthly steps clamp the day to the
// last day of the target month; yearly steps clamp Feb 29 to Feb 28.
func NextDueDate(from models.Date, f models.Frequency) models.Date {
	if f == models.Yearly {
		return AddMonths(from, 12)
	}
	return AddMonths(from, 1)
}

// AddMonths moves d by n calendar months (n may be negative), clamping the day
// to the length of the target month.
func AddMonths(d models.Date, n int) models.Date {
	total := d.Year()*12 + int(d.Month()-1) + n
	year, month := total/12, time.Month(total%12+1)
	if total%12 < 0 {
		year, month = year-1, time.Month(total%12+13)
	}
	return models.NewDate(year, month, min(d.Day(), DaysIn(year, month)))
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween counts the calendar days from a to b; negative when b is before a.
func DaysBetween(a, b models.Date) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}
