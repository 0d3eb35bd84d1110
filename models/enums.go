package models

import (
	"fmt"
	"strings"
)

// Category is one of the five mutually exclusive property kinds.
type Category string

const (
	CategoryCommercial  Category = "commercial"
	CategoryResidential Category = "residential"
	CategoryLand        Category = "land"
	CategoryResorts     Category = "resorts"
	CategoryVenues      Category = "venues"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryCommercial, CategoryResidential, CategoryLand, CategoryResorts, CategoryVenues}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCommercial, CategoryResidential, CategoryLand, CategoryResorts, CategoryVenues:
		return true
	}
	return false
}

// Title is the capitalised display form, e.g. "Residential".
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

func ParseCategory(s string) (Category, error) {
	c := Category(normalize(s))
	if !c.Valid() {
		return "", invalid("category", fmt.Sprintf("%q is not one of %s", s, joinValues(Categories())))
	}
	return c, nil
}

// Frequency is both the rent period a price is denominated in and the
// cadence a rental's obligation falls due.
type Frequency string

const (
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

func Frequencies() []Frequency { return []Frequency{Monthly, Yearly} }

func (f Frequency) Valid() bool { return f == Monthly || f == Yearly }

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(normalize(s))
	if !f.Valid() {
		return "", invalid("frequency", fmt.Sprintf("%q is not one of %s", s, joinValues(Frequencies())))
	}
	return f, nil
}

type PaymentMethod string

const (
	Cash         PaymentMethod = "cash"
	CreditCard   PaymentMethod = "credit_card"
	BankTransfer PaymentMethod = "bank_transfer"
	Check        PaymentMethod = "check"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Cash, CreditCard, BankTransfer, Check}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case Cash, CreditCard, BankTransfer, Check:
		return true
	}
	return false
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(normalize(s))
	if !m.Valid() {
		return "", invalid("payment_method", fmt.Sprintf("%q is not one of %s", s, joinValues(PaymentMethods())))
	}
	return m, nil
}

type RentalStatus string

const (
	RentalActive RentalStatus = "active"
	RentalEnded  RentalStatus = "ended"
)

func (s RentalStatus) Valid() bool { return s == RentalActive || s == RentalEnded }

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
