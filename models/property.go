package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Property is a leasable unit. The category-specific columns are nullable: exactly
// the columns of the property's own category are set, all others stay NULL.
type Property struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Category    Category        `gorm:"type:text;not null;index" json:"category"`
	Kind        *string         `json:"kind,omitempty"`
	Address     string          `json:"address"`
	FloorArea   float64         `json:"floor_area"`
	RentAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rent_amount"`
	RentPeriod  Frequency       `gorm:"type:text;not null" json:"rent_period"`
	PicturePath *string         `json:"picture_path,omitempty"`
	Description string          `json:"description"`
	Available   bool            `gorm:"column:is_available;not null" json:"is_available"`
	Bedrooms    *int            `json:"bedrooms,omitempty"`
	Bathrooms   *int            `json:"bathrooms,omitempty"`
	LandUse     *string         `json:"land_use,omitempty"`
	Amenities   *string         `json:"amenities,omitempty"`
	Capacity    *int            `json:"capacity,omitempty"`
}

// PropertySpec holds the attributes shared by every category.
type PropertySpec struct {
	Address     string          `json:"address"`
	FloorArea   float64         `json:"floor_area" validate:"gte=0"`
	RentAmount  decimal.Decimal `json:"rent_amount"`
	RentPeriod  Frequency       `json:"rent_period" validate:"required,oneof=monthly yearly"`
	Description string          `json:"description"`
}

// Details is the category-specific payload of a property.
type Details interface {
	Category() Category
	String() string
	fields() map[string]any
	apply(p *Property)
}

type Commercial struct {
	Kind string `json:"kind" validate:"notblank"`
}

type Residential struct {
	Kind      string `json:"kind" validate:"notblank"`
	Bedrooms  int    `json:"bedrooms" validate:"gte=0"`
	Bathrooms int    `json:"bathrooms" validate:"gte=0"`
}

// Land has no kind; its use (agricultural, residential, ...) takes that role.
type Land struct {
	LandUse string `json:"land_use" validate:"notblank"`
}

type Resort struct {
	Kind      string `json:"kind" validate:"notblank"`
	Amenities string `json:"amenities" validate:"notblank"`
}

type Venue struct {
	Kind     string `json:"kind" validate:"notblank"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

func (Commercial) Category() Category  { return CategoryCommercial }
func (Residential) Category() Category { return CategoryResidential }
func (Land) Category() Category        { return CategoryLand }
func (Resort) Category() Category      { return CategoryResorts }
func (Venue) Category() Category       { return CategoryVenues }

func (Commercial) String() string { return "Commercial Property" }
func (d Residential) String() string {
	return fmt.Sprintf("Bedrooms: %d | Bathrooms: %d", d.Bedrooms, d.Bathrooms)
}
func (d Land) String() string   { return "Land Use: " + d.LandUse }
func (d Resort) String() string { return "Amenities: " + d.Amenities }
func (d Venue) String() string  { return fmt.Sprintf("Capacity: %d", d.Capacity) }

func (d Commercial) fields() map[string]any { return map[string]any{"kind": d.Kind} }
func (d Residential) fields() map[string]any {
	return map[string]any{"kind": d.Kind, "bedrooms": d.Bedrooms, "bathrooms": d.Bathrooms}
}
func (d Land) fields() map[string]any   { return map[string]any{"land_use": d.LandUse} }
func (d Resort) fields() map[string]any { return map[string]any{"kind": d.Kind, "amenities": d.Amenities} }
func (d Venue) fields() map[string]any  { return map[string]any{"kind": d.Kind, "capacity": d.Capacity} }

func (d Commercial) apply(p *Property) { p.Kind = trimmed(d.Kind) }
func (d Residential) apply(p *Property) {
	p.Kind, p.Bedrooms, p.Bathrooms = trimmed(d.Kind), &d.Bedrooms, &d.Bathrooms
}
func (d Land) apply(p *Property)   { p.LandUse = trimmed(d.LandUse) }
func (d Resort) apply(p *Property) { p.Kind, p.Amenities = trimmed(d.Kind), trimmed(d.Amenities) }
func (d Venue) apply(p *Property)  { p.Kind, p.Capacity = trimmed(d.Kind), &d.Capacity }

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

// NewProperty validates spec and details and returns an available, unsaved property.
func NewProperty(spec PropertySpec, details Details) (*Property, error) {
	if details == nil {
		return nil, invalid("category", "details are required")
	}
	spec.RentPeriod = Frequency(normalize(string(spec.RentPeriod)))
	if err := validateStruct(spec); err != nil {
		return nil, err
	}
	if spec.RentAmount.IsNegative() {
		return nil, invalid("rent_amount", "must be at least 0")
	}
	if err := validateStruct(details); err != nil {
		return nil, err
	}
	p := &Property{
		Category:    details.Category(),
		Address:     strings.TrimSpace(spec.Address),
		FloorArea:   spec.FloorArea,
		RentAmount:  spec.RentAmount,
		RentPeriod:  spec.RentPeriod,
		Description: strings.TrimSpace(spec.Description),
		Available:   true,
	}
	details.apply(p)
	return p, nil
}

// Details rebuilds the category payload from the row. It returns nil for an
// unknown category.
func (p *Property) Details() Details {
	switch p.Category {
	case CategoryCommercial:
		return Commercial{Kind: deref(p.Kind)}
	case CategoryResidential:
		return Residential{Kind: deref(p.Kind), Bedrooms: derefInt(p.Bedrooms), Bathrooms: derefInt(p.Bathrooms)}
	case CategoryLand:
		return Land{LandUse: deref(p.LandUse)}
	case CategoryResorts:
		return Resort{Kind: deref(p.Kind), Amenities: deref(p.Amenities)}
	case CategoryVenues:
		return Venue{Kind: deref(p.Kind), Capacity: derefInt(p.Capacity)}
	}
	return nil
}

// DetailFields returns only the columns meaningful for the property's category.
func (p *Property) DetailFields() map[string]any {
	d := p.Details()
	if d == nil {
		return map[string]any{}
	}
	return d.fields()
}

// Validate checks the shared attributes and that exactly the category's own
// variant columns are set.
func (p *Property) Validate() error {
	if !p.Category.Valid() {
		return invalid("category", fmt.Sprintf("%q is not one of %s", p.Category, joinValues(Categories())))
	}
	if !p.RentPeriod.Valid() {
		return invalid("rent_period", fmt.Sprintf("%q is not one of %s", p.RentPeriod, joinValues(Frequencies())))
	}
	if p.FloorArea < 0 {
		return invalid("floor_area", "must be at least 0")
	}
	if p.RentAmount.IsNegative() {
		return invalid("rent_amount", "must be at least 0")
	}
	present := p.variantColumns()
	want := p.Details().fields()
	for column, set := range present {
		_, expected := want[column]
		if set && !expected {
			return invalid(column, fmt.Sprintf("must be empty for %s properties", p.Category))
		}
		if !set && expected {
			return invalid(column, fmt.Sprintf("is required for %s properties", p.Category))
		}
	}
	return validateStruct(p.Details())
}

func (p *Property) variantColumns() map[string]bool {
	return map[string]bool{
		"kind":      p.Kind != nil,
		"bedrooms":  p.Bedrooms != nil,
		"bathrooms": p.Bathrooms != nil,
		"land_use":  p.LandUse != nil,
		"amenities": p.Amenities != nil,
		"capacity":  p.Capacity != nil,
	}
}

// DisplayName is "<kind> in <address>", with "Land" standing in for the missing kind.
func (p *Property) DisplayName() string {
	kind := deref(p.Kind)
	if kind == "" {
		kind = "Land"
	}
	return kind + " in " + p.Address
}

// Summary is the one-line listing used by the CLI.
func (p *Property) Summary() string {
	avail := "No"
	if p.Available {
		avail = "Yes"
	}
	kind := deref(p.Kind)
	if kind == "" {
		kind = "N/A"
	}
	line := fmt.Sprintf("ID: %d | Category: %s | Kind: %s | Address: %s | Floor Area: %g sqm | Rent: %s/%s | Available: %s",
		p.ID, p.Category.Title(), kind, p.Address, p.FloorArea, p.RentAmount.StringFixed(2), p.RentPeriod, avail)
	if d := p.Details(); d != nil {
		line += " | " + d.String()
	}
	return line
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
