package models

import (
	"fmt"
	"strings"
)

// Client is a person or company renting properties. Clients are referenced by
// rentals and payments but never deleted.
type Client struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    string   `gorm:"not null" json:"name" validate:"required"`
	Email   *string  `json:"email,omitempty"`
	Phone   *string  `json:"phone,omitempty"`
	Address *string  `json:"address,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
	Rentals []Rental `gorm:"foreignKey:ClientID" json:"rentals,omitempty"`
}

// NewClient builds a client; blank optional values are kept as NULL.
func NewClient(name, email, phone, address, notes string) (*Client, error) {
	c := &Client{
		Name:    strings.TrimSpace(name),
		Email:   optional(email),
		Phone:   optional(phone),
		Address: optional(address),
		Notes:   optional(notes),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", "is required")
	}
	return validateStruct(c)
}

// ContactInfo renders "name | Email: ... | Phone: ..." with N/A for missing values.
func (c *Client) ContactInfo() string {
	return fmt.Sprintf("%s | Email: %s | Phone: %s", c.Name, orNA(c.Email), orNA(c.Phone))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
