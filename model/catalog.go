package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Farmer represents the farmer table entity
type Farmer struct {
	ID               uint64    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            *string   `db:"email" json:"email,omitempty"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Address          *string   `db:"address" json:"address,omitempty"`
	Active           bool      `db:"active" json:"active"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}

// Product represents the product table entity. Quantity and
// availability are only written through the reservation engine's
// locked paths.
type Product struct {
	ID           uint64          `db:"id" json:"id"`
	FarmerID     uint64          `db:"farmer_id" json:"farmer_id"`
	Name         string          `db:"name" json:"name"`
	Category     string          `db:"category" json:"category"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	Unit         string          `db:"unit" json:"unit"`
	PricePerUnit decimal.Decimal `db:"price_per_unit" json:"price_per_unit"`
	Available    bool            `db:"available" json:"available"`
	ExpiryDate   *string         `db:"expiry_date" json:"expiry_date,omitempty"`
	CreatedDate  time.Time       `db:"created_date" json:"created_date"`
}

// SalesPoint represents the sales_point table entity
type SalesPoint struct {
	ID               uint64    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Type             string    `db:"type" json:"type"`
	ContactPerson    *string   `db:"contact_person" json:"contact_person,omitempty"`
	Email            *string   `db:"email" json:"email,omitempty"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Address          string    `db:"address" json:"address"`
	Active           bool      `db:"active" json:"active"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}

// Driver represents the driver table entity
type Driver struct {
	ID               uint64    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	LicenseNumber    *string   `db:"license_number" json:"license_number,omitempty"`
	VehicleInfo      *string   `db:"vehicle_info" json:"vehicle_info,omitempty"`
	Active           bool      `db:"active" json:"active"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}

// ProductFilter narrows product listings
type ProductFilter struct {
	AvailableOnly bool
	FarmerID      uint64
	Category      string
}

// ProductListItem is a product row joined with its farmer name for display
type ProductListItem struct {
	ID           uint64          `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	Category     string          `db:"category" json:"category"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	Unit         string          `db:"unit" json:"unit"`
	PricePerUnit decimal.Decimal `db:"price_per_unit" json:"price_per_unit"`
	Available    bool            `db:"available" json:"available"`
	ExpiryDate   *string         `db:"expiry_date" json:"expiry_date,omitempty"`
	FarmerID     uint64          `db:"farmer_id" json:"farmer_id"`
	FarmerName   string          `db:"farmer_name" json:"farmer_name"`
}
