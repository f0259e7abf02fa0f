package model

import (
	"time"

	"github.com/agrocoop/distribution/constant"
	"github.com/shopspring/decimal"
)

// Assignment binds one request line item to one product's stock with a
// price snapshot taken at reservation time.
type Assignment struct {
	ID               uint64                    `db:"id" json:"id"`
	RequestID        uint64                    `db:"request_id" json:"request_id"`
	ProductID        uint64                    `db:"product_id" json:"product_id"`
	FarmerID         uint64                    `db:"farmer_id" json:"farmer_id"`
	QuantityAssigned decimal.Decimal           `db:"quantity_assigned" json:"quantity_assigned"`
	UnitPrice        decimal.Decimal           `db:"unit_price" json:"unit_price"`
	TotalPrice       decimal.Decimal           `db:"total_price" json:"total_price"`
	Status           constant.AssignmentStatus `db:"status" json:"status"`
	CreatedDate      time.Time                 `db:"created_date" json:"created_date"`
}

// InsertAssignmentTxItem carries one assignment row written inside the
// reservation transaction
type InsertAssignmentTxItem struct {
	ProductID        uint64
	FarmerID         uint64
	QuantityAssigned decimal.Decimal
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	Status           constant.AssignmentStatus
}

// AssignmentWithDetails joins product, farmer and sales point names for
// display
type AssignmentWithDetails struct {
	Assignment
	ProductName    string `db:"product_name" json:"product_name"`
	Unit           string `db:"unit" json:"unit"`
	FarmerName     string `db:"farmer_name" json:"farmer_name"`
	SalesPointName string `db:"sales_point_name" json:"sales_point_name"`
}
