package model

import (
	"time"

	"github.com/agrocoop/distribution/constant"
	"github.com/shopspring/decimal"
)

// DistributionRequest represents the distribution_request table entity.
// TotalAmount is a snapshot of line totals at reservation time and is
// never recomputed from live prices.
type DistributionRequest struct {
	ID                uint64                   `db:"id" json:"id"`
	SalesPointID      uint64                   `db:"sales_point_id" json:"sales_point_id"`
	Status            constant.RequestStatus   `db:"status" json:"status"`
	Priority          constant.RequestPriority `db:"priority" json:"priority"`
	TotalAmount       decimal.Decimal          `db:"total_amount" json:"total_amount"`
	RequiredDate      *string                  `db:"required_date" json:"required_date,omitempty"`
	Notes             *string                  `db:"notes" json:"notes,omitempty"`
	CreatedDate       time.Time                `db:"created_date" json:"created_date"`
	StatusUpdatedDate time.Time                `db:"status_updated_date" json:"status_updated_date"`
	CancelledDate     *time.Time               `db:"cancelled_date" json:"cancelled_date,omitempty"`
}

// RequestLineItem is one (product, quantity) pair of a request
type RequestLineItem struct {
	ProductID uint64          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateRequestInput for creating a request with reservation
type CreateRequestInput struct {
	SalesPointID uint64                   `json:"sales_point_id" validate:"required"`
	Items        []RequestLineItem        `json:"items" validate:"required,dive,required"`
	Priority     constant.RequestPriority `json:"priority"`
	RequiredDate *string                  `json:"required_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes        *string                  `json:"notes,omitempty"`
}

type CreateRequestResponse struct {
	RequestID   uint64                 `json:"request_id"`
	Status      constant.RequestStatus `json:"status"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
}

// UpdateRequestInput patches a pending request. Nil fields are left
// untouched; line items and status are never editable here.
type UpdateRequestInput struct {
	Priority     *constant.RequestPriority `json:"priority,omitempty"`
	RequiredDate *string                   `json:"required_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes        *string                   `json:"notes,omitempty"`
}

// InsertRequestTxItem carries the request row written inside the
// reservation transaction
type InsertRequestTxItem struct {
	SalesPointID uint64
	Status       constant.RequestStatus
	Priority     constant.RequestPriority
	TotalAmount  decimal.Decimal
	RequiredDate *string
	Notes        *string
}

// RequestWithDetails joins the owning sales point and line details for
// display
type RequestWithDetails struct {
	DistributionRequest
	SalesPointName string              `db:"sales_point_name" json:"sales_point_name"`
	Items          []RequestLineDetail `json:"items"`
}

// RequestLineDetail is an assignment row joined with product and farmer
// names
type RequestLineDetail struct {
	AssignmentID     uint64                    `db:"assignment_id" json:"assignment_id"`
	ProductID        uint64                    `db:"product_id" json:"product_id"`
	ProductName      string                    `db:"product_name" json:"product_name"`
	Unit             string                    `db:"unit" json:"unit"`
	FarmerID         uint64                    `db:"farmer_id" json:"farmer_id"`
	FarmerName       string                    `db:"farmer_name" json:"farmer_name"`
	QuantityAssigned decimal.Decimal           `db:"quantity_assigned" json:"quantity_assigned"`
	UnitPrice        decimal.Decimal           `db:"unit_price" json:"unit_price"`
	TotalPrice       decimal.Decimal           `db:"total_price" json:"total_price"`
	Status           constant.AssignmentStatus `db:"status" json:"status"`
}
