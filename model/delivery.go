package model

import (
	"time"

	"github.com/agrocoop/distribution/constant"
)

// Delivery represents the delivery table entity. A request has at most
// one non-cancelled delivery at a time.
type Delivery struct {
	ID                  uint64                  `db:"id" json:"id"`
	RequestID           uint64                  `db:"request_id" json:"request_id"`
	DriverID            uint64                  `db:"driver_id" json:"driver_id"`
	ScheduledDate       string                  `db:"scheduled_date" json:"scheduled_date"`
	DeliveryAddress     string                  `db:"delivery_address" json:"delivery_address"`
	EstimatedTime       *string                 `db:"estimated_time" json:"estimated_time,omitempty"`
	SpecialInstructions *string                 `db:"special_instructions" json:"special_instructions,omitempty"`
	Status              constant.DeliveryStatus `db:"status" json:"status"`
	DeliveredDate       *time.Time              `db:"delivered_date" json:"delivered_date,omitempty"`
	Notes               *string                 `db:"notes" json:"notes,omitempty"`
	CreatedDate         time.Time               `db:"created_date" json:"created_date"`
	StatusUpdatedDate   time.Time               `db:"status_updated_date" json:"status_updated_date"`
}

// ScheduleDeliveryInput for scheduling a delivery on a confirmed request
type ScheduleDeliveryInput struct {
	RequestID           uint64  `json:"request_id" validate:"required"`
	DriverID            uint64  `json:"driver_id" validate:"required"`
	ScheduledDate       string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	DeliveryAddress     string  `json:"delivery_address,omitempty"`
	EstimatedTime       *string `json:"estimated_time,omitempty"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

type ScheduleDeliveryResponse struct {
	DeliveryID uint64                  `json:"delivery_id"`
	Status     constant.DeliveryStatus `json:"status"`
}

// UpdateDeliveryStatusInput advances a delivery through its lifecycle
type UpdateDeliveryStatusInput struct {
	Status constant.DeliveryStatus `json:"status" validate:"required"`
	Notes  *string                 `json:"notes,omitempty"`
}

// InsertDeliveryTxItem carries the delivery row written inside the
// scheduling transaction
type InsertDeliveryTxItem struct {
	RequestID           uint64
	DriverID            uint64
	ScheduledDate       string
	DeliveryAddress     string
	EstimatedTime       *string
	SpecialInstructions *string
	Status              constant.DeliveryStatus
}

// DeliveryWithDetails joins driver and sales point information for
// display
type DeliveryWithDetails struct {
	Delivery
	DriverName        string                 `db:"driver_name" json:"driver_name"`
	SalesPointName    string                 `db:"sales_point_name" json:"sales_point_name"`
	SalesPointAddress string                 `db:"sales_point_address" json:"sales_point_address"`
	RequestStatus     constant.RequestStatus `db:"request_status" json:"request_status"`
}
