package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrProductNotFound
	ErrInsufficientStock
	ErrInvalidSalesPoint
	ErrEmptyLineItems
	ErrInvalidStateTransition
	ErrAlreadyCancelled
	ErrRequestNotConfirmed
	ErrDeliveryAlreadyExists
	ErrDeliveryNotFound
	ErrDriverNotFound
	ErrPersistence
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrCredentialExists:       "email or phone already exists",
	ErrInvalidPassword:        "password invalid",
	ErrProductNotFound:        "product not found",
	ErrInsufficientStock:      "insufficient product stock",
	ErrInvalidSalesPoint:      "sales point not found or inactive",
	ErrEmptyLineItems:         "request has no line items",
	ErrInvalidStateTransition: "operation not allowed in current status",
	ErrAlreadyCancelled:       "request already cancelled",
	ErrRequestNotConfirmed:    "request is not confirmed",
	ErrDeliveryAlreadyExists:  "request already has an active delivery",
	ErrDeliveryNotFound:       "delivery not found",
	ErrDriverNotFound:         "driver not found or inactive",
	ErrPersistence:            "storage operation failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrCredentialExists:       http.StatusBadRequest,
	ErrInvalidPassword:        http.StatusBadRequest,
	ErrProductNotFound:        http.StatusBadRequest,
	ErrInsufficientStock:      http.StatusConflict,
	ErrInvalidSalesPoint:      http.StatusBadRequest,
	ErrEmptyLineItems:         http.StatusBadRequest,
	ErrInvalidStateTransition: http.StatusConflict,
	ErrAlreadyCancelled:       http.StatusConflict,
	ErrRequestNotConfirmed:    http.StatusConflict,
	ErrDeliveryAlreadyExists:  http.StatusConflict,
	ErrDeliveryNotFound:       http.StatusBadRequest,
	ErrDriverNotFound:         http.StatusBadRequest,
	ErrPersistence:            http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrCredentialExists:       "0005",
	ErrInvalidPassword:        "0006",
	ErrProductNotFound:        "0101",
	ErrInsufficientStock:      "0102",
	ErrInvalidSalesPoint:      "0103",
	ErrEmptyLineItems:         "0104",
	ErrInvalidStateTransition: "0105",
	ErrAlreadyCancelled:       "0106",
	ErrRequestNotConfirmed:    "0201",
	ErrDeliveryAlreadyExists:  "0202",
	ErrDeliveryNotFound:       "0203",
	ErrDriverNotFound:         "0204",
	ErrPersistence:            "0301",
}
