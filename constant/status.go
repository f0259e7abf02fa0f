package constant

// RequestStatus is the lifecycle state of a distribution request.
// It only moves forward, except for cancellation of a request that is
// not yet in motion.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusInTransit RequestStatus = "in_transit"
	RequestStatusDelivered RequestStatus = "delivered"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// requestTransitions holds the allowed forward edges. Cancellation is
// only reachable while the request is not in motion; a cancellation
// cascaded from a delivery bypasses this table (see fulfillment).
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   {RequestStatusConfirmed, RequestStatusCancelled},
	RequestStatusConfirmed: {RequestStatusInTransit, RequestStatusCancelled},
	RequestStatusInTransit: {RequestStatusDelivered},
	RequestStatusDelivered: {},
	RequestStatusCancelled: {},
}

func (s RequestStatus) Valid() bool {
	_, ok := requestTransitions[s]
	return ok
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s RequestStatus) Terminal() bool {
	return len(requestTransitions[s]) == 0 && s.Valid()
}

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusDelivered AssignmentStatus = "delivered"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

// DeliveryStatus is the lifecycle state of a scheduled delivery.
type DeliveryStatus string

const (
	DeliveryStatusScheduled DeliveryStatus = "scheduled"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// The direct scheduled -> delivered edge is intentional: drivers often
// report a delivery only after completing it.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusScheduled: {DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusCancelled},
	DeliveryStatusInTransit: {DeliveryStatusDelivered, DeliveryStatusCancelled},
	DeliveryStatusDelivered: {},
	DeliveryStatusCancelled: {},
}

func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryTransitions[s]
	return ok
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequestPriority of a distribution request.
type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
)

func (p RequestPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
