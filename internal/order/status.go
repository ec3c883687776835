package order

import "fmt"

type Status string

const (
	StatusCancelled  Status = "Cancelled"
	StatusAccepted   Status = "Accepted"
	StatusProcessing Status = "Processing"
	StatusAssembling Status = "Assembling"
	StatusDelivering Status = "Delivering"
	StatusDelivered  Status = "Delivered"
)

var AllStatuses = []Status{
	StatusCancelled,
	StatusAccepted,
	StatusProcessing,
	StatusAssembling,
	StatusDelivering,
	StatusDelivered,
}

// next lists the forward step for each status.
var next = map[Status]Status{
	StatusAccepted:   StatusProcessing,
	StatusProcessing: StatusAssembling,
	StatusAssembling: StatusDelivering,
	StatusDelivering: StatusDelivered,
}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
	return s, nil
}

// CanTransitionTo allows staying put, one step forward, or cancelling an
// order that has not been delivered yet.
func (s Status) CanTransitionTo(to Status) bool {
	if s == to {
		return true
	}
	if to == StatusCancelled {
		return s != StatusDelivered
	}
	return next[s] == to
}
