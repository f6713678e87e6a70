package domain

const (
	OrderStatusPending    string = "pending"
	OrderStatusAccepted   string = "accepted"
	OrderStatusRejected   string = "rejected"
	OrderStatusInProgress string = "in_progress"
	OrderStatusCompleted  string = "completed"
	OrderStatusCancelled  string = "cancelled"
)

const (
	PaymentStatusPending  string = "pending"
	PaymentStatusPaid     string = "paid"
	PaymentStatusRefunded string = "refunded"
)

// sellerTransitions is the adjacency table of the seller-driven chain.
// Cancellation is a separate buyer operation and is not listed here.
var sellerTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusAccepted, OrderStatusRejected},
	OrderStatusAccepted:   {OrderStatusInProgress},
	OrderStatusInProgress: {OrderStatusCompleted},
}

var cancellable = map[string]struct{}{
	OrderStatusPending:    {},
	OrderStatusAccepted:   {},
	OrderStatusInProgress: {},
}

func IsKnownOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected,
		OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func IsTerminalOrderStatus(status string) bool {
	switch status {
	case OrderStatusRejected, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether the seller may move an order from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range sellerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckCancel returns nil when an order in the given status can be cancelled by its buyer.
func CheckCancel(status string) error {
	switch status {
	case OrderStatusCancelled:
		return Conflict("order is already cancelled")
	case OrderStatusCompleted:
		return Conflict("cannot cancel a completed order")
	}
	if _, ok := cancellable[status]; !ok {
		return &TransitionError{From: status, To: OrderStatusCancelled}
	}
	return nil
}

// IsDeletable reports whether the buyer may still remove the order.
// Paid or actioned orders carry reviews and seller statistics and stay.
func IsDeletable(o *Order) bool {
	if o.PaymentStatus == PaymentStatusPaid {
		return false
	}
	switch o.Status {
	case OrderStatusPending, OrderStatusCancelled, OrderStatusRejected:
		return true
	}
	return false
}
