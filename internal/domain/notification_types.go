package domain

const (
	NotificationOrderCreated   string = "order_created"
	NotificationOrderUpdated   string = "order_updated"
	NotificationOrderCancelled string = "order_cancelled"
	NotificationOrderCompleted string = "order_completed"
)

// OrderPayload is the structured data attached to order notifications.
type OrderPayload struct {
	OrderID   int    `json:"orderId"`
	ServiceID int    `json:"serviceId"`
	PackageID int    `json:"packageId,omitempty"`
	Status    string `json:"status,omitempty"`
}
