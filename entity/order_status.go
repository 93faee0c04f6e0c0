package entity

const (
	OrderPending        = "pending"
	OrderInProgress     = "in progress"
	OrderOutForDelivery = "out for delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderInProgress, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
