package domain

import "time"

// OrderStatus is the lifecycle state of an order. Orders are always
// created pending; there is no transition engine in this service.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order records a buyer's purchase of a service listing. Price is
// copied from the listing's base price at placement time.
type Order struct {
	ID           string      `json:"id"`
	ServiceID    string      `json:"service_id"`
	BuyerID      string      `json:"buyer_id"`
	CreatorID    string      `json:"creator_id"`
	Status       OrderStatus `json:"status"`
	Price        float64     `json:"price"`
	Requirements string      `json:"requirements"`
	DeliveryDate time.Time   `json:"delivery_date"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
