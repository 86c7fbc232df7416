package model

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderSuccess   OrderStatus = "success"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
	OrderUnknown   OrderStatus = "unknown"
)

// ParseOrderStatus maps the free-text status written by checkout and payment
// callbacks onto the closed set. Anything unrecognised is OrderUnknown.
func ParseOrderStatus(s string) OrderStatus {
	switch st := OrderStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case OrderPending, OrderPaid, OrderSuccess, OrderConfirmed, OrderCompleted,
		OrderFailed, OrderCancelled, OrderRefunded:
		return st
	case "canceled":
		return OrderCancelled
	default:
		return OrderUnknown
	}
}

func (s OrderStatus) IsConfirmed() bool {
	switch s {
	case OrderPaid, OrderSuccess, OrderConfirmed, OrderCompleted:
		return true
	}
	return false
}

type ItemDetails struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Guests    int    `json:"guests"`
}

// HasSchedule reports whether the details carry a full date and time range.
func (d *ItemDetails) HasSchedule() bool {
	return d != nil && d.Date != "" && d.StartTime != "" && d.EndTime != ""
}

type LineItem struct {
	ID       string       `json:"id,omitempty"`
	Product  string       `json:"product,omitempty"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Quantity int          `json:"quantity"`
	Details  *ItemDetails `json:"details,omitempty"`
}

type Order struct {
	ID            string     `gorm:"primaryKey;size:64" json:"id"`
	PublicCode    string     `gorm:"size:20;index" json:"publicCode,omitempty"`
	Items         []LineItem `gorm:"type:jsonb;serializer:json" json:"items"`
	PaymentStatus string     `gorm:"size:32" json:"paymentStatus"`
	Status        string     `gorm:"size:32" json:"status"`
	CustomerName  string     `json:"customerName"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Confirmed is the one predicate deciding whether an order counts as a
// confirmed purchase. Either status field may carry the confirmation.
func (o Order) Confirmed() bool {
	return ParseOrderStatus(o.PaymentStatus).IsConfirmed() || ParseOrderStatus(o.Status).IsConfirmed()
}

// CanonicalStatus returns the status used for display: the confirmed one if
// any, otherwise the payment status, otherwise the order status.
func (o Order) CanonicalStatus() OrderStatus {
	pay, st := ParseOrderStatus(o.PaymentStatus), ParseOrderStatus(o.Status)
	switch {
	case pay.IsConfirmed():
		return pay
	case st.IsConfirmed():
		return st
	case pay != OrderUnknown:
		return pay
	}
	return st
}

// Reference is the human-facing order code.
func (o Order) Reference() string {
	if o.PublicCode != "" {
		return o.PublicCode
	}
	id := o.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return "ORD-" + strings.ToUpper(id)
}
