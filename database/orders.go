package database

import (
	"context"

	"venue_booking/model"
)

// OrderQuery is an optional equality filter on one order field. The zero
// value matches every order.
type OrderQuery struct {
	Field string
	Value string
}

func (q OrderQuery) IsZero() bool { return q.Field == "" }

// OrderStore is the read-only order capability the booking engine consumes.
type OrderStore interface {
	Find(ctx context.Context, q OrderQuery) ([]model.Order, error)
}

// orderColumns maps query fields to storage columns. Fields not listed here
// cannot be filtered on.
var orderColumns = map[string]string{
	"id":            "id",
	"publicCode":    "public_code",
	"status":        "status",
	"paymentStatus": "payment_status",
	"email":         "email",
	"phone":         "phone",
}

func columnFor(field string) (string, bool) {
	col, ok := orderColumns[field]
	return col, ok
}

// fieldValue reads the field an OrderQuery names, for stores that filter in memory.
func fieldValue(o model.Order, field string) string {
	switch field {
	case "id":
		return o.ID
	case "publicCode":
		return o.PublicCode
	case "status":
		return o.Status
	case "paymentStatus":
		return o.PaymentStatus
	case "email":
		return o.Email
	case "phone":
		return o.Phone
	}
	return ""
}
