package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type HoldStatus string

const (
	HoldActive    HoldStatus = "active"
	HoldConfirmed HoldStatus = "confirmed"
	HoldReleased  HoldStatus = "released"
	HoldExpired   HoldStatus = "expired"
)

// Hold reserves a venue range for a limited time while checkout and payment
// are in progress.
type Hold struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	FacilityName string          `gorm:"size:120;index:idx_hold_slot" json:"facilityName"`
	Date         string          `gorm:"size:10;index:idx_hold_slot" json:"date"`
	StartTime    string          `gorm:"size:5" json:"startTime"`
	EndTime      string          `gorm:"size:5" json:"endTime"`
	CustomerName string          `json:"customerName"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	OrderID      string          `gorm:"size:64;index" json:"orderId,omitempty"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Status       HoldStatus      `gorm:"size:16;index" json:"status"`
	ExpiresAt    time.Time       `gorm:"index" json:"expiresAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (Hold) TableName() string { return "venue_holds" }

// Blocking reports whether the hold still occupies its range at now.
func (h Hold) Blocking(now time.Time) bool {
	return h.Status == HoldActive && h.ExpiresAt.After(now)
}

// CreateHoldInput clock fields are checked by the range parser, which also
// accepts "24:00" as the end of the day.
type CreateHoldInput struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
	RoomName     string `json:"roomName" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	OrderID      string `json:"orderId"`
}

type HoldResponse struct {
	Hold   Hold   `json:"hold"`
	QRCode string `json:"qrCode,omitempty"`
}
