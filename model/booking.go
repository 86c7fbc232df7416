package model

import "time"

// Booking is a projection of one venue line item of a confirmed order.
type Booking struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	BookingRef   string    `json:"bookingRef"`
	CustomerName string    `json:"customerName"`
	FacilityName string    `json:"facilityName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Guests       int       `json:"guests"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingView is the admin listing row.
type BookingView struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Name      string    `json:"name"`
	Facility  string    `json:"facility"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
