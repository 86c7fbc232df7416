package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"venue_booking/model"
)

// DemoOrders is a small mixed order book: confirmed and failed venue
// bookings next to non-venue purchases.
func DemoOrders(day time.Time) []model.Order {
	date := day.Format("2006-01-02")
	return []model.Order{
		{
			ID:            "65f1c2d3e4a5b6c7d8e9f0a1",
			PaymentStatus: "paid",
			Status:        "confirmed",
			CustomerName:  "Nguyen Van An",
			Phone:         "0901234567",
			Email:         "an.nguyen@example.com",
			CreatedAt:     day.Add(-48 * time.Hour),
			Items: []model.LineItem{
				{ID: "venue-grand-hall", Name: "Grand Hall Booking", Price: 1500, Quantity: 1,
					Details: &model.ItemDetails{Date: date, StartTime: "10:00", EndTime: "12:00", Guests: 80}},
				{ID: "ride-ferris", Name: "Ferris Wheel Ticket", Price: 120, Quantity: 2},
			},
		},
		{
			ID:            "65f1c2d3e4a5b6c7d8e9f0b2",
			PublicCode:    "ORD-GARDEN01",
			PaymentStatus: "success",
			CustomerName:  "Tran Thi Binh",
			Email:         "binh.tran@example.com",
			CreatedAt:     day.Add(-24 * time.Hour),
			Items: []model.LineItem{
				{ID: "venue-garden-room", Name: "Garden Room", Price: 900, Quantity: 1,
					Details: &model.ItemDetails{Date: date, StartTime: "18:00", EndTime: "20:00", Guests: 30}},
			},
		},
		{
			ID:            "65f1c2d3e4a5b6c7d8e9f0c3",
			PaymentStatus: "failed",
			Status:        "failed",
			CustomerName:  "Le Van Cuong",
			CreatedAt:     day.Add(-12 * time.Hour),
			Items: []model.LineItem{
				{ID: "venue-grand-hall", Name: "Grand Hall Booking", Price: 1500, Quantity: 1,
					Details: &model.ItemDetails{Date: date, StartTime: "15:00", EndTime: "17:00", Guests: 40}},
			},
		},
		{
			ID:            "65f1c2d3e4a5b6c7d8e9f0d4",
			PaymentStatus: "paid",
			CustomerName:  "Pham Thi Dung",
			CreatedAt:     day.Add(-6 * time.Hour),
			Items: []model.LineItem{
				{ID: "dining-noodle", Name: "Noodle Stall Voucher", Price: 60, Quantity: 3},
			},
		},
	}
}

func SeedData(db *gorm.DB) {
	for _, order := range DemoOrders(time.Now()) {
		if err := db.Where(model.Order{ID: order.ID}).FirstOrCreate(&order).Error; err != nil {
			log.Println("failed to seed data for order:", order.ID, "error:", err)
		}
	}
}
