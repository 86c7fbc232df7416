package helper

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"venue_booking/database"
	"venue_booking/metrics"
	"venue_booking/model"
	"venue_booking/utils"
)

var ict = time.FixedZone("ICT", 7*3600)

const testDate = "2025-06-01"

func venueOrder(id, payment, facility, date, start, end string) model.Order {
	return model.Order{
		ID:            id,
		PaymentStatus: payment,
		CustomerName:  "Customer " + id,
		CreatedAt:     time.Date(2025, 5, 20, 9, 0, 0, 0, ict),
		Items: []model.LineItem{{
			Name:     facility,
			Price:    1500,
			Quantity: 1,
			Details:  &model.ItemDetails{Date: date, StartTime: start, EndTime: end, Guests: 50},
		}},
	}
}

func fileStore(t *testing.T, orders ...model.Order) database.OrderStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	if orders == nil {
		orders = []model.Order{}
	}
	if err := database.WriteOrdersFile(path, orders); err != nil {
		t.Fatalf("write orders: %v", err)
	}
	return database.NewFileOrderStore(path)
}

type failingStore struct{}

func (failingStore) Find(context.Context, database.OrderQuery) ([]model.Order, error) {
	return nil, errors.New("connection refused")
}

func newChecker(store database.OrderStore, holds database.HoldStore, clock clockwork.Clock) *AvailabilityChecker {
	return NewAvailabilityChecker(
		NewBookingProjector(store, DefaultVenueMatcher()),
		holds,
		CheckerConfig{Grid: DefaultSlotGrid(), BufferMinutes: DefaultBufferMinutes, Location: ict, Clock: clock},
		metrics.NewRegistry(),
	)
}

type recordingMailer struct {
	sent []utils.HoldConfirmationData
}

func (m *recordingMailer) SendHoldConfirmation(to string, data utils.HoldConfirmationData) {
	m.sent = append(m.sent, data)
}
