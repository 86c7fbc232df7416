package helper

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"venue_booking/database"
	"venue_booking/model"
)

// VenueMatcher decides which line items are venue reservations.
type VenueMatcher struct {
	keywords []string
}

func NewVenueMatcher(keywords []string) VenueMatcher {
	m := VenueMatcher{}
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			m.keywords = append(m.keywords, k)
		}
	}
	return m
}

func DefaultVenueMatcher() VenueMatcher {
	return NewVenueMatcher([]string{"Venue", "Hall", "Room", "Booking"})
}

// IsVenueItem is true when the item name carries a venue keyword or the item
// has a full schedule attached.
func (m VenueMatcher) IsVenueItem(item model.LineItem) bool {
	name := strings.ToLower(item.Name)
	for _, k := range m.keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return item.Details.HasSchedule()
}

// BookingProjector derives venue bookings from confirmed orders. Nothing is
// cached: every call reads the order store again.
type BookingProjector struct {
	store database.OrderStore
	venue VenueMatcher
}

func NewBookingProjector(store database.OrderStore, venue VenueMatcher) *BookingProjector {
	return &BookingProjector{store: store, venue: venue}
}

func (p *BookingProjector) Project(ctx context.Context, q database.OrderQuery) ([]model.Booking, error) {
	orders, err := p.store.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	bookings := make([]model.Booking, 0)
	for _, o := range orders {
		if !o.Confirmed() {
			continue
		}
		ref, status := o.Reference(), string(o.CanonicalStatus())
		for i, item := range o.Items {
			if !p.venue.IsVenueItem(item) {
				continue
			}
			b := model.Booking{
				ID:           fmt.Sprintf("%s-%d", o.ID, i),
				OrderID:      o.ID,
				BookingRef:   ref,
				CustomerName: o.CustomerName,
				FacilityName: item.Name,
				Status:       status,
				Price:        item.Price,
				Quantity:     item.Quantity,
				CreatedAt:    o.CreatedAt,
			}
			if d := item.Details; d != nil {
				b.Date, b.StartTime, b.EndTime, b.Guests = d.Date, d.StartTime, d.EndTime, d.Guests
			}
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

// ProjectSorted is Project ordered newest first, for listings.
func (p *BookingProjector) ProjectSorted(ctx context.Context, q database.OrderQuery) ([]model.Booking, error) {
	bookings, err := p.Project(ctx, q)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func FilterByDate(bookings []model.Booking, date string) []model.Booking {
	if date == "" {
		return bookings
	}
	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

func ToView(b model.Booking) model.BookingView {
	return model.BookingView{
		ID:        b.ID,
		BookingID: b.BookingRef,
		Name:      b.CustomerName,
		Facility:  b.FacilityName,
		Date:      b.Date,
		Time:      FormatRange12h(b.StartTime, b.EndTime),
		Status:    b.Status,
		Price:     b.Price,
		Quantity:  b.Quantity,
		CreatedAt: b.CreatedAt,
	}
}

func ToViews(bookings []model.Booking) []model.BookingView {
	views := make([]model.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, ToView(b))
	}
	return views
}
