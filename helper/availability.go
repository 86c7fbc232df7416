package helper

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/copier"
	"github.com/jonboulle/clockwork"

	"venue_booking/constants"
	"venue_booking/database"
	"venue_booking/metrics"
	"venue_booking/model"
)

const DefaultBufferMinutes = 120

// Conflicts applies the post-event buffer to the end of the existing booking
// only. A new range may end right where an existing booking starts.
func Conflicts(reqStart, reqEnd, bookedStart, bookedEnd, bufferMinutes int) bool {
	return reqStart < bookedEnd+bufferMinutes && reqEnd > bookedStart
}

func ConflictMessage(bufferMinutes int) string {
	length := fmt.Sprintf("%d-minute", bufferMinutes)
	if bufferMinutes%60 == 0 {
		length = fmt.Sprintf("%d-hour", bufferMinutes/60)
	}
	return fmt.Sprintf(constants.SLOT_CONFLICT_MESSAGE, length)
}

type CheckerConfig struct {
	Grid          SlotGrid
	BufferMinutes int
	Location      *time.Location
	Clock         clockwork.Clock
}

// AvailabilityChecker annotates the slot grid and answers range checks
// against confirmed bookings and active holds.
type AvailabilityChecker struct {
	projector *BookingProjector
	holds     database.HoldStore
	grid      SlotGrid
	buffer    int
	loc       *time.Location
	clock     clockwork.Clock
	metrics   *metrics.Registry
}

func NewAvailabilityChecker(projector *BookingProjector, holds database.HoldStore, cfg CheckerConfig, reg *metrics.Registry) *AvailabilityChecker {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &AvailabilityChecker{
		projector: projector,
		holds:     holds,
		grid:      cfg.Grid,
		buffer:    cfg.BufferMinutes,
		loc:       cfg.Location,
		clock:     cfg.Clock,
		metrics:   reg,
	}
}

func (c *AvailabilityChecker) Now() time.Time { return c.clock.Now().In(c.loc) }

func (c *AvailabilityChecker) Location() *time.Location { return c.loc }

func (c *AvailabilityChecker) Grid() SlotGrid { return c.grid }

func (c *AvailabilityChecker) Projector() *BookingProjector { return c.projector }

// Slots returns the grid for date with every slot marked past, booked or available.
func (c *AvailabilityChecker) Slots(ctx context.Context, date, location string) ([]model.Slot, error) {
	c.metrics.SlotGridRequests.Inc()

	slots, err := GenerateSlots(date, c.grid)
	if err != nil {
		return nil, err
	}
	day, err := ParseDate(date, c.loc)
	if err != nil {
		return nil, err
	}

	match := func(facility string) bool { return MatchesLocation(facility, location) }
	blocking, err := c.blockingRanges(ctx, date, match, "")
	if err != nil {
		return nil, err
	}

	now := c.Now()
	for i := range slots {
		start, end := slots[i].Hour*60, (slots[i].Hour+1)*60
		switch {
		case !At(day, end).After(now):
			slots[i].Status = model.SlotPast
		case c.firstConflict(blocking, start, end) != nil:
			slots[i].Status = model.SlotBooked
		}
	}
	return slots, nil
}

// Check decides whether req may be booked. Invalid input and store failures
// come back as errors, never as an available result.
func (c *AvailabilityChecker) Check(ctx context.Context, req model.AvailabilityRequest) (model.AvailabilityResult, error) {
	started := time.Now()
	defer func() { c.metrics.CheckLatencySec.Observe(time.Since(started).Seconds()) }()

	result, err := c.check(ctx, req)
	switch {
	case err != nil:
		c.metrics.AvailabilityChecks.WithLabelValues(metrics.ResultError).Inc()
	case result.Available:
		c.metrics.AvailabilityChecks.WithLabelValues(metrics.ResultAvailable).Inc()
	default:
		c.metrics.AvailabilityChecks.WithLabelValues(metrics.ResultConflict).Inc()
	}
	return result, err
}

func (c *AvailabilityChecker) check(ctx context.Context, req model.AvailabilityRequest) (model.AvailabilityResult, error) {
	if _, err := ParseDate(req.Date, c.loc); err != nil {
		return model.AvailabilityResult{}, err
	}
	start, end, err := ParseRange(req.StartTime, req.EndTime)
	if err != nil {
		return model.AvailabilityResult{}, err
	}

	match := func(facility string) bool { return MatchesRoom(facility, req.RoomName) }
	blocking, err := c.blockingRanges(ctx, req.Date, match, req.HoldID)
	if err != nil {
		return model.AvailabilityResult{}, err
	}
	if b := c.firstConflict(blocking, start, end); b != nil {
		return model.AvailabilityResult{Available: false, Message: ConflictMessage(c.buffer)}, nil
	}
	return model.AvailabilityResult{Available: true}, nil
}

// Admit builds the admission rule a HoldStore runs while it holds the date
// lock: confirmed bookings are re-read, then combined with the active holds
// the store passes in.
func (c *AvailabilityChecker) Admit(ctx context.Context, date, roomName string, start, end int) database.AdmitFunc {
	return func(active []model.Hold) error {
		bookings, err := c.confirmedBookings(ctx)
		if err != nil {
			return err
		}
		match := func(facility string) bool { return MatchesRoom(facility, roomName) }
		blocking := c.merge(bookings, active, date, match, "")
		if b := c.firstConflict(blocking, start, end); b != nil {
			return fmt.Errorf("%w: %s %s-%s", ErrSlotConflict, b.FacilityName, b.StartTime, b.EndTime)
		}
		return nil
	}
}

func (c *AvailabilityChecker) confirmedBookings(ctx context.Context) ([]model.Booking, error) {
	bookings, err := c.projector.Project(ctx, database.OrderQuery{})
	if err != nil {
		c.metrics.StoreErrors.Inc()
		log.Printf("Order store read failed: %v", err)
		return nil, err
	}
	return bookings, nil
}

func (c *AvailabilityChecker) blockingRanges(ctx context.Context, date string, match func(string) bool, excludeHold string) ([]blockingRange, error) {
	bookings, err := c.confirmedBookings(ctx)
	if err != nil {
		return nil, err
	}
	holds, err := c.holds.Active(ctx, date, c.Now())
	if err != nil {
		c.metrics.StoreErrors.Inc()
		log.Printf("Hold store read failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return c.merge(bookings, holds, date, match, excludeHold), nil
}

// blockingRange is a booking or hold placed on the day's timeline in
// minutes since midnight.
type blockingRange struct {
	model.Booking
	start, end int
}

// merge keeps the bookings on date that match, and appends the active holds
// that still stand on their own. A hold whose order is already confirmed is
// represented by that booking. Entries with unparseable times are logged once
// and dropped.
func (c *AvailabilityChecker) merge(bookings []model.Booking, holds []model.Hold, date string, match func(string) bool, excludeHold string) []blockingRange {
	confirmedOrders := make(map[string]bool, len(bookings))
	out := make([]blockingRange, 0, len(bookings)+len(holds))
	place := func(b model.Booking) {
		start, end, err := ParseRange(b.StartTime, b.EndTime)
		if err != nil {
			log.Printf("Skipping booking %s with bad time range: %v", b.ID, err)
			return
		}
		out = append(out, blockingRange{Booking: b, start: start, end: end})
	}

	for _, b := range bookings {
		confirmedOrders[b.OrderID] = true
		if b.Date == date && match(b.FacilityName) {
			place(b)
		}
	}

	now := c.Now()
	for _, h := range holds {
		if h.ID == excludeHold || h.Date != date || !h.Blocking(now) || !match(h.FacilityName) {
			continue
		}
		if h.OrderID != "" && confirmedOrders[h.OrderID] {
			continue
		}
		b, err := holdAsBooking(h)
		if err != nil {
			log.Printf("Skipping hold %s: %v", h.ID, err)
			continue
		}
		place(b)
	}
	return out
}

func holdAsBooking(h model.Hold) (model.Booking, error) {
	var b model.Booking
	if err := copier.Copy(&b, &h); err != nil {
		return model.Booking{}, err
	}
	b.BookingRef = h.ID
	b.Price = h.Amount.InexactFloat64()
	b.Quantity = 1
	return b, nil
}

// firstConflict returns the first range that blocks [start, end), or nil.
func (c *AvailabilityChecker) firstConflict(blocking []blockingRange, start, end int) *blockingRange {
	for i := range blocking {
		if Conflicts(start, end, blocking[i].start, blocking[i].end, c.buffer) {
			return &blocking[i]
		}
	}
	return nil
}
