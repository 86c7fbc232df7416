package helper

import (
	"fmt"

	"github.com/shopspring/decimal"

	"venue_booking/model"
)

// SlotGrid describes the venue's operating window. Slots are one hour each,
// from OpenHour (inclusive) to CloseHour (exclusive).
type SlotGrid struct {
	OpenHour  int
	CloseHour int
	Price     decimal.Decimal
}

func DefaultSlotGrid() SlotGrid {
	return SlotGrid{OpenHour: 9, CloseHour: 22, Price: decimal.NewFromInt(1500)}
}

func (g SlotGrid) Validate() error {
	if g.OpenHour < 0 || g.CloseHour > 24 || g.OpenHour >= g.CloseHour {
		return fmt.Errorf("invalid operating hours %d-%d", g.OpenHour, g.CloseHour)
	}
	if g.Price.IsNegative() {
		return fmt.Errorf("slot price must not be negative: %s", g.Price)
	}
	return nil
}

// GenerateSlots returns the contiguous hourly grid for date. Every slot
// starts out available; status annotation happens in AvailabilityChecker.
func GenerateSlots(date string, g SlotGrid) ([]model.Slot, error) {
	if _, err := ParseDate(date, nil); err != nil {
		return nil, err
	}
	price := g.Price.InexactFloat64()
	slots := make([]model.Slot, 0, g.CloseHour-g.OpenHour)
	for h := g.OpenHour; h < g.CloseHour; h++ {
		start, end := FormatClock(h*60), FormatClock((h+1)*60)
		slots = append(slots, model.Slot{
			Hour:      h,
			StartTime: start,
			EndTime:   end,
			Label:     FormatRange12h(start, end),
			Status:    model.SlotAvailable,
			Price:     price,
		})
	}
	return slots, nil
}
