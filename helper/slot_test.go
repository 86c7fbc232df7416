package helper

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"venue_booking/model"
)

func TestGenerateSlotsDefaultGrid(t *testing.T) {
	slots, err := GenerateSlots("2025-06-01", DefaultSlotGrid())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 13 {
		t.Fatalf("expected 13 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00" || slots[12].EndTime != "22:00" {
		t.Fatalf("grid should cover 09:00-22:00, got %s-%s", slots[0].StartTime, slots[12].EndTime)
	}
	for i, s := range slots {
		if s.Status != model.SlotAvailable {
			t.Fatalf("slot %d should start available, got %s", i, s.Status)
		}
		if s.Price != 1500 {
			t.Fatalf("slot %d price = %v", i, s.Price)
		}
		start, end, err := ParseRange(s.StartTime, s.EndTime)
		if err != nil || end-start != 60 || start != s.Hour*60 {
			t.Fatalf("slot %d is not one hour at its hour: %+v", i, s)
		}
		if i > 0 && slots[i-1].EndTime != s.StartTime {
			t.Fatalf("slots %d and %d are not contiguous", i-1, i)
		}
	}
	if slots[0].Label != "9:00 AM - 10:00 AM" {
		t.Fatalf("unexpected label %q", slots[0].Label)
	}
}

func TestGenerateSlotsInvalidDate(t *testing.T) {
	for _, d := range []string{"", "2025-13-01", "01/06/2025", "2025-02-30"} {
		if _, err := GenerateSlots(d, DefaultSlotGrid()); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("GenerateSlots(%q) expected ErrInvalidDate, got %v", d, err)
		}
	}
}

func TestSlotGridValidate(t *testing.T) {
	bad := []SlotGrid{
		{OpenHour: 22, CloseHour: 9},
		{OpenHour: 9, CloseHour: 9},
		{OpenHour: -1, CloseHour: 5},
		{OpenHour: 9, CloseHour: 25},
		{OpenHour: 9, CloseHour: 22, Price: decimal.NewFromInt(-1)},
	}
	for _, g := range bad {
		if err := g.Validate(); err == nil {
			t.Fatalf("expected %+v to be rejected", g)
		}
	}
	if err := DefaultSlotGrid().Validate(); err != nil {
		t.Fatalf("default grid rejected: %v", err)
	}
}

func TestHoldAmount(t *testing.T) {
	hourly := decimal.NewFromInt(1500)
	if got := HoldAmount(600, 720, hourly); !got.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("two hours should cost 3000, got %s", got)
	}
	if got := HoldAmount(600, 645, hourly); !got.Equal(decimal.NewFromInt(1125)) {
		t.Fatalf("45 minutes should cost 1125, got %s", got)
	}
	if got := HoldAmount(600, 600, hourly); !got.IsZero() {
		t.Fatalf("empty range should cost nothing, got %s", got)
	}
}

func TestMatchesRoomAndLocation(t *testing.T) {
	if !MatchesRoom("Grand Hall Booking", "Grand Hall Booking") {
		t.Fatalf("room should match itself")
	}
	if !MatchesRoom("Grand Hall Booking", "Grand Hall") {
		t.Fatalf("room should match without suffix")
	}
	if MatchesRoom("Grand Hall Booking", "grand hall") {
		t.Fatalf("room match is case-sensitive")
	}
	if MatchesRoom("Garden Room", "Grand Hall") {
		t.Fatalf("different rooms must not match")
	}
	if !MatchesLocation("Grand Hall Booking", "grand-hall") || !MatchesLocation("Grand Hall Booking", "GRAND HALL") {
		t.Fatalf("location should match by slug")
	}
	if !MatchesLocation("Garden Room", "") {
		t.Fatalf("empty location matches everything")
	}
	if MatchesLocation("Garden Room", "grand-hall") {
		t.Fatalf("unexpected location match")
	}
}
