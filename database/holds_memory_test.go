package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"venue_booking/model"
)

func testHold(id, start, end string, now time.Time) *model.Hold {
	return &model.Hold{
		ID: id, FacilityName: "Grand Hall Booking", Date: "2025-06-01",
		StartTime: start, EndTime: end, Status: model.HoldActive,
		CreatedAt: now, UpdatedAt: now, ExpiresAt: now.Add(15 * time.Minute),
	}
}

func TestMemoryHoldStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s := NewMemoryHoldStore()
	admitAll := func([]model.Hold) error { return nil }

	if err := s.Reserve(ctx, testHold("a", "10:00", "11:00", now), admitAll); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := s.Reserve(ctx, testHold("b", "15:00", "16:00", now.Add(time.Minute)), admitAll); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	active, err := s.Active(ctx, "2025-06-01", now.Add(2*time.Minute))
	if err != nil || len(active) != 2 || active[0].ID != "a" {
		t.Fatalf("Active = %+v, %v", active, err)
	}
	if other, _ := s.Active(ctx, "2025-06-02", now); len(other) != 0 {
		t.Fatalf("holds leaked across dates")
	}

	if h, err := s.Release(ctx, "a"); err != nil || h.Status != model.HoldReleased {
		t.Fatalf("Release = %+v, %v", h, err)
	}
	if _, err := s.Get(ctx, "zzz"); !errors.Is(err, ErrHoldNotFound) {
		t.Fatalf("expected ErrHoldNotFound, got %v", err)
	}

	n, err := s.ExpireStale(ctx, now.Add(20*time.Minute))
	if err != nil || n != 1 {
		t.Fatalf("ExpireStale = %d, %v", n, err)
	}
	if h, _ := s.Get(ctx, "b"); h.Status != model.HoldExpired {
		t.Fatalf("hold b should be expired, got %s", h.Status)
	}

	n, err = s.Purge(ctx, now.Add(24*time.Hour))
	if err != nil || n != 2 {
		t.Fatalf("Purge = %d, %v", n, err)
	}
}

func TestMemoryHoldStoreSerializesAdmission(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s := NewMemoryHoldStore()
	onlyOne := func(active []model.Hold) error {
		if len(active) > 0 {
			return errors.New("taken")
		}
		return nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := testHold(string(rune('a'+i)), "10:00", "11:00", now)
			if err := s.Reserve(ctx, h, onlyOne); err == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if admitted != 1 {
		t.Fatalf("expected exactly one admitted hold, got %d", admitted)
	}
}

func TestMemoryHoldStoreRejectedByAdmit(t *testing.T) {
	s := NewMemoryHoldStore()
	now := time.Now()
	want := errors.New("conflict")
	if err := s.Reserve(context.Background(), testHold("a", "10:00", "11:00", now), func([]model.Hold) error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected admit error, got %v", err)
	}
	if _, err := s.Get(context.Background(), "a"); !errors.Is(err, ErrHoldNotFound) {
		t.Fatalf("rejected hold must not be stored")
	}
}
