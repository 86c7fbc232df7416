package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"venue_booking/model"
)

var errTaken = errors.New("taken")

func newRedisHoldStore(t *testing.T) *RedisHoldStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisHoldStore(rdb, 15*time.Minute)
}

func TestRedisHoldStoreAdmitsOneOfConcurrentOverlaps(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s := newRedisHoldStore(t)
	admitIfFree := func(active []model.Hold) error {
		if len(active) > 0 {
			return errTaken
		}
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted []string
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("h%02d", i)
			if err := s.Reserve(ctx, testHold(id, "10:00", "12:00", now), admitIfFree); err == nil {
				mu.Lock()
				admitted = append(admitted, id)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if len(admitted) != 1 {
		t.Fatalf("expected exactly one admitted hold, got %v", admitted)
	}
	active, err := s.Active(ctx, "2025-06-01", now.Add(time.Minute))
	if err != nil || len(active) != 1 || active[0].ID != admitted[0] {
		t.Fatalf("Active = %+v, %v", active, err)
	}
}

func TestRedisHoldStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s := newRedisHoldStore(t)
	admitAll := func([]model.Hold) error { return nil }

	if err := s.Reserve(ctx, testHold("a", "10:00", "11:00", now), admitAll); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	b := testHold("b", "15:00", "16:00", now.Add(time.Minute))
	b.Date = "2025-06-02"
	if err := s.Reserve(ctx, b, admitAll); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := s.Reserve(ctx, testHold("c", "10:30", "11:30", now), func([]model.Hold) error { return errTaken }); !errors.Is(err, errTaken) {
		t.Fatalf("expected admit error to surface, got %v", err)
	}
	if _, err := s.Get(ctx, "c"); !errors.Is(err, ErrHoldNotFound) {
		t.Fatalf("rejected hold was stored: %v", err)
	}

	h, err := s.Get(ctx, "a")
	if err != nil || h.StartTime != "10:00" || h.Status != model.HoldActive {
		t.Fatalf("Get = %+v, %v", h, err)
	}
	if h, err := s.Release(ctx, "a"); err != nil || h.Status != model.HoldReleased {
		t.Fatalf("Release = %+v, %v", h, err)
	}
	if active, _ := s.Active(ctx, "2025-06-01", now); len(active) != 0 {
		t.Fatalf("released hold still active: %+v", active)
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
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrHoldNotFound) {
		t.Fatalf("expected ErrHoldNotFound after purge, got %v", err)
	}
}
