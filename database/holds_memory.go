package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"venue_booking/model"
)

// MemoryHoldStore keeps holds in process. Used with the file order store,
// where there is no database to put them in.
type MemoryHoldStore struct {
	mu    sync.Mutex
	holds map[string]model.Hold
}

func NewMemoryHoldStore() *MemoryHoldStore {
	return &MemoryHoldStore{holds: make(map[string]model.Hold)}
}

func (s *MemoryHoldStore) Reserve(ctx context.Context, hold *model.Hold, admit AdmitFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := admit(s.activeLocked(hold.Date, hold.CreatedAt)); err != nil {
		return err
	}
	s.holds[hold.ID] = *hold
	return nil
}

func (s *MemoryHoldStore) Active(ctx context.Context, date string, now time.Time) ([]model.Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked(date, now), ctx.Err()
}

func (s *MemoryHoldStore) activeLocked(date string, now time.Time) []model.Hold {
	var out []model.Hold
	for _, h := range s.holds {
		if h.Date == date && h.Blocking(now) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *MemoryHoldStore) Get(ctx context.Context, id string) (*model.Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holds[id]
	if !ok {
		return nil, ErrHoldNotFound
	}
	return &h, nil
}

func (s *MemoryHoldStore) Release(ctx context.Context, id string) (*model.Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holds[id]
	if !ok {
		return nil, ErrHoldNotFound
	}
	if h.Status == model.HoldActive {
		h.Status = model.HoldReleased
		h.UpdatedAt = time.Now()
		s.holds[id] = h
	}
	return &h, nil
}

func (s *MemoryHoldStore) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, h := range s.holds {
		if h.Status == model.HoldActive && !h.ExpiresAt.After(now) {
			h.Status = model.HoldExpired
			h.UpdatedAt = now
			s.holds[id] = h
			n++
		}
	}
	return n, nil
}

func (s *MemoryHoldStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, h := range s.holds {
		if h.Status != model.HoldActive && h.ExpiresAt.Before(before) {
			delete(s.holds, id)
			n++
		}
	}
	return n, nil
}
