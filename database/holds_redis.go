package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"venue_booking/model"
)

const maxTxAttempts = 3

// RedisHoldStore keeps one hash per date (holds:<date>, field = hold id) and
// an index key per hold pointing at its date. Reserve runs under WATCH on the
// date hash and retries when another writer got there first.
type RedisHoldStore struct {
	rdb    *redis.Client
	keyTTL time.Duration
}

func NewRedisHoldStore(rdb *redis.Client, holdTTL time.Duration) *RedisHoldStore {
	return &RedisHoldStore{rdb: rdb, keyTTL: holdTTL + 24*time.Hour}
}

func dateKey(date string) string { return "holds:" + date }
func indexKey(id string) string  { return "hold:" + id }

func decodeHolds(vals map[string]string) ([]model.Hold, error) {
	holds := make([]model.Hold, 0, len(vals))
	for id, raw := range vals {
		var h model.Hold
		if err := json.Unmarshal([]byte(raw), &h); err != nil {
			return nil, fmt.Errorf("decode hold %s: %w", id, err)
		}
		holds = append(holds, h)
	}
	sort.Slice(holds, func(i, j int) bool { return holds[i].CreatedAt.Before(holds[j].CreatedAt) })
	return holds, nil
}

func blocking(holds []model.Hold, now time.Time) []model.Hold {
	out := holds[:0]
	for _, h := range holds {
		if h.Blocking(now) {
			out = append(out, h)
		}
	}
	return out
}

func (s *RedisHoldStore) Reserve(ctx context.Context, hold *model.Hold, admit AdmitFunc) error {
	key := dateKey(hold.Date)
	payload, err := json.Marshal(hold)
	if err != nil {
		return err
	}
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = s.rdb.Watch(ctx, func(tx *redis.Tx) error {
			vals, err := tx.HGetAll(ctx, key).Result()
			if err != nil {
				return err
			}
			holds, err := decodeHolds(vals)
			if err != nil {
				return err
			}
			if err := admit(blocking(holds, hold.CreatedAt)); err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HSet(ctx, key, hold.ID, payload)
				pipe.Expire(ctx, key, s.keyTTL)
				pipe.Set(ctx, indexKey(hold.ID), hold.Date, s.keyTTL)
				return nil
			})
			return err
		}, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("reserve hold on %s: %w", key, err)
}

func (s *RedisHoldStore) Active(ctx context.Context, date string, now time.Time) ([]model.Hold, error) {
	vals, err := s.rdb.HGetAll(ctx, dateKey(date)).Result()
	if err != nil {
		return nil, err
	}
	holds, err := decodeHolds(vals)
	if err != nil {
		return nil, err
	}
	return blocking(holds, now), nil
}

func (s *RedisHoldStore) Get(ctx context.Context, id string) (*model.Hold, error) {
	date, err := s.rdb.Get(ctx, indexKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, err
	}
	raw, err := s.rdb.HGet(ctx, dateKey(date), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, err
	}
	var h model.Hold
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, fmt.Errorf("decode hold %s: %w", id, err)
	}
	return &h, nil
}

func (s *RedisHoldStore) Release(ctx context.Context, id string) (*model.Hold, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.Status != model.HoldActive {
		return h, nil
	}
	h.Status = model.HoldReleased
	h.UpdatedAt = time.Now()
	if err := s.put(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *RedisHoldStore) put(ctx context.Context, h *model.Hold) error {
	payload, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, dateKey(h.Date), h.ID, payload).Err()
}

// scanDates walks every holds:<date> hash and calls fn with its decoded holds.
func (s *RedisHoldStore) scanDates(ctx context.Context, fn func(key string, holds []model.Hold) error) error {
	iter := s.rdb.Scan(ctx, 0, "holds:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		vals, err := s.rdb.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		holds, err := decodeHolds(vals)
		if err != nil {
			return err
		}
		if err := fn(key, holds); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *RedisHoldStore) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := s.scanDates(ctx, func(_ string, holds []model.Hold) error {
		for i := range holds {
			h := &holds[i]
			if h.Status != model.HoldActive || h.ExpiresAt.After(now) {
				continue
			}
			h.Status = model.HoldExpired
			h.UpdatedAt = now
			if err := s.put(ctx, h); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	return n, err
}

func (s *RedisHoldStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	err := s.scanDates(ctx, func(key string, holds []model.Hold) error {
		for _, h := range holds {
			if h.Status == model.HoldActive || !h.ExpiresAt.Before(before) {
				continue
			}
			if err := s.rdb.HDel(ctx, key, h.ID).Err(); err != nil {
				return err
			}
			s.rdb.Del(ctx, indexKey(h.ID))
			n++
		}
		return nil
	})
	return n, err
}
