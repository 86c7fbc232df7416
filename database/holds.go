package database

import (
	"context"
	"errors"
	"time"

	"venue_booking/model"
)

var ErrHoldNotFound = errors.New("hold not found")

// AdmitFunc decides whether a new hold may be written, given the holds that
// are active on the same date at the moment of the decision.
type AdmitFunc func(active []model.Hold) error

// HoldStore persists short-lived reservations. Reserve must serialize
// concurrent calls for the same date so that admit sees every hold
// committed before it.
type HoldStore interface {
	Reserve(ctx context.Context, hold *model.Hold, admit AdmitFunc) error
	Active(ctx context.Context, date string, now time.Time) ([]model.Hold, error)
	Get(ctx context.Context, id string) (*model.Hold, error)
	Release(ctx context.Context, id string) (*model.Hold, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
	Purge(ctx context.Context, before time.Time) (int64, error)
}
