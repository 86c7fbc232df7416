package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venue_booking/model"
)

// GormHoldStore keeps holds in Postgres. Reserve takes a transaction-scoped
// advisory lock per date, so admit and insert are atomic with respect to
// other reservations for that date.
type GormHoldStore struct{ db *gorm.DB }

func NewGormHoldStore(db *gorm.DB) *GormHoldStore {
	return &GormHoldStore{db: db}
}

func lockKey(date string) string { return "venue_holds:" + date }

func (s *GormHoldStore) Reserve(ctx context.Context, hold *model.Hold, admit AdmitFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey(hold.Date)).Error; err != nil {
			return err
		}
		var active []model.Hold
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ? AND status = ? AND expires_at > ?", hold.Date, model.HoldActive, hold.CreatedAt).
			Order("created_at asc").
			Find(&active).Error; err != nil {
			return err
		}
		if err := admit(active); err != nil {
			return err
		}
		return tx.Create(hold).Error
	})
}

func (s *GormHoldStore) Active(ctx context.Context, date string, now time.Time) ([]model.Hold, error) {
	var holds []model.Hold
	err := s.db.WithContext(ctx).
		Where("date = ? AND status = ? AND expires_at > ?", date, model.HoldActive, now).
		Order("created_at asc").
		Find(&holds).Error
	return holds, err
}

func (s *GormHoldStore) Get(ctx context.Context, id string) (*model.Hold, error) {
	var h model.Hold
	if err := s.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHoldNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (s *GormHoldStore) Release(ctx context.Context, id string) (*model.Hold, error) {
	var h model.Hold
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&h, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHoldNotFound
			}
			return err
		}
		if h.Status != model.HoldActive {
			return nil
		}
		h.Status = model.HoldReleased
		return tx.Model(&h).Update("status", model.HoldReleased).Error
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *GormHoldStore) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Hold{}).
		Where("status = ? AND expires_at <= ?", model.HoldActive, now).
		Update("status", model.HoldExpired)
	return result.RowsAffected, result.Error
}

func (s *GormHoldStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("status <> ? AND expires_at < ?", model.HoldActive, before).
		Delete(&model.Hold{})
	return result.RowsAffected, result.Error
}
