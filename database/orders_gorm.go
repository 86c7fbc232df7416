package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"venue_booking/model"
)

type GormOrderStore struct{ db *gorm.DB }

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Find(ctx context.Context, q OrderQuery) ([]model.Order, error) {
	query := s.db.WithContext(ctx).Model(&model.Order{})
	if !q.IsZero() {
		col, ok := columnFor(q.Field)
		if !ok {
			return nil, fmt.Errorf("unsupported order filter %q", q.Field)
		}
		query = query.Where(col+" = ?", q.Value)
	}
	var orders []model.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
