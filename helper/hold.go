package helper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"venue_booking/database"
	"venue_booking/metrics"
	"venue_booking/model"
	"venue_booking/utils"
)

type HoldMailer interface {
	SendHoldConfirmation(to string, data utils.HoldConfirmationData)
}

// HoldService places short-lived holds so that a range stays reserved while
// the customer is away at the payment gateway.
type HoldService struct {
	checker  *AvailabilityChecker
	store    database.HoldStore
	notifier Notifier
	mailer   HoldMailer
	ttl      time.Duration
	metrics  *metrics.Registry
}

func NewHoldService(checker *AvailabilityChecker, store database.HoldStore, notifier Notifier, mailer HoldMailer, ttl time.Duration, reg *metrics.Registry) *HoldService {
	return &HoldService{
		checker:  checker,
		store:    store,
		notifier: notifier,
		mailer:   mailer,
		ttl:      ttl,
		metrics:  reg,
	}
}

func (s *HoldService) Place(ctx context.Context, in model.CreateHoldInput) (model.Hold, error) {
	day, err := ParseDate(in.Date, s.checker.Location())
	if err != nil {
		return model.Hold{}, err
	}
	start, end, err := ParseRange(in.StartTime, in.EndTime)
	if err != nil {
		return model.Hold{}, err
	}
	now := s.checker.Now()
	if !At(day, start).After(now) {
		return model.Hold{}, ErrRangeInPast
	}

	hold := &model.Hold{
		ID:           uuid.NewString(),
		FacilityName: in.RoomName,
		Date:         in.Date,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		OrderID:      in.OrderID,
		Amount:       HoldAmount(start, end, s.checker.Grid().Price),
		Status:       model.HoldActive,
		ExpiresAt:    now.Add(s.ttl),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	admit := s.checker.Admit(ctx, in.Date, in.RoomName, start, end)
	if err := s.store.Reserve(ctx, hold, admit); err != nil {
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrStoreUnavailable) {
			return model.Hold{}, err
		}
		s.metrics.StoreErrors.Inc()
		log.Printf("Hold store write failed: %v", err)
		return model.Hold{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	s.metrics.HoldsCreated.Inc()
	s.publish(ctx, hold.Date)

	if s.mailer != nil && hold.Email != "" {
		s.mailer.SendHoldConfirmation(hold.Email, utils.HoldConfirmationData{
			HoldID:       hold.ID,
			CustomerName: hold.CustomerName,
			Facility:     hold.FacilityName,
			Date:         hold.Date,
			Time:         FormatRange12h(hold.StartTime, hold.EndTime),
			Amount:       hold.Amount.StringFixed(2),
			ExpiresAt:    hold.ExpiresAt.Format("15:04 02/01/2006"),
		})
	}
	return *hold, nil
}

func (s *HoldService) Get(ctx context.Context, id string) (model.Hold, error) {
	h, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Hold{}, s.storeErr(err)
	}
	return *h, nil
}

// Release frees an active hold. Releasing a hold that is no longer active
// returns it unchanged.
func (s *HoldService) Release(ctx context.Context, id string) (model.Hold, error) {
	h, err := s.store.Release(ctx, id)
	if err != nil {
		return model.Hold{}, s.storeErr(err)
	}
	s.publish(ctx, h.Date)
	return *h, nil
}

func (s *HoldService) storeErr(err error) error {
	if errors.Is(err, ErrHoldNotFound) {
		return err
	}
	s.metrics.StoreErrors.Inc()
	log.Printf("Hold store failed: %v", err)
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (s *HoldService) publish(ctx context.Context, date string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, date); err != nil {
		log.Printf("Failed to publish slot change for %s: %v", date, err)
	}
}
