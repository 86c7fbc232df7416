package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"

	"venue_booking/database"
	"venue_booking/metrics"
)

// HoldJanitor runs the background hold maintenance: a cron job that marks
// stale holds expired, and a daily job that purges old finished holds.
type HoldJanitor struct {
	store     database.HoldStore
	clock     clockwork.Clock
	retention time.Duration
	metrics   *metrics.Registry

	expiry *cron.Cron
	purge  gocron.Scheduler
}

func NewHoldJanitor(store database.HoldStore, clock clockwork.Clock, retention time.Duration, reg *metrics.Registry) *HoldJanitor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HoldJanitor{store: store, clock: clock, retention: retention, metrics: reg}
}

func (j *HoldJanitor) ExpireHolds() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := j.store.ExpireStale(ctx, j.clock.Now())
	if err != nil {
		log.Printf("Failed to expire holds: %v", err)
		return
	}
	if n > 0 {
		j.metrics.HoldsExpired.Add(float64(n))
		log.Printf("Expired %d holds", n)
	}
}

func (j *HoldJanitor) PurgeHolds() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := j.store.Purge(ctx, j.clock.Now().Add(-j.retention))
	if err != nil {
		log.Printf("Failed to purge holds: %v", err)
		return
	}
	log.Printf("[CRON] Purged %d finished holds older than %s", n, j.retention)
}

// Start schedules expiry on expirySpec (robfig cron syntax, "@every 1m" works)
// and the purge daily at 03:00 in loc.
func (j *HoldJanitor) Start(expirySpec string, loc *time.Location) error {
	j.expiry = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := j.expiry.AddFunc(expirySpec, j.ExpireHolds); err != nil {
		return err
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
		gocron.WithClock(j.clock),
	)
	if err != nil {
		return err
	}
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(j.PurgeHolds),
	)
	if err != nil {
		return err
	}
	j.purge = s

	j.expiry.Start()
	j.purge.Start()
	log.Printf("Hold janitor started (expiry %q, purge 03:00 daily)", expirySpec)
	return nil
}

func (j *HoldJanitor) Stop() {
	if j.expiry != nil {
		<-j.expiry.Stop().Done()
	}
	if j.purge != nil {
		if err := j.purge.Shutdown(); err != nil {
			log.Printf("Failed to stop purge scheduler: %v", err)
		}
	}
	log.Println("Hold janitor stopped")
}
