package helper

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Notifier fans out "slots changed on date" events to websocket clients.
type Notifier interface {
	Publish(ctx context.Context, date string) error
	// Subscribe returns a channel that receives a value after each change on
	// date, and a cancel func that must be called to stop the subscription.
	Subscribe(ctx context.Context, date string) (<-chan struct{}, func())
}

func slotChannel(date string) string { return "slots:" + date }

type RedisNotifier struct {
	rdb *redis.Client
}

func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

func (n *RedisNotifier) Publish(ctx context.Context, date string) error {
	return n.rdb.Publish(ctx, slotChannel(date), date).Err()
}

func (n *RedisNotifier) Subscribe(ctx context.Context, date string) (<-chan struct{}, func()) {
	pubsub := n.rdb.Subscribe(ctx, slotChannel(date))
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for range pubsub.Channel() {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	var once sync.Once
	return out, func() { once.Do(func() { pubsub.Close() }) }
}

// LocalNotifier is the in-process Notifier used when Redis is not configured.
type LocalNotifier struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{subs: make(map[string]map[chan struct{}]struct{})}
}

func (n *LocalNotifier) Publish(_ context.Context, date string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs[date] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

func (n *LocalNotifier) Subscribe(_ context.Context, date string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	if n.subs[date] == nil {
		n.subs[date] = make(map[chan struct{}]struct{})
	}
	n.subs[date][ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs[date], ch)
			if len(n.subs[date]) == 0 {
				delete(n.subs, date)
			}
			n.mu.Unlock()
			close(ch)
		})
	}
}
