package store

import (
	"context"
	"sync"
)

// Change signals that a partition's content changed. Subscribers re-run
// their queries; the event carries no row-level detail.
type Change struct {
	Partition string
}

// Subscription is a live feed of partition changes.
type Subscription struct {
	ch     chan Change
	cancel func()
	once   sync.Once
}

// Changes returns the notification channel. It is closed when the
// subscription ends.
func (s *Subscription) Changes() <-chan Change {
	return s.ch
}

// Close abandons the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// notifier fans partition change events out to subscribers. Delivery is
// best-effort: a subscriber that is not draining its channel misses
// intermediate events, which is fine because events carry no payload.
type notifier struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[string]map[*Subscription]struct{})}
}

func (n *notifier) subscribe(ctx context.Context, partition string) *Subscription {
	sub := &Subscription{ch: make(chan Change, 1)}
	sub.cancel = func() {
		n.mu.Lock()
		if set, ok := n.subs[partition]; ok {
			delete(set, sub)
			if len(set) == 0 {
				delete(n.subs, partition)
			}
		}
		n.mu.Unlock()
		close(sub.ch)
	}

	n.mu.Lock()
	set, ok := n.subs[partition]
	if !ok {
		set = make(map[*Subscription]struct{})
		n.subs[partition] = set
	}
	set[sub] = struct{}{}
	n.mu.Unlock()

	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			sub.Close()
		}()
	}
	return sub
}

func (n *notifier) publish(partition string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for sub := range n.subs[partition] {
		select {
		case sub.ch <- Change{Partition: partition}:
		default:
		}
	}
}
