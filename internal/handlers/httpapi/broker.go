package httpapi

import (
	"context"
	"errors"
	"sync"

	"github.com/archylab/archy/internal/models"
	"github.com/archylab/archy/internal/services/livestats"
)

// Broker multiplexes live stat pipelines across websocket subscribers.
// One upstream stream is opened per slot no matter how many clients
// watch it; the last detaching subscriber tears the stream down.
type Broker struct {
	stats livestats.Service

	mu     sync.Mutex
	relays map[string]*relay
}

// BrokerConfig holds the dependencies for the broker
type BrokerConfig struct {
	StatsService livestats.Service
}

// NewBroker creates a new stats fan-out broker
func NewBroker(cfg *BrokerConfig) (*Broker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}

	return &Broker{
		stats:  cfg.StatsService,
		relays: make(map[string]*relay),
	}, nil
}

// Subscribe attaches to the slot's live stat feed, starting the upstream
// pipeline if this is the first subscriber. The pipeline's lifetime is
// tied to the subscriber count, not to any one request, so the caller
// must Close the subscription when done.
func (b *Broker) Subscribe(slotID string) (*BrokerSubscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := b.relays[slotID]
	if r == nil || !r.alive() {
		started, err := b.startRelay(slotID)
		if err != nil {
			return nil, err
		}
		b.relays[slotID] = started
		r = started
	}

	sub := newBrokerSubscription(r)
	r.add(sub)
	go sub.run()

	return sub, nil
}

// startRelay opens the upstream stream for a slot. Caller holds b.mu.
func (b *Broker) startRelay(slotID string) (*relay, error) {
	ctx, cancel := context.WithCancel(context.Background())

	output, err := b.stats.Stream(ctx, &livestats.StreamInput{SlotID: slotID})
	if err != nil {
		cancel()
		return nil, err
	}

	r := &relay{
		slotID: slotID,
		broker: b,
		cancel: cancel,
		subs:   make(map[*BrokerSubscription]struct{}),
	}
	go r.run(output)

	return r, nil
}

// detach removes a relay from the routing table. Called by the relay
// itself on teardown and by the last leaving subscriber.
func (b *Broker) detach(r *relay) {
	b.mu.Lock()
	if b.relays[r.slotID] == r {
		delete(b.relays, r.slotID)
	}
	b.mu.Unlock()
}

// relay fans one upstream stream out to its subscribers
type relay struct {
	slotID string
	broker *Broker
	cancel context.CancelFunc

	mu      sync.Mutex
	subs    map[*BrokerSubscription]struct{}
	stopped bool
}

func (r *relay) alive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.stopped
}

func (r *relay) add(sub *BrokerSubscription) {
	r.mu.Lock()
	r.subs[sub] = struct{}{}
	r.mu.Unlock()
}

// remove detaches one subscriber; the last one out cancels the upstream
// pipeline so no orphan subscription outlives its consumers
func (r *relay) remove(sub *BrokerSubscription) {
	r.mu.Lock()
	delete(r.subs, sub)
	last := len(r.subs) == 0 && !r.stopped
	if last {
		r.stopped = true
	}
	r.mu.Unlock()

	if last {
		r.cancel()
		r.broker.detach(r)
	}
}

func (r *relay) run(output *livestats.StreamOutput) {
	for {
		select {
		case stat, ok := <-output.Events:
			if !ok {
				// The pipeline buffers its error before closing Events,
				// so check Errs here or a failure would look like a
				// normal end of stream.
				var err error
				select {
				case err = <-output.Errs:
				default:
				}
				r.teardown(err)
				return
			}
			r.mu.Lock()
			for sub := range r.subs {
				sub.push(stat)
			}
			r.mu.Unlock()
		case err := <-output.Errs:
			r.teardown(err)
			return
		}
	}
}

// teardown ends every remaining subscriber, forwarding the upstream
// error when there is one
func (r *relay) teardown(err error) {
	r.cancel()
	r.broker.detach(r)

	r.mu.Lock()
	subs := make([]*BrokerSubscription, 0, len(r.subs))
	for sub := range r.subs {
		subs = append(subs, sub)
	}
	r.subs = make(map[*BrokerSubscription]struct{})
	r.stopped = true
	r.mu.Unlock()

	for _, sub := range subs {
		sub.finish(err)
	}
}

// BrokerSubscription is one consumer's view of a slot's live stat feed.
// Emissions queue FIFO per subscriber, so one slow websocket cannot
// stall the relay or its siblings.
type BrokerSubscription struct {
	relay *relay

	mu     sync.Mutex
	queue  []*models.LiveStat
	err    error
	ended  bool
	closed bool
	wake   chan struct{}
	done   chan struct{}

	events chan *models.LiveStat
	errs   chan error
}

func newBrokerSubscription(r *relay) *BrokerSubscription {
	return &BrokerSubscription{
		relay:  r,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		events: make(chan *models.LiveStat),
		errs:   make(chan error, 1),
	}
}

// Events delivers live stats in relay order. The channel closes when the
// subscription ends; a value on Errs explains an abnormal end.
func (s *BrokerSubscription) Events() <-chan *models.LiveStat {
	return s.events
}

// Errs reports an upstream failure, if any
func (s *BrokerSubscription) Errs() <-chan error {
	return s.errs
}

// Close detaches from the relay. Safe to call more than once.
func (s *BrokerSubscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.ended = true
	s.mu.Unlock()

	close(s.done)
	s.relay.remove(s)
	s.notify()
}

func (s *BrokerSubscription) push(stat *models.LiveStat) {
	s.mu.Lock()
	if !s.ended {
		s.queue = append(s.queue, stat)
	}
	s.mu.Unlock()
	s.notify()
}

func (s *BrokerSubscription) finish(err error) {
	s.mu.Lock()
	if !s.ended {
		s.ended = true
		s.err = err
	}
	s.mu.Unlock()
	s.notify()
}

func (s *BrokerSubscription) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// run drains the per-subscriber queue into the events channel. Queued
// emissions are still delivered after the relay ends; the error, if any,
// comes last.
func (s *BrokerSubscription) run() {
	defer close(s.events)

	for {
		s.mu.Lock()
		var next *models.LiveStat
		if len(s.queue) > 0 {
			next = s.queue[0]
			s.queue = s.queue[1:]
		}
		ended, closed, err := s.ended, s.closed, s.err
		s.mu.Unlock()

		if next != nil {
			if closed {
				continue
			}
			select {
			case s.events <- next:
			case <-s.done:
			}
			continue
		}

		if ended {
			if err != nil && !closed {
				s.errs <- err
			}
			return
		}

		select {
		case <-s.wake:
		case <-s.done:
		}
	}
}
