package wizard

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ErrStoreClosed is returned by Dispatch after Close
var ErrStoreClosed = errors.New("wizard store is closed")

type dispatchRequest struct {
	action Action
	done   chan error
}

// Store holds one wizard state. Every update goes through a single
// goroutine so concurrent dispatches are applied one at a time.
type Store struct {
	requests chan dispatchRequest
	stop     chan struct{}
	stopped  chan struct{}
	once     sync.Once

	lock    sync.RWMutex
	state   State
	version uint64
}

// NewStore starts a store holding the given state
func NewStore(initial State) *Store {
	s := &Store{
		requests: make(chan dispatchRequest),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		state:    initial.DeepCopy(),
	}
	go s.run()
	return s
}

func (s *Store) run() {
	defer close(s.stopped)
	for {
		select {
		case <-s.stop:
			return
		case req := <-s.requests:
			req.done <- s.apply(req.action)
		}
	}
}

func (s *Store) apply(action Action) error {
	s.lock.RLock()
	current := s.state
	s.lock.RUnlock()

	next, err := Reduce(current, action)
	if errors.Is(err, ErrUnchanged) {
		return err
	}
	if err != nil {
		log.WithError(err).WithField("action", action.Type).Debug("Rejected wizard action")
		return err
	}

	s.lock.Lock()
	s.state = next
	s.version++
	s.lock.Unlock()
	return nil
}

// Dispatch applies the action and waits until it is applied or ctx is done.
// An action leaving the state as it was returns ErrUnchanged and does not
// count as a new version.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := dispatchRequest{action: action, done: make(chan error, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stop:
		return ErrStoreClosed
	case s.requests <- req:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-req.done:
		return err
	}
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state.DeepCopy()
}

// Version counts the applied actions
func (s *Store) Version() uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.version
}

// Close stops the dispatch goroutine. It is safe to call more than once.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
	<-s.stopped
}
