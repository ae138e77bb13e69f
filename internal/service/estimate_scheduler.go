package service

import (
	"context"
	"sync"
	"time"

	"github.com/baeza-marine/booking-service/internal/domain/model"
)

// defaultEstimateDelay is the quiet period before an address change triggers
// a geocode lookup, matching the typing cadence of the address form.
const defaultEstimateDelay = time.Second

// EstimateApplyFunc receives the resolved estimate for a session. A nil
// estimate means the address could not be resolved and any previous estimate
// should be cleared.
type EstimateApplyFunc func(sessionID string, estimate *model.TravelEstimate)

// estimateSession tracks the pending lookup for one cart session.
type estimateSession struct {
	seq     uint64
	timer   *time.Timer
	address model.CartAddress
}

// EstimateScheduler debounces travel fee estimation per cart session.
//
// Every address update bumps the session's sequence number and restarts its
// quiet-period timer, so only the latest address of an editing burst is
// geocoded. A lookup result is applied only while its sequence is still the
// highest for the session; anything superseded mid-flight is discarded.
type EstimateScheduler struct {
	estimator TravelFeeService
	apply     EstimateApplyFunc
	delay     time.Duration

	mu       sync.Mutex
	sessions map[string]*estimateSession
}

// NewEstimateScheduler creates a scheduler delivering estimates through
// apply. Delay zero defaults to one second.
func NewEstimateScheduler(estimator TravelFeeService, apply EstimateApplyFunc, delay time.Duration) *EstimateScheduler {
	if delay <= 0 {
		delay = defaultEstimateDelay
	}
	return &EstimateScheduler{
		estimator: estimator,
		apply:     apply,
		delay:     delay,
		sessions:  make(map[string]*estimateSession),
	}
}

// Schedule queues an estimate for the session's address after the quiet
// period, superseding any pending or in-flight lookup for the session.
func (s *EstimateScheduler) Schedule(sessionID string, address model.CartAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = &estimateSession{}
		s.sessions[sessionID] = session
	}

	session.seq++
	session.address = address
	if session.timer != nil {
		session.timer.Stop()
	}

	seq := session.seq
	session.timer = time.AfterFunc(s.delay, func() {
		s.run(sessionID, seq, address)
	})
}

// Cancel drops any pending lookup for the session. In-flight results are
// superseded and will be discarded on completion.
func (s *EstimateScheduler) Cancel(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	session.seq++
	if session.timer != nil {
		session.timer.Stop()
		session.timer = nil
	}
}

// Stop cancels all pending lookups. Used on shutdown.
func (s *EstimateScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range s.sessions {
		session.seq++
		if session.timer != nil {
			session.timer.Stop()
			session.timer = nil
		}
	}
}

// current returns the session's current sequence number.
func (s *EstimateScheduler) current(sessionID string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return 0, false
	}
	return session.seq, true
}

func (s *EstimateScheduler) run(sessionID string, seq uint64, address model.CartAddress) {
	// The quiet period may have been restarted while this timer fired.
	if current, ok := s.current(sessionID); !ok || current != seq {
		return
	}

	estimate := s.estimator.Estimate(context.Background(), address)

	// Re-check: a newer address update may have superseded this lookup
	// while the geocode call was in flight.
	if current, ok := s.current(sessionID); !ok || current != seq {
		return
	}

	s.apply(sessionID, estimate)
}
