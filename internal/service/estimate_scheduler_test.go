package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/service"
)

// stubEstimator implements service.TravelFeeService with a function.
type stubEstimator struct {
	fn func(address model.CartAddress) *model.TravelEstimate
}

func (s *stubEstimator) Estimate(_ context.Context, address model.CartAddress) *model.TravelEstimate {
	return s.fn(address)
}

// applyRecorder collects scheduler apply calls.
type applyRecorder struct {
	mu    sync.Mutex
	calls []appliedEstimate
	ch    chan appliedEstimate
}

type appliedEstimate struct {
	sessionID string
	estimate  *model.TravelEstimate
}

func newApplyRecorder() *applyRecorder {
	return &applyRecorder{ch: make(chan appliedEstimate, 16)}
}

func (r *applyRecorder) apply(sessionID string, estimate *model.TravelEstimate) {
	r.mu.Lock()
	call := appliedEstimate{sessionID: sessionID, estimate: estimate}
	r.calls = append(r.calls, call)
	r.mu.Unlock()
	r.ch <- call
}

func (r *applyRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func addressFor(city string) model.CartAddress {
	return model.CartAddress{Address: "1 rue du Test", PostalCode: "33510", City: city}
}

func TestEstimateScheduler_DebouncesBursts(t *testing.T) {
	var mu sync.Mutex
	var estimated []string
	estimator := &stubEstimator{fn: func(address model.CartAddress) *model.TravelEstimate {
		mu.Lock()
		estimated = append(estimated, address.City)
		mu.Unlock()
		return &model.TravelEstimate{DistanceKm: 5, Fee: model.TravelFee{Amount: 0}}
	}}
	recorder := newApplyRecorder()

	scheduler := service.NewEstimateScheduler(estimator, recorder.apply, 50*time.Millisecond)
	defer scheduler.Stop()

	// A typing burst: every keystroke restarts the quiet period, so only the
	// final address is geocoded.
	scheduler.Schedule("session-1", addressFor("A"))
	scheduler.Schedule("session-1", addressFor("An"))
	scheduler.Schedule("session-1", addressFor("Andernos"))

	select {
	case call := <-recorder.ch:
		assert.Equal(t, "session-1", call.sessionID)
		require.NotNil(t, call.estimate)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for estimate")
	}

	mu.Lock()
	assert.Equal(t, []string{"Andernos"}, estimated)
	mu.Unlock()
	assert.Equal(t, 1, recorder.count())
}

func TestEstimateScheduler_SupersededInFlightIsDiscarded(t *testing.T) {
	started := make(chan string, 2)
	release := make(chan struct{})
	estimator := &stubEstimator{fn: func(address model.CartAddress) *model.TravelEstimate {
		started <- address.City
		if address.City == "Slow" {
			<-release
		}
		return &model.TravelEstimate{DistanceKm: len(address.City), Fee: model.TravelFee{Amount: 15}}
	}}
	recorder := newApplyRecorder()

	scheduler := service.NewEstimateScheduler(estimator, recorder.apply, 10*time.Millisecond)
	defer scheduler.Stop()

	scheduler.Schedule("session-1", addressFor("Slow"))

	// Wait until the slow lookup is in flight, then supersede it.
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("first lookup never started")
	}
	scheduler.Schedule("session-1", addressFor("Fast"))

	// The fast lookup completes and is applied.
	select {
	case call := <-recorder.ch:
		require.NotNil(t, call.estimate)
		assert.Equal(t, len("Fast"), call.estimate.DistanceKm)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fast estimate")
	}

	// Releasing the superseded lookup must not produce a second apply.
	close(release)
	select {
	case call := <-recorder.ch:
		t.Fatalf("superseded estimate was applied: %+v", call)
	case <-time.After(200 * time.Millisecond):
	}
	assert.Equal(t, 1, recorder.count())
}

func TestEstimateScheduler_CancelDropsPendingLookup(t *testing.T) {
	estimator := &stubEstimator{fn: func(address model.CartAddress) *model.TravelEstimate {
		return &model.TravelEstimate{DistanceKm: 5, Fee: model.TravelFee{Amount: 0}}
	}}
	recorder := newApplyRecorder()

	scheduler := service.NewEstimateScheduler(estimator, recorder.apply, 20*time.Millisecond)
	defer scheduler.Stop()

	scheduler.Schedule("session-1", addressFor("Andernos"))
	scheduler.Cancel("session-1")

	select {
	case call := <-recorder.ch:
		t.Fatalf("cancelled estimate was applied: %+v", call)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestEstimateScheduler_SessionsAreIndependent(t *testing.T) {
	estimator := &stubEstimator{fn: func(address model.CartAddress) *model.TravelEstimate {
		return &model.TravelEstimate{DistanceKm: 5, Fee: model.TravelFee{Amount: 0}}
	}}
	recorder := newApplyRecorder()

	scheduler := service.NewEstimateScheduler(estimator, recorder.apply, 10*time.Millisecond)
	defer scheduler.Stop()

	scheduler.Schedule("session-1", addressFor("Andernos"))
	scheduler.Schedule("session-2", addressFor("Arcachon"))

	sessions := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case call := <-recorder.ch:
			sessions[call.sessionID] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for estimates")
		}
	}
	assert.True(t, sessions["session-1"])
	assert.True(t, sessions["session-2"])
}
