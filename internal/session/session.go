package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MrSnakeDoc/restdemo/internal/client"
	"github.com/MrSnakeDoc/restdemo/internal/domain"
)

var (
	// ErrFetchInFlight is returned by BeginFetch while a fetch is Loading.
	ErrFetchInFlight = errors.New("session: fetch already in flight")
	// ErrNotLoading is returned when a resolution arrives with no fetch in flight.
	ErrNotLoading = errors.New("session: no fetch in flight")
)

// Session tracks one fetch state and the backend health flag. The zero value is
// ready to use and starts in Initial with health unknown (false).
type Session struct {
	mu      sync.RWMutex
	state   State
	healthy bool
	probed  bool

	// Now is used to timestamp transitions; defaults to time.Now.
	Now func() time.Time
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// State returns the current fetch state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// BeginFetch moves to Loading. It is rejected while a fetch is already Loading.
func (s *Session) BeginFetch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.phase == Loading {
		return ErrFetchInFlight
	}
	s.state = State{phase: Loading, at: s.now()}
	return nil
}

// Succeed resolves the in-flight fetch with rec.
func (s *Session) Succeed(rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.phase != Loading {
		return ErrNotLoading
	}
	s.state = State{phase: Success, record: rec, at: s.now()}
	return nil
}

// Fail resolves the in-flight fetch with a diagnostic message.
func (s *Session) Fail(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.phase != Loading {
		return ErrNotLoading
	}
	s.state = State{phase: Error, message: message, at: s.now()}
	return nil
}

// SetHealthy records the outcome of a health probe.
func (s *Session) SetHealthy(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthy = ok
	s.probed = true
}

// Healthy reports the last probe result; false before any probe resolved.
func (s *Session) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthy
}

// Probed reports whether any health probe has resolved yet.
func (s *Session) Probed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.probed
}

// CanFetch reports whether a fetch trigger should be enabled.
func (s *Session) CanFetch() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthy && s.state.phase != Loading
}

// Fetch runs one full fetch cycle against f. It returns ErrFetchInFlight without
// touching the state when another fetch is Loading, and otherwise the fetch error,
// which is also recorded as the Error message.
func (s *Session) Fetch(ctx context.Context, f client.RecordFetcher) error {
	if err := s.BeginFetch(); err != nil {
		return err
	}

	rec, err := f.FetchData(ctx)
	if err != nil {
		if ferr := s.Fail(err.Error()); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}
	return s.Succeed(rec)
}

// Probe runs a health check and stores its result.
func (s *Session) Probe(ctx context.Context, c client.HealthChecker) bool {
	ok := c.CheckHealth(ctx)
	s.SetHealthy(ok)
	return ok
}
