// Package session keeps one interaction controller per browser.
//
// Each session serializes its own events behind a mutex: an event
// handler runs to completion before the next one on the same page
// starts. Sessions never share mutable state; the only thing they have
// in common is the read-only dataset.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/dino-compare/internal/controller"
	"github.com/aanand-mishra/dino-compare/internal/grid"
	"github.com/aanand-mishra/dino-compare/internal/types"
	"github.com/aanand-mishra/dino-compare/internal/view"
)

// Session is one page instance.
type Session struct {
	ID string

	mu       sync.Mutex
	page     *view.Page
	ctrl     *controller.Controller
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's controller and page,
// then returns a snapshot of the page that is safe to render unlocked.
func (s *Session) Do(fn func(c *controller.Controller, p *view.Page)) *view.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fn != nil {
		fn(s.ctrl, s.page)
	}
	return s.page.Clone()
}

// Session lifetime bounds. Every cookie-less request creates a session,
// so idle ones must always expire.
const (
	DefaultTTL = 30 * time.Minute
	MinTTL     = time.Minute

	// sweepInterval bounds how often Get scans for idle sessions.
	sweepInterval = time.Minute
)

// Store holds live sessions.
type Store struct {
	dinos []types.Dinosaur
	seed  int64
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time

	mu        sync.Mutex
	sessions  map[string]*Session
	lastSweep time.Time
}

// NewStore returns an empty store. A non-zero seed makes every new
// session's shuffle and fact choices reproducible. A ttl of zero or less
// means DefaultTTL; anything shorter than MinTTL is raised to it.
func NewStore(dinos []types.Dinosaur, seed int64, ttl time.Duration, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	switch {
	case ttl <= 0:
		ttl = DefaultTTL
	case ttl < MinTTL:
		ttl = MinTTL
	}
	return &Store{
		dinos:    dinos,
		seed:     seed,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating a fresh one when id is empty,
// malformed or unknown. created reports whether a new session was made.
func (st *Store) Get(id string) (sess *Session, created bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	if now.Sub(st.lastSweep) >= sweepInterval {
		st.sweepLocked(now)
		st.lastSweep = now
	}

	if _, err := uuid.Parse(id); err == nil {
		if s, ok := st.sessions[id]; ok {
			s.lastSeen = now
			return s, false
		}
	}

	s := st.newSessionLocked(now)
	st.sessions[s.ID] = s
	st.log.Debug("session created", slog.String("session", s.ID))
	return s, true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) newSessionLocked(now time.Time) *Session {
	page := view.NewPage()
	id := uuid.NewString()
	log := st.log.With(slog.String("session", id))
	return &Session{
		ID:       id,
		page:     page,
		ctrl:     controller.New(st.dinos, page, grid.NewRand(st.seed), log),
		lastSeen: now,
	}
}

// sweepLocked drops sessions idle for longer than the ttl.
func (st *Store) sweepLocked(now time.Time) {
	for id, s := range st.sessions {
		// lastSeen is only written under st.mu, so reading it here is safe.
		if now.Sub(s.lastSeen) > st.ttl {
			delete(st.sessions, id)
			st.log.Debug("session expired", slog.String("session", id))
		}
	}
}
