package availability

import (
	"context"
	"mentor-service/internal/app/models"
	"sync"
	"time"
)

// SeedFunc loads the persisted snapshot a new editor session starts from.
type SeedFunc func(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error)

// Sessions keeps one editor Store per mentor. Each store is only touched
// while its session lock is held, so a mentor's edits run one at a time.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	seed     SeedFunc
	options  []StoreOption
	now      func() time.Time
}

type session struct {
	mu         sync.Mutex
	store      *Store
	lastAccess time.Time
}

func NewSessions(seed SeedFunc, opts ...StoreOption) *Sessions {
	return &Sessions{
		sessions: make(map[string]*session),
		seed:     seed,
		options:  opts,
		now:      time.Now,
	}
}

// WithStore runs fn against the mentor's store, seeding it on first use.
// A failed seed leaves no session behind.
func (s *Sessions) WithStore(ctx context.Context, mentorID string, fn func(store *Store) error) error {
	sess := s.lock(mentorID)
	defer sess.mu.Unlock()

	if sess.store == nil {
		snapshot, err := s.seed(ctx, mentorID)
		if err != nil {
			s.forget(mentorID, sess)
			return err
		}
		sess.store = NewStore(snapshot, s.options...)
	}

	s.touch(sess)
	return fn(sess.store)
}

// Discard drops the mentor's unsaved edits. The next access reseeds.
func (s *Sessions) Discard(mentorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[mentorID]
	delete(s.sessions, mentorID)
	return ok
}

// EvictIdle drops sessions untouched for longer than maxIdle and returns how
// many were dropped. Sessions in use are skipped.
func (s *Sessions) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	evicted := 0
	for mentorID, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if sess.lastAccess.Before(cutoff) {
			delete(s.sessions, mentorID)
			evicted++
		}
		sess.mu.Unlock()
	}
	return evicted
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Sessions) acquire(mentorID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[mentorID]
	if !ok {
		sess = &session{lastAccess: s.now()}
		s.sessions[mentorID] = sess
	}
	return sess
}

// lock returns the mentor's registered session with its lock held. A session
// dropped while we waited for its lock is skipped.
func (s *Sessions) lock(mentorID string) *session {
	for {
		sess := s.acquire(mentorID)
		sess.mu.Lock()

		s.mu.Lock()
		registered := s.sessions[mentorID] == sess
		s.mu.Unlock()
		if registered {
			return sess
		}
		sess.mu.Unlock()
	}
}

func (s *Sessions) touch(sess *session) {
	s.mu.Lock()
	sess.lastAccess = s.now()
	s.mu.Unlock()
}

func (s *Sessions) forget(mentorID string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[mentorID] == sess {
		delete(s.sessions, mentorID)
	}
}
