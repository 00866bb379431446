package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/runlog/runlog-backend-go/internal/achievements"
	"github.com/runlog/runlog-backend-go/internal/activity"
	"github.com/runlog/runlog-backend-go/internal/calendar"
	"github.com/runlog/runlog-backend-go/internal/models"
	"github.com/runlog/runlog-backend-go/internal/stats"
)

// ErrStaleSync indicates a sync whose results were discarded because a
// newer sync for the same user started while it was in flight.
var ErrStaleSync = errors.New("sync superseded by a newer request")

// SyncResult summarizes one completed sync.
type SyncResult struct {
	OutdoorCount int       `json:"outdoor_count"`
	IndoorCount  int       `json:"indoor_count"`
	NewBadges    []string  `json:"new_badges"`
	SyncedAt     time.Time `json:"synced_at"`
}

// session is the in-memory state held for one user. Nothing here is
// persisted; every sync rebuilds the history from the activity service.
type session struct {
	history    activity.History
	badges     []*models.Badge
	generation uint64
	lastSynced time.Time
}

// RunService handles business logic for run history, statistics,
// calendar intensity, and achievements. It owns all per-user session
// state behind a single mutex; fetches run outside the lock.
type RunService struct {
	fetcher *activity.Fetcher

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRunService creates a new run service.
func NewRunService(fetcher *activity.Fetcher) *RunService {
	return &RunService{
		fetcher:  fetcher,
		sessions: make(map[string]*session),
	}
}

// locked; creates the session with a fresh badge catalog on first use
func (s *RunService) sessionFor(userID string) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{badges: achievements.NewCatalog()}
		s.sessions[userID] = sess
	}
	return sess
}

// Sync fetches the user's complete run history, replaces the session
// state, and re-evaluates badges. If a newer sync for the same user
// started while this one was fetching, its results are discarded and
// ErrStaleSync is returned.
func (s *RunService) Sync(ctx context.Context, userID string) (*SyncResult, error) {
	if userID == "" {
		return nil, activity.ErrNoUser
	}

	s.mu.Lock()
	sess := s.sessionFor(userID)
	sess.generation++
	gen := sess.generation
	s.mu.Unlock()

	history, err := s.fetcher.FetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != sess.generation {
		log.Printf("[RunService] discarding stale sync for user %s (generation %d)", userID, gen)
		return nil, ErrStaleSync
	}

	sess.history = *history
	sess.lastSynced = time.Now()
	newBadges := achievements.Evaluate(sess.badges, history.All())

	if len(newBadges) > 0 {
		log.Printf("[RunService] user %s earned %d new badges: %v", userID, len(newBadges), newBadges)
	}

	return &SyncResult{
		OutdoorCount: len(history.Outdoor),
		IndoorCount:  len(history.Indoor),
		NewBadges:    newBadges,
		SyncedAt:     sess.lastSynced,
	}, nil
}

// Runs returns the filtered view of the user's run history.
func (s *RunService) Runs(userID string, filter models.RunFilter) []models.RunEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(userID)
	return stats.Filter(sess.history.All(), filter)
}

// Stats computes aggregate statistics over the filtered, optionally
// date-restricted view of the user's history.
func (s *RunService) Stats(userID string, filter models.RunFilter, from, to time.Time) models.AggregateStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(userID)
	entries := stats.Filter(sess.history.All(), filter)
	if !from.IsZero() || !to.IsZero() {
		entries = stats.Between(entries, from, to)
	}
	return stats.Aggregate(entries)
}

// Calendar builds the month intensity grid over the user's full,
// unfiltered history.
func (s *RunService) Calendar(userID string, year int, month time.Month) []models.CalendarDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(userID)
	ref := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return calendar.BuildMonth(ref, sess.history.All())
}

// Badges returns a snapshot of the user's badge catalog.
func (s *RunService) Badges(userID string) []models.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(userID)
	out := make([]models.Badge, 0, len(sess.badges))
	for _, b := range sess.badges {
		out = append(out, *b)
	}
	return out
}
