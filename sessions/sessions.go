// Package sessions holds the per-browser marketplace state: the filter
// spec, the sort key and the favorites/compare selections. One session
// maps to one browser via the session cookie; sessions are independent
// and never sync between users.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pavich5/AutoMK/models"
	"github.com/pavich5/AutoMK/selection"
)

// Session is the state container behind one browser. All mutations go
// through its methods; snapshots are returned by value so the listing
// engine stays pure.
type Session struct {
	ID string

	mu        sync.Mutex
	filters   models.CarFilters
	sort      models.SortOption
	favorites *selection.Set
	compare   *selection.Set
	lastSeen  time.Time
}

func newSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		sort:      models.DefaultSort,
		favorites: selection.NewFavorites(),
		compare:   selection.NewCompare(),
		lastSeen:  now,
	}
}

// Filters returns the current filter spec.
func (s *Session) Filters() models.CarFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// UpdateFilters applies fn to the spec under the session lock. The
// whole value is replaced; no partial mutation is observable.
func (s *Session) UpdateFilters(fn func(*models.CarFilters) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.filters
	if err := fn(&next); err != nil {
		return err
	}
	s.filters = next
	return nil
}

// ClearFilters resets the spec back to empty.
func (s *Session) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.CarFilters{}
}

// Sort returns the current sort key.
func (s *Session) Sort() models.SortOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// SetSort replaces the sort key.
func (s *Session) SetSort(key models.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = key
}

// ToggleFavorite toggles favorite membership and reports membership
// afterwards.
func (s *Session) ToggleFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Toggle(id)
}

// FavoriteIDs returns favorite ids in insertion order.
func (s *Session) FavoriteIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.IDs()
}

// IsFavorite reports favorite membership.
func (s *Session) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Has(id)
}

// ToggleCompare toggles compare membership and reports membership
// afterwards. A toggle that would exceed the compare limit is a silent
// no-op and reports false.
func (s *Session) ToggleCompare(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compare.Toggle(id)
}

// RemoveCompare drops one id from the compare selection.
func (s *Session) RemoveCompare(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compare.Remove(id)
}

// CompareIDs returns compared ids in insertion order; the comparison
// table's column order follows this.
func (s *Session) CompareIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compare.IDs()
}

// IsComparing reports compare membership.
func (s *Session) IsComparing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compare.Has(id)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) seen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager owns every live session.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{sessions: make(map[string]*Session), ttl: ttl}
}

// Create registers a fresh session.
func (m *Manager) Create() *Session {
	s := newSession(time.Now())
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get resolves a session by id, refreshing its idle clock.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.touch(time.Now())
	}
	return s, ok
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how
// many were evicted.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if now.Sub(s.seen()) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}
