package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/fitclub/wellness-api/logging"
	"github.com/fitclub/wellness-api/pricing"
)

// Store keeps live sessions in memory with a sliding TTL. Expired sessions
// are swept by the cache janitor; nothing survives a restart.
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore creates a session store. ttl is how long an idle session survives;
// cleanup is how often expired entries are purged.
func NewStore(ttl, cleanup time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// Create starts a fresh session with default country and empty answers.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Selection: make(pricing.Selection),
	}
	s.ApplyCountry("")
	st.cache.Set(s.ID, s, st.ttl)
	logging.Debug("Session created", "session_id", s.ID)
	return s
}

// Get returns the session for an id, refreshing its TTL.
func (st *Store) Get(id string) (*Session, bool) {
	v, ok := st.cache.Get(id)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	if !ok {
		logging.Warn("Unexpected value in session cache", "session_id", id)
		return nil, false
	}
	st.cache.Set(id, s, st.ttl)
	return s, true
}

// Put stores the session back, refreshing its TTL.
func (st *Store) Put(s *Session) {
	st.cache.Set(s.ID, s, st.ttl)
}

// Delete removes a session immediately.
func (st *Store) Delete(id string) {
	st.cache.Delete(id)
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	return st.cache.ItemCount()
}
