package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"ai-csvchat-be/internal/entity"
)

// SessionRepository owns the session-id to context mapping for the process
// lifetime. go-cache is safe for concurrent use across sessions; callers
// serialize their own requests within one session.
type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository builds the store. ttl <= 0 keeps contexts until the
// process exits or an explicit clear, which means memory grows with every
// distinct upload; a positive ttl evicts idle sessions.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		return &SessionRepository{cache: cache.New(cache.NoExpiration, 0)}
	}
	return &SessionRepository{cache: cache.New(ttl, 10*time.Minute)}
}

// Save stores the context under a freshly generated id and returns it. Ids
// are generated here, never caller-supplied, so an existing entry is never
// overwritten.
func (r *SessionRepository) Save(sc *entity.SessionContext) string {
	sc.Id = uuid.New()
	r.cache.Set(sc.Id.String(), sc, cache.DefaultExpiration)
	return sc.Id.String()
}

func (r *SessionRepository) Get(sessionID string) (*entity.SessionContext, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*entity.SessionContext), true
	}
	return nil, false
}

// Delete is a no-op for absent ids.
func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Flush removes every stored session.
func (r *SessionRepository) Flush() {
	r.cache.Flush()
}
