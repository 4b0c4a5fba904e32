package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// DefaultSessionTTL is how long an untouched session is kept.
const DefaultSessionTTL = 24 * time.Hour

type SessionOption func(*sessionRepository)

// WithSessionTTL drops sessions that have not been read or updated for ttl.
// Zero or negative keeps sessions forever.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(r *sessionRepository) {
		r.ttl = ttl
	}
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[types.SessionID]*model.Session

	ttl       time.Duration
	lastSweep time.Time
}

func (r *sessionRepository) GetSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	return r.UpdateSession(ctx, id, func(s *model.Session) {})
}

func (r *sessionRepository) UpdateSession(ctx context.Context, id types.SessionID, fn func(s *model.Session)) (*model.Session, error) {
	if id == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "session ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := logging.CtxTime(ctx)
	r.sweep(ctx, now)

	session, exists := r.sessions[id]
	if exists && r.expired(session, now) {
		exists = false
	}
	if !exists {
		session = model.NewSession(id, now)
		r.sessions[id] = session
	}

	fn(session)
	session.UpdatedAt = now

	return session.Copy(), nil
}

func (r *sessionRepository) expired(s *model.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.UpdatedAt) > r.ttl
}

// sweep removes expired sessions at most once per ttl. Caller holds r.mu.
func (r *sessionRepository) sweep(ctx context.Context, now time.Time) {
	if r.ttl <= 0 || now.Sub(r.lastSweep) < r.ttl {
		return
	}
	r.lastSweep = now

	var n int
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			n++
		}
	}
	if n > 0 {
		logging.From(ctx).Debug("expired sessions removed", "count", n, "remaining", len(r.sessions))
	}
}

func (r *sessionRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
