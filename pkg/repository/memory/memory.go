package memory

import (
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
)

// New creates a new in-memory activity repository
func New() interfaces.ActivityRepository {
	return &activityRepository{
		repos:         make(map[types.RepositoryID]*model.Repository),
		workingCopies: make(map[types.WorkingCopyID]*model.WorkingCopy),
		commits:       make(map[types.CommitID]*model.Commit),
		users:         make(map[types.UserID]*model.User),
	}
}

// NewSessionRepository creates a new in-memory session repository. Sessions
// idle for DefaultSessionTTL are dropped unless WithSessionTTL says otherwise.
func NewSessionRepository(options ...SessionOption) interfaces.SessionRepository {
	r := &sessionRepository{
		sessions: make(map[types.SessionID]*model.Session),
		ttl:      DefaultSessionTTL,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}
