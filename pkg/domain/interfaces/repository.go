package interfaces

import (
	"context"

	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
)

//go:generate moq -out ../mock/repository_mock.go -pkg mock . ActivityRepository SessionRepository

// ActivityRepository reads the records written by the collector. Writer
// methods exist for the collector side, fixtures and tests.
type ActivityRepository interface {
	// Repository operations
	PutRepository(ctx context.Context, repo *model.Repository) error
	GetRepository(ctx context.Context, repoID types.RepositoryID) (*model.Repository, error)

	// WorkingCopy operations. ListWorkingCopies returns newest first.
	PutWorkingCopy(ctx context.Context, wc *model.WorkingCopy) error
	ListWorkingCopies(ctx context.Context, repoID types.RepositoryID) ([]*model.WorkingCopy, error)

	// Commit operations. GetCommits returns newest first and silently skips
	// unknown IDs. GetLastPushedCommit returns nil without error when the
	// user has no invalid commit in the repository.
	PutCommit(ctx context.Context, commit *model.Commit) error
	GetCommits(ctx context.Context, ids []types.CommitID) ([]*model.Commit, error)
	GetLastPushedCommit(ctx context.Context, repoID types.RepositoryID, userID types.UserID) (*model.Commit, error)

	// User operations
	PutUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, userID types.UserID) (*model.User, error)
}

// SessionRepository keeps per-viewer state in process memory.
type SessionRepository interface {
	// GetSession returns a copy of the session, creating an empty one if id
	// is unknown.
	GetSession(ctx context.Context, id types.SessionID) (*model.Session, error)
	// UpdateSession applies fn to the stored session atomically and returns
	// a copy of the result.
	UpdateSession(ctx context.Context, id types.SessionID, fn func(s *model.Session)) (*model.Session, error)
}
