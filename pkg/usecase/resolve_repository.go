package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// ResolveRepository looks up repoID on behalf of a session. The collector
// may not have written the repository yet, so the first empty lookup of a
// session reports pending and only later ones report not found. Once a
// session has searched for repoID it never sees pending for it again.
func (x *UseCase) ResolveRepository(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID) (*model.Resolution, error) {
	if repoID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository ID is empty")
	}

	repo, err := x.clients.ActivityRepository().GetRepository(ctx, repoID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repo_id", repoID))
		}
		repo = nil
	}

	var searched bool
	if _, err := x.clients.SessionRepository().UpdateSession(ctx, sessionID, func(s *model.Session) {
		searched = s.Searched[repoID]
		s.Searched[repoID] = true
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to update session", goerr.V("repo_id", repoID))
	}

	switch {
	case repo != nil:
		return &model.Resolution{
			Status:     types.ResolveFound,
			Repository: repo,
			Name:       repo.DisplayName(),
		}, nil

	case searched:
		logging.From(ctx).Debug("repository not found", slog.Any("repo_id", repoID))
		return &model.Resolution{Status: types.ResolveNotFound}, nil

	default:
		return &model.Resolution{Status: types.ResolvePending}, nil
	}
}
