package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// ToggleExpanded expands or collapses the commit list of wcID for the
// session and returns the resulting selection. wcID must belong to repoID.
func (x *UseCase) ToggleExpanded(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID, wcID types.WorkingCopyID) (*model.Selection, error) {
	if err := x.requireWorkingCopy(ctx, repoID, wcID); err != nil {
		return nil, err
	}
	return x.updateSelection(ctx, sessionID, func(sel *model.Selection) {
		sel.ToggleExpanded(wcID)
	})
}

// ToggleDiff opens or closes the diff of file in wcID for the session. An
// empty file leaves the selection unchanged.
func (x *UseCase) ToggleDiff(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID, wcID types.WorkingCopyID, file string) (*model.Selection, error) {
	if err := x.requireWorkingCopy(ctx, repoID, wcID); err != nil {
		return nil, err
	}
	if file == "" {
		logging.From(ctx).Debug("diff toggle without file is ignored", slog.Any("working_copy_id", wcID))
	}
	return x.updateSelection(ctx, sessionID, func(sel *model.Selection) {
		sel.ToggleDiff(wcID, file)
	})
}

func (x *UseCase) requireWorkingCopy(ctx context.Context, repoID types.RepositoryID, wcID types.WorkingCopyID) error {
	copies, err := x.clients.ActivityRepository().ListWorkingCopies(ctx, repoID)
	if err != nil {
		return goerr.Wrap(err, "failed to list working copies", goerr.V("repo_id", repoID))
	}
	for _, wc := range copies {
		if wc != nil && wc.ID == wcID {
			return nil
		}
	}
	return goerr.Wrap(repository.ErrNotFound, "working copy is not in repository",
		goerr.V("repo_id", repoID),
		goerr.V("working_copy_id", wcID),
	)
}

func (x *UseCase) updateSelection(ctx context.Context, sessionID types.SessionID, fn func(sel *model.Selection)) (*model.Selection, error) {
	session, err := x.clients.SessionRepository().UpdateSession(ctx, sessionID, func(s *model.Session) {
		fn(&s.Selection)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update selection", goerr.V("session_id", sessionID))
	}

	sel := session.Selection
	return &sel, nil
}
