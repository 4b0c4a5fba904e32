package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
)

type UseCase interface {
	ResolveRepository(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID) (*model.Resolution, error)
	BuildActivity(ctx context.Context, repoID types.RepositoryID) ([]*model.ActivityEntry, error)
	BuildDashboard(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID) (*model.Dashboard, error)
	ToggleExpanded(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID, wcID types.WorkingCopyID) (*model.Selection, error)
	ToggleDiff(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID, wcID types.WorkingCopyID, file string) (*model.Selection, error)
	ExportActivity(ctx context.Context, repoID types.RepositoryID) (int, error)
}
