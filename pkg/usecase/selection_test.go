package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/domain/mock"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/infra"
	"github.com/m-mizutani/livegit/pkg/repository"
	"github.com/m-mizutani/livegit/pkg/repository/memory"
	"github.com/m-mizutani/livegit/pkg/usecase"
)

// newSelectionUseCase seeds working copies wc1, wc2, A and B in r1 and wcX in r2.
func newSelectionUseCase(t *testing.T) *usecase.UseCase {
	t.Helper()
	uc, repo := newTestUseCase(t)
	for _, id := range []types.WorkingCopyID{"wc1", "wc2", "A", "B"} {
		gt.NoError(t, repo.PutWorkingCopy(context.Background(), &model.WorkingCopy{ID: id, RepositoryID: "r1", UserID: "u1", Timestamp: baseTime}))
	}
	gt.NoError(t, repo.PutWorkingCopy(context.Background(), &model.WorkingCopy{ID: "wcX", RepositoryID: "r2", UserID: "u2", Timestamp: baseTime}))
	return uc
}

func TestToggleExpanded(t *testing.T) {
	ctx := context.Background()

	t.Run("twice returns to prior state", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		sel := gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "wc1")).NoError(t)
		gt.V(t, sel.ExpandedWorkingCopyID).Equal("wc1")

		sel = gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "wc1")).NoError(t)
		gt.V(t, sel.ExpandedWorkingCopyID).Equal("")
	})

	t.Run("single expansion", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_ = gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "wc1")).NoError(t)
		sel := gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "wc2")).NoError(t)
		gt.V(t, sel.ExpandedWorkingCopyID).Equal("wc2")
	})

	t.Run("sessions are independent", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_ = gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "wc1")).NoError(t)
		sel := gt.R1(uc.ToggleExpanded(ctx, "s2", "r1", "wc2")).NoError(t)
		gt.V(t, sel.ExpandedWorkingCopyID).Equal("wc2")

		sel = gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "wc1")).NoError(t)
		gt.V(t, sel.ExpandedWorkingCopyID).Equal("")
	})

	t.Run("store error is returned", func(t *testing.T) {
		sessions := &mock.SessionRepositoryMock{
			UpdateSessionFunc: func(ctx context.Context, id types.SessionID, fn func(s *model.Session)) (*model.Session, error) {
				return nil, errors.New("broken")
			},
		}
		repo := memory.New()
		gt.NoError(t, repo.PutWorkingCopy(ctx, &model.WorkingCopy{ID: "wc1", RepositoryID: "r1"}))
		uc := usecase.New(infra.New(
			infra.WithActivityRepository(repo),
			infra.WithSessionRepository(sessions),
		))
		_, err := uc.ToggleExpanded(ctx, "s1", "r1", "wc1")
		gt.Error(t, err)
	})

	t.Run("working copy of another repository is rejected", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_, err := uc.ToggleExpanded(ctx, "s1", "r1", "wcX")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		// empty file leaves the selection as it is
		sel := gt.R1(uc.ToggleDiff(ctx, "s1", "r2", "wcX", "")).NoError(t)
		gt.V(t, sel.ExpandedWorkingCopyID).Equal("")
	})

	t.Run("store error on lookup is returned", func(t *testing.T) {
		repo := &mock.ActivityRepositoryMock{
			ListWorkingCopiesFunc: func(ctx context.Context, repoID types.RepositoryID) ([]*model.WorkingCopy, error) {
				return nil, errors.New("unavailable")
			},
		}
		uc := usecase.New(infra.New(infra.WithActivityRepository(repo)))
		_, err := uc.ToggleExpanded(ctx, "s1", "r1", "wc1")
		gt.Error(t, err)
		gt.False(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestToggleDiff(t *testing.T) {
	ctx := context.Background()

	t.Run("single open diff", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_ = gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "A", "f1")).NoError(t)
		sel := gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "B", "f2")).NoError(t)
		gt.V(t, sel.OpenDiffWorkingCopyID).Equal("B")
		gt.V(t, sel.OpenDiffFile).Equal("f2")
	})

	t.Run("same working copy closes whatever the file", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_ = gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "A", "f1")).NoError(t)
		sel := gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "A", "f2")).NoError(t)
		gt.V(t, sel.OpenDiffWorkingCopyID).Equal("")
		gt.V(t, sel.OpenDiffFile).Equal("")
	})

	t.Run("empty file is ignored", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_ = gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "A", "f1")).NoError(t)
		sel := gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "A", "")).NoError(t)
		gt.V(t, sel.OpenDiffWorkingCopyID).Equal("A")
		gt.V(t, sel.OpenDiffFile).Equal("f1")
	})

	t.Run("working copy of another repository is rejected", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_ = gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "A", "f1")).NoError(t)
		_, err := uc.ToggleDiff(ctx, "s1", "r2", "A", "f2")
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		sel := gt.R1(uc.ToggleDiff(ctx, "s1", "r2", "wcX", "")).NoError(t)
		gt.V(t, sel.OpenDiffWorkingCopyID).Equal("A")
		gt.V(t, sel.OpenDiffFile).Equal("f1")
	})

	t.Run("diff and expansion do not interfere", func(t *testing.T) {
		uc := newSelectionUseCase(t)

		_ = gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "A")).NoError(t)
		sel := gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "A", "f1")).NoError(t)
		gt.V(t, sel.ExpandedWorkingCopyID).Equal("A")
		gt.V(t, sel.OpenDiffWorkingCopyID).Equal("A")
	})
}
