package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/domain/mock"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/infra"
	"github.com/m-mizutani/livegit/pkg/usecase"
)

func TestBuildDashboard(t *testing.T) {
	ctx := context.Background()

	highlighter := func() *mock.HighlighterMock {
		return &mock.HighlighterMock{
			HighlightFunc: func(language string, text string) (string, error) {
				return "<" + language + ">" + text, nil
			},
		}
	}

	setup := func(t *testing.T, options ...infra.Option) *usecase.UseCase {
		uc, repo := newTestUseCase(t, options...)
		gt.NoError(t, repo.PutRepository(ctx, &model.Repository{ID: "r1", URL: "git@host:org/proj.git"}))
		gt.NoError(t, repo.PutUser(ctx, &model.User{ID: "u1", Email: "alice@example.com"}))
		gt.NoError(t, repo.PutUser(ctx, &model.User{ID: "u2", Email: "bob@example.com"}))
		putCommit(t, repo, "c0", "r1", "u1", baseTime)
		gt.NoError(t, repo.PutWorkingCopy(ctx, &model.WorkingCopy{
			ID:           "wc1",
			RepositoryID: "r1",
			UserID:       "u1",
			Timestamp:    baseTime,
			BranchName:   "main",
			CommitIDs:    []types.CommitID{"c0"},
			FileStats:    &model.FileStats{NumAhead: 1, NumBehind: 2},
			GitDiff: []model.FileDiff{
				{File: "main.go", Content: "+hello", LastModified: baseTime.Add(time.Minute)},
			},
		}))
		gt.NoError(t, repo.PutWorkingCopy(ctx, &model.WorkingCopy{
			ID:           "wc2",
			RepositoryID: "r1",
			UserID:       "u2",
			Timestamp:    baseTime.Add(-time.Hour),
		}))
		return uc
	}

	t.Run("pending repository has no users", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		d := gt.R1(uc.BuildDashboard(ctx, "s1", "r1")).NoError(t)
		gt.V(t, d.Resolution.Status).Equal(types.ResolvePending)
		gt.V(t, d.Title).Equal("Loading...")
		gt.A(t, d.Users).Length(0)

		d = gt.R1(uc.BuildDashboard(ctx, "s1", "r1")).NoError(t)
		gt.V(t, d.Title).Equal("Error: invalid repository ID")
	})

	t.Run("cards of found repository", func(t *testing.T) {
		uc := setup(t, infra.WithHighlighter(highlighter()))

		d := gt.R1(uc.BuildDashboard(ctx, "s1", "r1")).NoError(t)
		gt.V(t, d.Title).Equal("proj")
		gt.A(t, d.Users).Length(2)

		alice := d.Users[0]
		gt.V(t, alice.Entry.WorkingCopy.ID).Equal("wc1")
		gt.V(t, alice.TopItem).Equal(nil)
		gt.V(t, alice.Pending.FirstFile.File).Equal("main.go")
		gt.V(t, itemIDs(alice.OlderItems)).Equal([]types.CommitID{"c0"})
		gt.V(t, alice.ShowOrHide).Equal("Show")
		gt.V(t, alice.IdleMessage).Equal("")
		gt.False(t, alice.ShowingDiff)
		gt.V(t, alice.BranchChart.AheadMarks).Equal(1)
		gt.A(t, alice.BranchChart.BehindMarks).Length(2)

		bob := d.Users[1]
		gt.V(t, bob.Entry.WorkingCopy.ID).Equal("wc2")
		gt.V(t, bob.IdleMessage).Equal(usecase.IdleMessage)
		gt.V(t, bob.Pending).Equal(nil)
	})

	t.Run("selection of the session is applied", func(t *testing.T) {
		hl := highlighter()
		uc := setup(t, infra.WithHighlighter(hl))

		_ = gt.R1(uc.ToggleExpanded(ctx, "s1", "r1", "wc1")).NoError(t)
		_ = gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "wc1", "main.go")).NoError(t)

		d := gt.R1(uc.BuildDashboard(ctx, "s1", "r1")).NoError(t)
		gt.V(t, d.Selection.ExpandedWorkingCopyID).Equal("wc1")

		alice := d.Users[0]
		gt.V(t, alice.ShowOrHide).Equal("Hide")
		gt.True(t, alice.ShowingDiff)
		gt.V(t, alice.FileDiff).Equal("<diff>+hello")
		gt.A(t, hl.HighlightCalls()).Length(1)

		// another session sees nothing selected
		d = gt.R1(uc.BuildDashboard(ctx, "s2", "r1")).NoError(t)
		gt.V(t, d.Users[0].ShowOrHide).Equal("Show")
		gt.False(t, d.Users[0].ShowingDiff)
	})

	t.Run("unknown diff file shows nothing", func(t *testing.T) {
		hl := highlighter()
		uc := setup(t, infra.WithHighlighter(hl))

		_ = gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "wc1", "deleted.go")).NoError(t)

		d := gt.R1(uc.BuildDashboard(ctx, "s1", "r1")).NoError(t)
		gt.True(t, d.Users[0].ShowingDiff)
		gt.V(t, d.Users[0].FileDiff).Equal("")
		gt.A(t, hl.HighlightCalls()).Length(0)
	})

	t.Run("highlight failure keeps the card", func(t *testing.T) {
		hl := &mock.HighlighterMock{
			HighlightFunc: func(language string, text string) (string, error) {
				return "", errors.New("bad lexer")
			},
		}
		uc := setup(t, infra.WithHighlighter(hl))

		_ = gt.R1(uc.ToggleDiff(ctx, "s1", "r1", "wc1", "main.go")).NoError(t)
		d := gt.R1(uc.BuildDashboard(ctx, "s1", "r1")).NoError(t)
		gt.A(t, d.Users).Length(2)
		gt.V(t, d.Users[0].FileDiff).Equal("")
	})
}
