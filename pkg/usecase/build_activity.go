package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// entryConcurrency bounds store lookups running at once for one build.
const entryConcurrency = 8

// BuildActivity joins every working copy of repoID with its owner and
// commits, ordered by CompareActivity. Missing users or commits never fail
// the build. A failure to list working copies is logged and results in an
// empty list.
//
// Concurrent calls for the same repository share one build, so the returned
// entries must be treated as read only.
func (x *UseCase) BuildActivity(ctx context.Context, repoID types.RepositoryID) ([]*model.ActivityEntry, error) {
	v, err, shared := x.activity.Do(string(repoID), func() (any, error) {
		return x.buildActivity(context.WithoutCancel(ctx), repoID), nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build activity", goerr.V("repo_id", repoID))
	}
	if shared {
		logging.From(ctx).Debug("activity build shared", slog.Any("repo_id", repoID))
	}

	return v.([]*model.ActivityEntry), nil
}

func (x *UseCase) buildActivity(ctx context.Context, repoID types.RepositoryID) []*model.ActivityEntry {
	logger := logging.From(ctx).With(slog.Any("repo_id", repoID))
	repo := x.clients.ActivityRepository()

	copies, err := repo.ListWorkingCopies(ctx, repoID)
	if err != nil {
		logger.Error("failed to list working copies", "error", err)
		return []*model.ActivityEntry{}
	}

	// entries keeps the timestamp order of copies until the stable sort
	entries := make([]*model.ActivityEntry, len(copies))
	var g errgroup.Group
	g.SetLimit(entryConcurrency)
	for i, wc := range copies {
		if wc == nil {
			continue
		}
		g.Go(func() error {
			entries[i] = x.buildEntry(ctx, logger, repoID, wc)
			return nil
		})
	}
	_ = g.Wait()
	entries = slices.DeleteFunc(entries, func(e *model.ActivityEntry) bool { return e == nil })

	slices.SortStableFunc(entries, CompareActivity)

	logger.Debug("activity built", slog.Int("entries", len(entries)))
	return entries
}

func (x *UseCase) buildEntry(ctx context.Context, logger *slog.Logger, repoID types.RepositoryID, wc *model.WorkingCopy) *model.ActivityEntry {
	repo := x.clients.ActivityRepository()
	logger = logger.With(slog.Any("working_copy_id", wc.ID), slog.Any("user_id", wc.UserID))

	entry := &model.ActivityEntry{
		WorkingCopy: wc,
		Commits:     []*model.Commit{},
	}

	commits, err := repo.GetCommits(ctx, wc.CommitIDs)
	if err != nil {
		logger.Warn("failed to get commits", "error", err)
	} else if commits != nil {
		entry.Commits = commits
	}
	if len(entry.Commits) < len(wc.CommitIDs) {
		logger.Debug("some commits are missing",
			slog.Int("referenced", len(wc.CommitIDs)),
			slog.Int("found", len(entry.Commits)),
		)
	}

	user, err := repo.GetUser(ctx, wc.UserID)
	switch {
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		logger.Warn("failed to get owner of working copy", "error", err)
	case err != nil || user == nil:
		logger.Warn("owner of working copy not found")
	default:
		entry.User = user
		entry.IdentityHash = x.clients.Hasher().Hash(user.NormalizedEmail())
	}

	pushed, err := repo.GetLastPushedCommit(ctx, repoID, wc.UserID)
	if err != nil {
		logger.Warn("failed to get last pushed commit", "error", err)
	} else {
		entry.LastPushedCommit = pushed
	}

	return entry
}

// CompareActivity orders entries with commits before entries without. Entries
// with commits are ordered by their first commit, newest first. Entries
// without commits are ordered by email ascending. Other pairs compare equal.
func CompareActivity(a, b *model.ActivityEntry) int {
	ac, bc := a.FirstCommit(), b.FirstCommit()
	switch {
	case ac != nil && bc != nil:
		return bc.Timestamp.Compare(ac.Timestamp)
	case ac != nil:
		return -1
	case bc != nil:
		return 1
	default:
		return strings.Compare(a.Email(), b.Email())
	}
}
