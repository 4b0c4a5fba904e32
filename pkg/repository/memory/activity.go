package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
)

type activityRepository struct {
	mu            sync.RWMutex
	repos         map[types.RepositoryID]*model.Repository
	workingCopies map[types.WorkingCopyID]*model.WorkingCopy
	commits       map[types.CommitID]*model.Commit
	users         map[types.UserID]*model.User
}

// Repository operations

func (r *activityRepository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if repo == nil || repo.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.repos[repo.ID] = copyRepository(repo)
	return nil
}

func (r *activityRepository) GetRepository(ctx context.Context, repoID types.RepositoryID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[repoID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", repoID),
		)
	}

	return copyRepository(repo), nil
}

// WorkingCopy operations

func (r *activityRepository) PutWorkingCopy(ctx context.Context, wc *model.WorkingCopy) error {
	if wc == nil || wc.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "working copy ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// A snapshot supersedes the previous one as a whole
	r.workingCopies[wc.ID] = copyWorkingCopy(wc)
	return nil
}

func (r *activityRepository) ListWorkingCopies(ctx context.Context, repoID types.RepositoryID) ([]*model.WorkingCopy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var copies []*model.WorkingCopy
	for _, wc := range r.workingCopies {
		if wc.RepositoryID == repoID {
			copies = append(copies, copyWorkingCopy(wc))
		}
	}

	slices.SortFunc(copies, func(a, b *model.WorkingCopy) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return copies, nil
}

// Commit operations

func (r *activityRepository) PutCommit(ctx context.Context, commit *model.Commit) error {
	if commit == nil || commit.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "commit ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.commits[commit.ID] = copyCommit(commit)
	return nil
}

func (r *activityRepository) GetCommits(ctx context.Context, ids []types.CommitID) ([]*model.Commit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[types.CommitID]bool, len(ids))
	var commits []*model.Commit
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if commit, exists := r.commits[id]; exists {
			commits = append(commits, copyCommit(commit))
		}
	}

	model.SortCommits(commits)
	return commits, nil
}

func (r *activityRepository) GetLastPushedCommit(ctx context.Context, repoID types.RepositoryID, userID types.UserID) (*model.Commit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var candidates []*model.Commit
	for _, commit := range r.commits {
		if commit.Invalid && commit.RepositoryID == repoID && commit.UserID == userID {
			candidates = append(candidates, commit)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	model.SortCommits(candidates)
	return copyCommit(candidates[0]), nil
}

// User operations

func (r *activityRepository) PutUser(ctx context.Context, user *model.User) error {
	if user == nil || user.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "user ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *activityRepository) GetUser(ctx context.Context, userID types.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[userID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", userID),
		)
	}

	return copyUser(user), nil
}

// Helper functions for deep copy

func copyRepository(repo *model.Repository) *model.Repository {
	if repo == nil {
		return nil
	}
	cpy := *repo
	return &cpy
}

func copyCommit(commit *model.Commit) *model.Commit {
	if commit == nil {
		return nil
	}
	cpy := *commit
	return &cpy
}

func copyUser(user *model.User) *model.User {
	if user == nil {
		return nil
	}
	cpy := *user
	return &cpy
}

func copyWorkingCopy(wc *model.WorkingCopy) *model.WorkingCopy {
	if wc == nil {
		return nil
	}
	cpy := *wc

	if wc.CommitIDs != nil {
		cpy.CommitIDs = make([]types.CommitID, len(wc.CommitIDs))
		copy(cpy.CommitIDs, wc.CommitIDs)
	}

	if wc.FileStats != nil {
		stats := *wc.FileStats
		cpy.FileStats = &stats
	}

	if wc.GitDiff != nil {
		cpy.GitDiff = make([]model.FileDiff, len(wc.GitDiff))
		copy(cpy.GitDiff, wc.GitDiff)
	}

	if wc.UntrackedFiles != nil {
		cpy.UntrackedFiles = make([]model.UntrackedFile, len(wc.UntrackedFiles))
		copy(cpy.UntrackedFiles, wc.UntrackedFiles)
	}

	return &cpy
}
