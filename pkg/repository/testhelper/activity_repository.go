package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
)

// TestAll runs all test cases for ActivityRepository
// This is the main entry point for testing any ActivityRepository implementation
func TestAll(t *testing.T, repo interfaces.ActivityRepository) {
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, repo)
	})
	t.Run("UserCRUD", func(t *testing.T) {
		TestUserCRUD(t, repo)
	})
	t.Run("WorkingCopyOrder", func(t *testing.T) {
		TestWorkingCopyOrder(t, repo)
	})
	t.Run("WorkingCopySupersede", func(t *testing.T) {
		TestWorkingCopySupersede(t, repo)
	})
	t.Run("CommitJoin", func(t *testing.T) {
		TestCommitJoin(t, repo)
	})
	t.Run("LastPushedCommit", func(t *testing.T) {
		TestLastPushedCommit(t, repo)
	})
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

// TestRepositoryCRUD tests basic operations for Repository
func TestRepositoryCRUD(t *testing.T, repo interfaces.ActivityRepository) {
	ctx := context.Background()
	repoID := types.RepositoryID(newID("repo"))

	gt.NoError(t, repo.PutRepository(ctx, &model.Repository{
		ID:  repoID,
		URL: "git@github.com:example/proj.git",
	}))

	retrieved, err := repo.GetRepository(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(repoID)
	gt.V(t, retrieved.URL).Equal("git@github.com:example/proj.git")
	gt.V(t, retrieved.Name).Equal("")

	// Update the repository
	gt.NoError(t, repo.PutRepository(ctx, &model.Repository{
		ID:   repoID,
		URL:  "git@github.com:example/proj.git",
		Name: "Project",
	}))
	retrieved, err = repo.GetRepository(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Name).Equal("Project")

	// Test not found
	_, err = repo.GetRepository(ctx, types.RepositoryID(newID("nonexistent")))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestUserCRUD tests basic operations for User
func TestUserCRUD(t *testing.T, repo interfaces.ActivityRepository) {
	ctx := context.Background()
	userID := types.UserID(newID("user"))

	gt.NoError(t, repo.PutUser(ctx, &model.User{ID: userID, Email: "alice@example.com"}))

	retrieved, err := repo.GetUser(ctx, userID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Email).Equal("alice@example.com")

	_, err = repo.GetUser(ctx, types.UserID(newID("nonexistent")))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestWorkingCopyOrder tests that working copies are listed per repository, newest first
func TestWorkingCopyOrder(t *testing.T, repo interfaces.ActivityRepository) {
	ctx := context.Background()
	repoID := types.RepositoryID(newID("repo"))
	otherRepoID := types.RepositoryID(newID("repo"))
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	wcOld := &model.WorkingCopy{ID: types.WorkingCopyID(newID("wc")), RepositoryID: repoID, UserID: "u1", Timestamp: base}
	wcNew := &model.WorkingCopy{ID: types.WorkingCopyID(newID("wc")), RepositoryID: repoID, UserID: "u2", Timestamp: base.Add(time.Hour)}
	wcOther := &model.WorkingCopy{ID: types.WorkingCopyID(newID("wc")), RepositoryID: otherRepoID, UserID: "u3", Timestamp: base}

	for _, wc := range []*model.WorkingCopy{wcOld, wcOther, wcNew} {
		gt.NoError(t, repo.PutWorkingCopy(ctx, wc))
	}

	copies, err := repo.ListWorkingCopies(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, len(copies)).Equal(2)
	gt.V(t, copies[0].ID).Equal(wcNew.ID)
	gt.V(t, copies[1].ID).Equal(wcOld.ID)

	empty, err := repo.ListWorkingCopies(ctx, types.RepositoryID(newID("empty")))
	gt.NoError(t, err)
	gt.V(t, len(empty)).Equal(0)
}

// TestWorkingCopySupersede tests that a new snapshot replaces the previous one as a whole
func TestWorkingCopySupersede(t *testing.T, repo interfaces.ActivityRepository) {
	ctx := context.Background()
	repoID := types.RepositoryID(newID("repo"))
	wcID := types.WorkingCopyID(newID("wc"))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	gt.NoError(t, repo.PutWorkingCopy(ctx, &model.WorkingCopy{
		ID:             wcID,
		RepositoryID:   repoID,
		UserID:         "u1",
		Timestamp:      now,
		BranchName:     "main",
		CommitIDs:      []types.CommitID{"c1", "c2"},
		FileStats:      &model.FileStats{NumAhead: 2, NumBehind: 1},
		GitDiff:        []model.FileDiff{{File: "a.go", Content: "+x", LastModified: now}},
		UntrackedFiles: []model.UntrackedFile{{Filename: "b.go", LastModified: now}},
	}))

	gt.NoError(t, repo.PutWorkingCopy(ctx, &model.WorkingCopy{
		ID:           wcID,
		RepositoryID: repoID,
		UserID:       "u1",
		Timestamp:    now.Add(time.Minute),
		BranchName:   "feature/x",
		CommitIDs:    []types.CommitID{"c3"},
	}))

	copies, err := repo.ListWorkingCopies(ctx, repoID)
	gt.NoError(t, err)
	gt.V(t, len(copies)).Equal(1)
	gt.V(t, copies[0].BranchName).Equal("feature/x")
	gt.V(t, copies[0].CommitIDs).Equal([]types.CommitID{"c3"})
	gt.V(t, copies[0].FileStats == nil).Equal(true)
	gt.V(t, len(copies[0].GitDiff)).Equal(0)
	gt.V(t, len(copies[0].UntrackedFiles)).Equal(0)
}

// TestCommitJoin tests that commits are joined by ID, newest first, dropping unknown IDs
func TestCommitJoin(t *testing.T, repo interfaces.ActivityRepository) {
	ctx := context.Background()
	repoID := types.RepositoryID(newID("repo"))
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	c1 := &model.Commit{ID: types.CommitID(newID("c")), RepositoryID: repoID, UserID: "u1", Timestamp: base, BranchName: "main"}
	c2 := &model.Commit{ID: types.CommitID(newID("c")), RepositoryID: repoID, UserID: "u1", Timestamp: base.Add(2 * time.Hour), BranchName: "main"}
	c3 := &model.Commit{ID: types.CommitID(newID("c")), RepositoryID: repoID, UserID: "u1", Timestamp: base.Add(time.Hour), BranchName: "main", Message: "fix"}
	for _, c := range []*model.Commit{c1, c2, c3} {
		gt.NoError(t, repo.PutCommit(ctx, c))
	}

	commits, err := repo.GetCommits(ctx, []types.CommitID{c1.ID, types.CommitID(newID("missing")), c3.ID, c2.ID})
	gt.NoError(t, err)
	gt.V(t, len(commits)).Equal(3)
	gt.V(t, commits[0].ID).Equal(c2.ID)
	gt.V(t, commits[1].ID).Equal(c3.ID)
	gt.V(t, commits[1].Message).Equal("fix")
	gt.V(t, commits[2].ID).Equal(c1.ID)

	none, err := repo.GetCommits(ctx, nil)
	gt.NoError(t, err)
	gt.V(t, len(none)).Equal(0)
}

// TestLastPushedCommit tests lookup of the most recent invalid commit of a user
func TestLastPushedCommit(t *testing.T, repo interfaces.ActivityRepository) {
	ctx := context.Background()
	repoID := types.RepositoryID(newID("repo"))
	userID := types.UserID(newID("user"))
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	commit, err := repo.GetLastPushedCommit(ctx, repoID, userID)
	gt.NoError(t, err)
	gt.V(t, commit == nil).Equal(true)

	older := &model.Commit{ID: types.CommitID(newID("c")), RepositoryID: repoID, UserID: userID, Timestamp: base, Invalid: true}
	newer := &model.Commit{ID: types.CommitID(newID("c")), RepositoryID: repoID, UserID: userID, Timestamp: base.Add(time.Hour), Invalid: true}
	local := &model.Commit{ID: types.CommitID(newID("c")), RepositoryID: repoID, UserID: userID, Timestamp: base.Add(2 * time.Hour)}
	otherUser := &model.Commit{ID: types.CommitID(newID("c")), RepositoryID: repoID, UserID: types.UserID(newID("user")), Timestamp: base.Add(3 * time.Hour), Invalid: true}
	for _, c := range []*model.Commit{older, newer, local, otherUser} {
		gt.NoError(t, repo.PutCommit(ctx, c))
	}

	commit, err = repo.GetLastPushedCommit(ctx, repoID, userID)
	gt.NoError(t, err)
	gt.V(t, commit.ID).Equal(newer.ID)
	gt.True(t, commit.Invalid)
}
