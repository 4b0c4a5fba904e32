package model

import (
	"time"

	"github.com/m-mizutani/livegit/pkg/domain/types"
)

// WorkingCopy is the latest local state of one user on one repository. The
// collector replaces it as a whole on every update.
type WorkingCopy struct {
	ID             types.WorkingCopyID `json:"id" yaml:"id"`
	RepositoryID   types.RepositoryID  `json:"repository_id" yaml:"repository_id"`
	UserID         types.UserID        `json:"user_id" yaml:"user_id"`
	Timestamp      time.Time           `json:"timestamp" yaml:"timestamp"`
	BranchName     string              `json:"branch_name" yaml:"branch_name"`
	CommitIDs      []types.CommitID    `json:"commit_ids" yaml:"commit_ids"`
	FileStats      *FileStats          `json:"file_stats,omitempty" yaml:"file_stats"`
	GitDiff        []FileDiff          `json:"git_diff" yaml:"git_diff"`
	UntrackedFiles []UntrackedFile     `json:"untracked_files" yaml:"untracked_files"`
}

type FileStats struct {
	NumAhead  int `json:"num_ahead" yaml:"num_ahead"`
	NumBehind int `json:"num_behind" yaml:"num_behind"`
}

type FileDiff struct {
	File         string    `json:"file" yaml:"file"`
	Content      string    `json:"content" yaml:"content"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

type UntrackedFile struct {
	Filename     string    `json:"filename" yaml:"filename"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

// Stats returns FileStats, or zero counts when the snapshot has none.
func (x *WorkingCopy) Stats() FileStats {
	if x == nil || x.FileStats == nil {
		return FileStats{}
	}
	return *x.FileStats
}

// HasPendingChanges reports uncommitted edits or untracked files.
func (x *WorkingCopy) HasPendingChanges() bool {
	if x == nil {
		return false
	}
	return len(x.GitDiff) > 0 || len(x.UntrackedFiles) > 0
}

// FindDiff returns the diff entry of file, or nil.
func (x *WorkingCopy) FindDiff(file string) *FileDiff {
	if x == nil {
		return nil
	}
	for i := range x.GitDiff {
		if x.GitDiff[i].File == file {
			return &x.GitDiff[i]
		}
	}
	return nil
}
