package model

import (
	"cmp"
	"slices"
	"time"

	"github.com/m-mizutani/livegit/pkg/domain/types"
)

// Commit is immutable once written by the collector. Invalid marks a commit
// known to be pushed to the remote but absent from any local commit list.
type Commit struct {
	ID           types.CommitID     `json:"id" yaml:"id"`
	RepositoryID types.RepositoryID `json:"repository_id" yaml:"repository_id"`
	UserID       types.UserID       `json:"user_id" yaml:"user_id"`
	Timestamp    time.Time          `json:"timestamp" yaml:"timestamp"`
	BranchName   string             `json:"branch_name" yaml:"branch_name"`
	Message      string             `json:"message,omitempty" yaml:"message"`
	Invalid      bool               `json:"invalid,omitempty" yaml:"invalid"`
}

// SortCommits orders commits newest first. Equal timestamps fall back to ID
// so that the order is deterministic.
func SortCommits(commits []*Commit) {
	slices.SortFunc(commits, func(a, b *Commit) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
