package model

import (
	"time"

	"github.com/m-mizutani/livegit/pkg/domain/types"
)

// ActivityEntry joins one working copy with its owner and commits. It is
// rebuilt from scratch on every aggregation pass.
type ActivityEntry struct {
	User             *User        `json:"user,omitempty"`
	WorkingCopy      *WorkingCopy `json:"working_copy"`
	Commits          []*Commit    `json:"commits"`
	LastPushedCommit *Commit      `json:"last_pushed_commit,omitempty"`
	IdentityHash     string       `json:"identity_hash"`
}

// Email returns the owner's email, or empty when the user is unknown.
func (x *ActivityEntry) Email() string {
	if x == nil || x.User == nil {
		return ""
	}
	return x.User.Email
}

// FirstCommit returns the most recent local commit, or nil.
func (x *ActivityEntry) FirstCommit() *Commit {
	if x == nil || len(x.Commits) == 0 {
		return nil
	}
	return x.Commits[0]
}

// TimelineItem is a commit annotated for display.
type TimelineItem struct {
	CommitID    types.CommitID    `json:"commit_id"`
	Message     string            `json:"message,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	TimeLabel   string            `json:"time_label"`
	BranchName  string            `json:"branch_name"`
	NumBehind   int               `json:"num_behind"`
	BranchStyle types.BranchStyle `json:"branch_style"`
	Icon        types.IconKind    `json:"icon"`
}

// PendingFile is one row of the uncommitted changes panel.
type PendingFile struct {
	File      string `json:"file"`
	TimeLabel string `json:"time_label"`
	Untracked bool   `json:"untracked,omitempty"`
}

// PendingPanel lists uncommitted or untracked files of a working copy.
// FirstFile is shown on the top row and is not repeated in Files.
type PendingPanel struct {
	FirstFile   PendingFile       `json:"first_file"`
	Files       []PendingFile     `json:"files"`
	NumBehind   int               `json:"num_behind"`
	BranchStyle types.BranchStyle `json:"branch_style"`
	BranchName  string            `json:"branch_name"`
	Icon        types.IconKind    `json:"icon"`
}

type BehindMark struct {
	Last bool `json:"last"`
}

// BranchChart is the ahead/behind graphic of a working copy.
type BranchChart struct {
	HasAhead    bool         `json:"has_ahead"`
	AheadMarks  int          `json:"ahead_marks"`
	BehindMarks []BehindMark `json:"behind_marks"`
}

// UserCard is everything the dashboard shows for one activity entry.
type UserCard struct {
	Entry       *ActivityEntry  `json:"entry"`
	Pending     *PendingPanel   `json:"pending,omitempty"`
	TopItem     *TimelineItem   `json:"top_item,omitempty"`
	OlderItems  []*TimelineItem `json:"older_items"`
	HasMore     bool            `json:"has_more"`
	ShowOrHide  string          `json:"show_or_hide"`
	IdleMessage string          `json:"idle_message,omitempty"`
	ShowingDiff bool            `json:"showing_diff"`
	FileDiff    string          `json:"file_diff,omitempty"`
	BranchChart *BranchChart    `json:"branch_chart"`
}

// Dashboard is the whole view of one repository for one session.
type Dashboard struct {
	Resolution *Resolution `json:"resolution"`
	Title      string      `json:"title"`
	Selection  Selection   `json:"selection"`
	Users      []*UserCard `json:"users"`
}
