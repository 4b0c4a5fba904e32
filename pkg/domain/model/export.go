package model

import "time"

// ActivityRecord is one exported row per activity entry. Identifiers are
// plain strings to keep the inferred table schema simple.
type ActivityRecord struct {
	ExportID       string    `json:"export_id" bigquery:"export_id"`
	ExportedAt     time.Time `json:"exported_at" bigquery:"exported_at"`
	Rank           int       `json:"rank" bigquery:"rank"`
	RepositoryID   string    `json:"repository_id" bigquery:"repository_id"`
	RepositoryName string    `json:"repository_name" bigquery:"repository_name"`
	UserID         string    `json:"user_id" bigquery:"user_id"`
	Email          string    `json:"email" bigquery:"email"`
	WorkingCopyID  string    `json:"working_copy_id" bigquery:"working_copy_id"`
	BranchName     string    `json:"branch_name" bigquery:"branch_name"`
	NumAhead       int       `json:"num_ahead" bigquery:"num_ahead"`
	NumBehind      int       `json:"num_behind" bigquery:"num_behind"`
	ChangedFiles   int       `json:"changed_files" bigquery:"changed_files"`
	UntrackedFiles int       `json:"untracked_files" bigquery:"untracked_files"`
	CommitCount    int       `json:"commit_count" bigquery:"commit_count"`
	LatestCommitAt time.Time `json:"latest_commit_at" bigquery:"latest_commit_at"`
	LastPushedAt   time.Time `json:"last_pushed_at" bigquery:"last_pushed_at"`
}
