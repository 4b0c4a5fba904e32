package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RepositoryID  string
	UserID        string
	CommitID      string
	WorkingCopyID string
	RequestID     string
	SessionID     string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func (x SessionID) String() string { return string(x) }

// LogValue prints the first 8 characters only.
func (x SessionID) LogValue() slog.Value {
	if len(x) <= 8 {
		return slog.StringValue("********")
	}
	return slog.StringValue(string(x[:8]) + "********")
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

// ResolveStatus is the three-way outcome of looking up a repository whose
// record may not have arrived yet.
type ResolveStatus string

const (
	ResolvePending  ResolveStatus = "pending"
	ResolveFound    ResolveStatus = "found"
	ResolveNotFound ResolveStatus = "not_found"
)

// IconKind tells the presentation layer which event glyph to draw.
type IconKind string

const (
	IconSave  IconKind = "save"
	IconPush  IconKind = "push"
	IconWrite IconKind = "write"
)

type BranchStyle string

const (
	BranchStyleNone   BranchStyle = ""
	BranchStyleBehind BranchStyle = "behind"
)
