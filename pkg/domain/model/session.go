package model

import (
	"time"

	"github.com/m-mizutani/livegit/pkg/domain/types"
)

// Session holds the view state of one dashboard viewer. It lives only in
// process memory.
type Session struct {
	ID        types.SessionID
	Selection Selection
	Searched  map[types.RepositoryID]bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(id types.SessionID, now time.Time) *Session {
	return &Session{
		ID:        id,
		Searched:  make(map[types.RepositoryID]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Copy returns a deep copy.
func (x *Session) Copy() *Session {
	if x == nil {
		return nil
	}
	cpy := *x
	cpy.Searched = make(map[types.RepositoryID]bool, len(x.Searched))
	for k, v := range x.Searched {
		cpy.Searched[k] = v
	}
	return &cpy
}
