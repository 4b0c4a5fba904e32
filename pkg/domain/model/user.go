package model

import (
	"strings"

	"github.com/m-mizutani/livegit/pkg/domain/types"
)

type User struct {
	ID    types.UserID `json:"id" yaml:"id"`
	Email string       `json:"email" yaml:"email"`
	Name  string       `json:"name,omitempty" yaml:"name"`
}

// NormalizedEmail is the form used for identity hashing.
func (x *User) NormalizedEmail() string {
	if x == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(x.Email))
}
