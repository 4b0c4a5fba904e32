package timefmt

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
)

// Formatter renders timestamps relative to the current time, e.g. "3 minutes ago".
type Formatter struct {
	now func() time.Time
}

var _ interfaces.TimeFormatter = (*Formatter)(nil)

type Option func(*Formatter)

// WithNow replaces the clock. Used by tests.
func WithNow(fn func() time.Time) Option {
	return func(x *Formatter) {
		x.now = fn
	}
}

func New(options ...Option) *Formatter {
	x := &Formatter{
		now: time.Now,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// RelativeLabel returns an empty string for the zero time.
func (x *Formatter) RelativeLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, x.now(), "ago", "from now")
}
