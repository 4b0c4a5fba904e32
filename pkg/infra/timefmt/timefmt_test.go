package timefmt_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/infra/timefmt"
)

func TestRelativeLabel(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := timefmt.New(timefmt.WithNow(func() time.Time { return now }))

	testCases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now, "now"},
		{"minutes ago", now.Add(-3 * time.Minute), "3 minutes ago"},
		{"hours ago", now.Add(-5 * time.Hour), "5 hours ago"},
		{"future", now.Add(2 * time.Hour), "2 hours from now"},
		{"zero time", time.Time{}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, f.RelativeLabel(tc.t)).Equal(tc.want)
		})
	}
}

func TestDefaultClock(t *testing.T) {
	f := timefmt.New()
	gt.V(t, f.RelativeLabel(time.Now().Add(-10*time.Minute))).Equal("10 minutes ago")
}
