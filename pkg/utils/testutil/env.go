package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// FixedTime returns a context whose logging.CtxTime always reports now.
func FixedTime(ctx context.Context, now time.Time) context.Context {
	return logging.CtxWithTime(ctx, func() time.Time { return now })
}
