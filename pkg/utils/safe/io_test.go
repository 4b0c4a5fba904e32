package safe_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/utils/safe"
)

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		reader := io.NopCloser(bytes.NewReader([]byte("test")))
		safe.Close(reader) // Should not panic
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil) // Should not panic
	})

	t.Run("close file twice", func(t *testing.T) {
		fd := gt.R1(os.CreateTemp(t.TempDir(), "test-*.txt")).NoError(t)
		safe.Close(fd)
		safe.Close(fd) // Second close is ignored
	})
}
