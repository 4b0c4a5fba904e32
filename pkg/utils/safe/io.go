package safe

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

// Close closes the resource and warns on stderr if it fails. The logging
// package imports safe, so it cannot be used here.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn("Fail to close resource", slog.Any("error", err))
	}
}
