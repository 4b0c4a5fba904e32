package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/cli/config"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository/memory"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

func requireBigQuery(client interfaces.BigQuery) error {
	if client == nil {
		return goerr.Wrap(types.ErrInvalidOption, "BigQuery client is required (project ID and dataset ID must be set)")
	}
	return nil
}

// newActivityRepository returns the Firestore store when configured.
// Otherwise it returns a memory store seeded with the fixture, if any.
func newActivityRepository(ctx context.Context, fs *config.Firestore, fixture *config.Fixture) (interfaces.ActivityRepository, error) {
	if fs.Enabled() {
		if fixture.Enabled() {
			logging.From(ctx).Warn("fixture is ignored because Firestore is configured", slog.Any("fixture", fixture))
		}
		repo, err := fs.NewRepository(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Firestore repository")
		}
		return repo, nil
	}

	repo := memory.New()
	if err := fixture.Load(ctx, repo); err != nil {
		return nil, err
	}
	return repo, nil
}
