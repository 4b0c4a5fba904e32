package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/livegit/pkg/cli/config"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/infra"
	"github.com/m-mizutani/livegit/pkg/repository"
	"github.com/m-mizutani/livegit/pkg/usecase"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
	"github.com/m-mizutani/livegit/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func showCommand(output io.Writer) *cli.Command {
	var (
		repoID string

		firestore config.Firestore
		fixture   config.Fixture
	)

	return &cli.Command{
		Name:  "show",
		Usage: "Print the dashboard of a repository as JSON",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repository-id",
				Aliases:     []string{"r"},
				Usage:       "Repository ID",
				Required:    true,
				Sources:     cli.EnvVars("LIVEGIT_REPOSITORY_ID"),
				Destination: &repoID,
			},
		}, firestore.Flags(), fixture.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Debug("starting show",
				slog.String("repository_id", repoID),
				slog.Any("Firestore", &firestore),
				slog.Any("Fixture", &fixture),
			)

			activityRepo, err := newActivityRepository(ctx, &firestore, &fixture)
			if err != nil {
				return err
			}
			if closer, ok := activityRepo.(io.Closer); ok {
				defer safe.Close(closer)
			}

			uc := usecase.New(infra.New(infra.WithActivityRepository(activityRepo)))
			dashboard, err := buildDashboardOnce(ctx, uc, types.RepositoryID(repoID))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(output)
			enc.SetIndent("", "  ")
			if err := enc.Encode(dashboard); err != nil {
				return goerr.Wrap(err, "failed to write dashboard")
			}
			return nil
		},
	}
}

// buildDashboardOnce builds the dashboard with a throwaway session. A one-shot
// command does not wait for the collector, so a pending result is looked up
// once more to settle on found or not found.
func buildDashboardOnce(ctx context.Context, uc *usecase.UseCase, repoID types.RepositoryID) (*model.Dashboard, error) {
	sessionID := types.NewSessionID()

	dashboard, err := uc.BuildDashboard(ctx, sessionID, repoID)
	if err != nil {
		return nil, err
	}
	if dashboard.Resolution.Status == types.ResolvePending {
		if dashboard, err = uc.BuildDashboard(ctx, sessionID, repoID); err != nil {
			return nil, err
		}
	}

	if dashboard.Resolution.Status == types.ResolveNotFound {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("repository_id", repoID))
	}
	return dashboard, nil
}
