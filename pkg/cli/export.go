package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/livegit/pkg/cli/config"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/infra"
	"github.com/m-mizutani/livegit/pkg/usecase"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
	"github.com/m-mizutani/livegit/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		repoID string

		firestore config.Firestore
		fixture   config.Fixture
		bigQuery  config.BigQuery
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Export activity of a repository to BigQuery",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repository-id",
				Aliases:     []string{"r"},
				Usage:       "Repository ID",
				Required:    true,
				Sources:     cli.EnvVars("LIVEGIT_REPOSITORY_ID"),
				Destination: &repoID,
			},
		}, firestore.Flags(), fixture.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			logger.Info("starting export",
				slog.String("repository_id", repoID),
				slog.Any("Firestore", &firestore),
				slog.Any("BigQuery", &bigQuery),
			)

			bqClient, err := bigQuery.NewClient(ctx)
			if err != nil {
				return err
			}
			if err := requireBigQuery(bqClient); err != nil {
				return err
			}

			activityRepo, err := newActivityRepository(ctx, &firestore, &fixture)
			if err != nil {
				return err
			}
			if closer, ok := activityRepo.(io.Closer); ok {
				defer safe.Close(closer)
			}

			uc := usecase.New(infra.New(
				infra.WithActivityRepository(activityRepo),
				infra.WithBigQuery(bqClient),
			))

			n, err := uc.ExportActivity(ctx, types.RepositoryID(repoID))
			if err != nil {
				return err
			}

			logger.Info("export completed", slog.String("repository_id", repoID), slog.Int("rows", n))
			return nil
		},
	}
}
