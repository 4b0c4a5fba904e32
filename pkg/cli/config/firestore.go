package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

// Firestore selects the store the collector writes to. Without a project ID
// the memory store is used instead.
type Firestore struct {
	projectID        string
	databaseID       string
	collectionPrefix string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID. Activity is kept in memory if not set",
			Category:    "Firestore",
			Sources:     cli.EnvVars("LIVEGIT_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("LIVEGIT_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of collection names written by the collector",
			Category:    "Firestore",
			Sources:     cli.EnvVars("LIVEGIT_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &x.collectionPrefix,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collectionPrefix", x.collectionPrefix),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (interfaces.ActivityRepository, error) {
	repo, err := firestore.New(ctx, x.projectID, x.databaseID,
		firestore.WithCollectionPrefix(x.collectionPrefix),
	)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
