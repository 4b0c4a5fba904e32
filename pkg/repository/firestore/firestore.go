package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
)

type Option func(*Repository)

// WithCollectionPrefix prepends prefix to every collection name. It lets
// several deployments (or test runs) share one Firestore database.
func WithCollectionPrefix(prefix string) Option {
	return func(r *Repository) {
		r.prefix = prefix
	}
}

// New connects to Firestore. An empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (*Repository, error) {
	client, err := newClient(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	r := &Repository{client: client}
	for _, opt := range options {
		opt(r)
	}
	return r, nil
}

func newClient(ctx context.Context, projectID, databaseID string) (*firestore.Client, error) {
	if databaseID == "" {
		return firestore.NewClient(ctx, projectID)
	}
	return firestore.NewClientWithDatabase(ctx, projectID, databaseID)
}

// Close releases the underlying client.
func (r *Repository) Close() error {
	if err := r.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Firestore client")
	}
	return nil
}

func (r *Repository) collection(name string) *firestore.CollectionRef {
	return r.client.Collection(r.prefix + name)
}
