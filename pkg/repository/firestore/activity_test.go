package firestore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/repository/firestore"
	"github.com/m-mizutani/livegit/pkg/repository/testhelper"
	"github.com/m-mizutani/livegit/pkg/utils/testutil"
)

func TestFirestoreActivityRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID,
		firestore.WithCollectionPrefix("test_"+uuid.NewString()[:8]+"_"),
	)
	gt.NoError(t, err)
	t.Cleanup(func() { gt.NoError(t, repo.Close()) })

	testhelper.TestAll(t, repo)
}

func TestToDocID(t *testing.T) {
	id, err := firestore.ToDocID("wc-1")
	gt.NoError(t, err)
	gt.V(t, id).Equal("wc-1")

	_, err = firestore.ToDocID("")
	gt.Error(t, err)

	_, err = firestore.ToDocID("a/b")
	gt.Error(t, err)
}
