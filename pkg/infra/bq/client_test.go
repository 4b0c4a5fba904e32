package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/infra/bq"
	"github.com/m-mizutani/livegit/pkg/utils/testutil"
)

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("activity_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	var baseSchema bigquery.Schema

	t.Run("table does not exist yet", func(t *testing.T) {
		md, err := client.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	t.Run("Create base table at first", func(t *testing.T) {
		var record model.ActivityRecord
		baseSchema = gt.R1(bqs.Infer(record)).NoError(t)

		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: baseSchema,
		}))
	})

	t.Run("Insert records", func(t *testing.T) {
		now := time.Now().UTC()
		exportID := uuid.NewString()
		records := []*model.ActivityRecord{
			{
				ExportID:       exportID,
				ExportedAt:     now,
				Rank:           1,
				RepositoryID:   "repo-1",
				RepositoryName: "proj",
				UserID:         "user-1",
				Email:          "alice@example.com",
				WorkingCopyID:  "wc-1",
				BranchName:     "main",
				NumAhead:       2,
				CommitCount:    2,
				LatestCommitAt: now.Add(-time.Minute),
			},
			{
				ExportID:       exportID,
				ExportedAt:     now,
				Rank:           2,
				RepositoryID:   "repo-1",
				RepositoryName: "proj",
				UserID:         "user-2",
				Email:          "bob@example.com",
				WorkingCopyID:  "wc-2",
				BranchName:     "feature",
				NumBehind:      1,
				ChangedFiles:   3,
			},
		}
		gt.NoError(t, client.Insert(ctx, baseSchema, records))
	})
}

func TestToSavers(t *testing.T) {
	schema := bigquery.Schema{
		{Name: "msg", Type: bigquery.StringFieldType},
	}
	type row struct {
		Msg string `bigquery:"msg"`
	}

	t.Run("single struct", func(t *testing.T) {
		savers := bq.ToSaversForTest(schema, row{Msg: "a"})
		gt.A(t, savers).Length(1)
		gt.V(t, savers[0].Struct).Equal(any(row{Msg: "a"}))
	})

	t.Run("slice of pointers", func(t *testing.T) {
		rows := []*row{{Msg: "a"}, {Msg: "b"}}
		savers := bq.ToSaversForTest(schema, rows)
		gt.A(t, savers).Length(2)
		gt.V(t, savers[1].Struct).Equal(any(rows[1]))
		gt.V(t, savers[1].Schema).Equal(schema)
	})

	t.Run("empty slice and nil", func(t *testing.T) {
		gt.A(t, bq.ToSaversForTest(schema, []row{})).Length(0)
		gt.A(t, bq.ToSaversForTest(schema, nil)).Length(0)
	})
}
