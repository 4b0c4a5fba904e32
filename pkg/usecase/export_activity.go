package usecase

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// ExportActivity writes the current activity of repoID to BigQuery, one row
// per entry in display order. It returns the number of rows written. A call
// made while an export of the same repository is running joins it instead of
// writing the rows again.
func (x *UseCase) ExportActivity(ctx context.Context, repoID types.RepositoryID) (int, error) {
	v, err, shared := x.export.Do(string(repoID), func() (any, error) {
		return x.exportActivity(context.WithoutCancel(ctx), repoID)
	})
	if err != nil {
		return 0, err
	}
	if shared {
		logging.From(ctx).Info("export joined running one", slog.Any("repo_id", repoID))
	}
	return v.(int), nil
}

func (x *UseCase) exportActivity(ctx context.Context, repoID types.RepositoryID) (int, error) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return 0, goerr.Wrap(types.ErrInvalidOption, "BigQuery is not configured")
	}

	repo, err := x.clients.ActivityRepository().GetRepository(ctx, repoID)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get repository", goerr.V("repo_id", repoID))
	}

	entries, err := x.BuildActivity(ctx, repoID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		logging.From(ctx).Info("no activity to export", slog.Any("repo_id", repoID))
		return 0, nil
	}

	exportID := uuid.NewString()
	exportedAt := logging.CtxTime(ctx).UTC()
	records := make([]*model.ActivityRecord, 0, len(entries))
	for i, entry := range entries {
		records = append(records, toActivityRecord(entry, repo, i+1, exportID, exportedAt))
	}

	schema, err := createOrUpdateBigQueryTable(ctx, bq, &model.ActivityRecord{})
	if err != nil {
		return 0, err
	}

	if err := bq.Insert(ctx, schema, records); err != nil {
		return 0, goerr.Wrap(err, "failed to insert activity records", goerr.V("repo_id", repoID))
	}

	logging.From(ctx).Info("exported activity",
		slog.Any("repo_id", repoID),
		slog.String("export_id", exportID),
		slog.Int("rows", len(records)),
	)
	return len(records), nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.ActivityRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer activity schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}

func toActivityRecord(entry *model.ActivityEntry, repo *model.Repository, rank int, exportID string, exportedAt time.Time) *model.ActivityRecord {
	record := &model.ActivityRecord{
		ExportID:       exportID,
		ExportedAt:     exportedAt,
		Rank:           rank,
		RepositoryID:   string(repo.ID),
		RepositoryName: repo.DisplayName(),
		Email:          entry.Email(),
		CommitCount:    len(entry.Commits),
	}

	if wc := entry.WorkingCopy; wc != nil {
		stats := wc.Stats()
		record.UserID = string(wc.UserID)
		record.WorkingCopyID = string(wc.ID)
		record.BranchName = wc.BranchName
		record.NumAhead = stats.NumAhead
		record.NumBehind = stats.NumBehind
		record.ChangedFiles = len(wc.GitDiff)
		record.UntrackedFiles = len(wc.UntrackedFiles)
	}
	if c := entry.FirstCommit(); c != nil {
		record.LatestCommitAt = c.Timestamp
	}
	if entry.LastPushedCommit != nil {
		record.LastPushedAt = entry.LastPushedCommit.Timestamp
	}

	return record
}
