package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/cli/config"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func TestBigQueryFlags(t *testing.T) {
	var bq config.BigQuery
	names := flagNames(bq.Flags())

	gt.True(t, names["bigquery-project-id"])
	gt.True(t, names["bigquery-dataset-id"])
	gt.True(t, names["bigquery-table-id"])
	gt.True(t, names["bigquery-impersonate-service-account"])
}

func TestBigQueryNewClient(t *testing.T) {
	run := func(t *testing.T, args ...string) error {
		var bq config.BigQuery
		cmd := &cli.Command{
			Name:  "test",
			Flags: bq.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				client, err := bq.NewClient(ctx)
				if err != nil {
					return err
				}
				gt.V(t, client).Equal(nil)
				return nil
			},
		}
		return cmd.Run(context.Background(), append([]string{"test"}, args...))
	}

	t.Run("disabled without project ID", func(t *testing.T) {
		gt.NoError(t, run(t))
	})

	t.Run("dataset ID is required with project ID", func(t *testing.T) {
		err := run(t, "--bigquery-project-id", "my-project")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
