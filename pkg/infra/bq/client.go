package bq

import (
	"context"
	"errors"
	"reflect"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type Client struct {
	bqClient *bigquery.Client
	dataset  string
	tableID  types.BQTableID
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID.String(),
		tableID:  tableID,
	}, nil
}

func (x *Client) Close() error {
	return x.bqClient.Close()
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset).Table(x.tableID.String())
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return md, nil
}

// Insert implements interfaces.BigQuery. rows is a struct, a pointer to a
// struct or a slice of them. Every row is saved with schema so that columns
// added by a schema merge are filled as well.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, rows any) error {
	savers := toSavers(schema, rows)
	if len(savers) == 0 {
		return nil
	}

	if err := x.table().Inserter().Put(ctx, savers); err != nil {
		var multiErr bigquery.PutMultiError
		_ = errors.As(err, &multiErr)
		return goerr.Wrap(err, "failed to insert rows",
			goerr.V("dataset", x.dataset),
			goerr.V("table", x.tableID),
			goerr.V("rows", len(savers)),
			goerr.V("failed", len(multiErr)),
		)
	}

	return nil
}

func toSavers(schema bigquery.Schema, rows any) []*bigquery.StructSaver {
	if rows == nil {
		return nil
	}

	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return []*bigquery.StructSaver{{Schema: schema, Struct: rows}}
	}

	savers := make([]*bigquery.StructSaver, 0, v.Len())
	for i := range v.Len() {
		savers = append(savers, &bigquery.StructSaver{
			Schema: schema,
			Struct: v.Index(i).Interface(),
		})
	}
	return savers
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID), goerr.V("meta", md))
	}

	return nil
}
