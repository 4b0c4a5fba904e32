package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery TimeFormatter Hasher Highlighter

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, rows any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// TimeFormatter renders a timestamp relative to now, e.g. "3 minutes ago".
type TimeFormatter interface {
	RelativeLabel(t time.Time) string
}

// Hasher turns a normalized email into a display hash.
type Hasher interface {
	Hash(s string) string
}

// Highlighter renders source text of language as markup.
type Highlighter interface {
	Highlight(language, text string) (string, error)
}
