package infra

import (
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/infra/avatar"
	"github.com/m-mizutani/livegit/pkg/infra/highlight"
	"github.com/m-mizutani/livegit/pkg/infra/timefmt"
	"github.com/m-mizutani/livegit/pkg/repository/memory"
)

type Clients struct {
	activityRepo  interfaces.ActivityRepository
	sessionRepo   interfaces.SessionRepository
	bqClient      interfaces.BigQuery
	timeFormatter interfaces.TimeFormatter
	hasher        interfaces.Hasher
	highlighter   interfaces.Highlighter
}

type Option func(*Clients)

// New returns clients backed by in-memory stores unless replaced by options.
// BigQuery stays nil until configured.
func New(options ...Option) *Clients {
	client := &Clients{
		activityRepo:  memory.New(),
		sessionRepo:   memory.NewSessionRepository(),
		timeFormatter: timefmt.New(),
		hasher:        avatar.New(),
		highlighter:   highlight.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) ActivityRepository() interfaces.ActivityRepository {
	return x.activityRepo
}
func (x *Clients) SessionRepository() interfaces.SessionRepository {
	return x.sessionRepo
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) TimeFormatter() interfaces.TimeFormatter {
	return x.timeFormatter
}
func (x *Clients) Hasher() interfaces.Hasher {
	return x.hasher
}
func (x *Clients) Highlighter() interfaces.Highlighter {
	return x.highlighter
}

func WithActivityRepository(repo interfaces.ActivityRepository) Option {
	return func(x *Clients) {
		x.activityRepo = repo
	}
}

func WithSessionRepository(repo interfaces.SessionRepository) Option {
	return func(x *Clients) {
		x.sessionRepo = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithTimeFormatter(tf interfaces.TimeFormatter) Option {
	return func(x *Clients) {
		x.timeFormatter = tf
	}
}

func WithHasher(hasher interfaces.Hasher) Option {
	return func(x *Clients) {
		x.hasher = hasher
	}
}

func WithHighlighter(highlighter interfaces.Highlighter) Option {
	return func(x *Clients) {
		x.highlighter = highlighter
	}
}
