package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
	"github.com/m-mizutani/livegit/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Fixture seeds an activity store from a YAML file in the form of the
// records written by the collector.
type Fixture struct {
	path string
}

type fixtureFile struct {
	Repositories  []*model.Repository  `yaml:"repositories"`
	Users         []*model.User        `yaml:"users"`
	Commits       []*model.Commit      `yaml:"commits"`
	WorkingCopies []*model.WorkingCopy `yaml:"working_copies"`
}

func (x *Fixture) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "fixture",
			Usage:       "YAML file of repositories, users, commits and working copies to load into the memory store",
			Category:    "Fixture",
			Sources:     cli.EnvVars("LIVEGIT_FIXTURE"),
			Destination: &x.path,
		},
	}
}

func (x *Fixture) Enabled() bool {
	return x.path != ""
}

func (x *Fixture) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}

// Load writes every record of the fixture file into repo. It does nothing
// when no file is configured.
func (x *Fixture) Load(ctx context.Context, repo interfaces.ActivityRepository) error {
	if !x.Enabled() {
		return nil
	}

	fd, err := os.Open(x.path)
	if err != nil {
		return goerr.Wrap(err, "failed to open fixture file", goerr.V("path", x.path))
	}
	defer safe.Close(fd)

	data, err := decodeFixture(fd)
	if err != nil {
		return goerr.Wrap(err, "failed to decode fixture file", goerr.V("path", x.path))
	}

	if err := data.store(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to store fixture", goerr.V("path", x.path))
	}

	logging.From(ctx).Info("fixture loaded",
		slog.String("path", x.path),
		slog.Int("repositories", len(data.Repositories)),
		slog.Int("users", len(data.Users)),
		slog.Int("commits", len(data.Commits)),
		slog.Int("working_copies", len(data.WorkingCopies)),
	)
	return nil
}

func decodeFixture(r io.Reader) (*fixtureFile, error) {
	var data fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(err, "invalid fixture YAML")
	}
	return &data, nil
}

func (x *fixtureFile) store(ctx context.Context, repo interfaces.ActivityRepository) error {
	for i, r := range x.Repositories {
		if err := repo.PutRepository(ctx, r); err != nil {
			return goerr.Wrap(err, "failed to put repository", goerr.V("index", i))
		}
	}
	for i, u := range x.Users {
		if err := repo.PutUser(ctx, u); err != nil {
			return goerr.Wrap(err, "failed to put user", goerr.V("index", i))
		}
	}
	for i, c := range x.Commits {
		if err := repo.PutCommit(ctx, c); err != nil {
			return goerr.Wrap(err, "failed to put commit", goerr.V("index", i))
		}
	}
	for i, wc := range x.WorkingCopies {
		if err := repo.PutWorkingCopy(ctx, wc); err != nil {
			return goerr.Wrap(err, "failed to put working copy", goerr.V("index", i))
		}
	}
	return nil
}
