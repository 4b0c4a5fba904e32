package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/cli"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
)

func TestShow(t *testing.T) {
	t.Run("prints dashboard of fixture repository", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, cli.New(cli.WithOutput(&buf)).Run([]string{
			"livegit", "--log-output", "stderr",
			"show", "--repository-id", "r1", "--fixture", "testdata/fixture.yaml",
		}))

		var dashboard model.Dashboard
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &dashboard))
		gt.V(t, dashboard.Resolution.Status).Equal(types.ResolveFound)
		gt.V(t, dashboard.Title).Equal("proj")
		gt.A(t, dashboard.Users).Length(2)

		alice := dashboard.Users[0]
		gt.V(t, alice.Entry.User.Name).Equal("Alice")
		gt.V(t, alice.TopItem.Icon).Equal(types.IconSave)
		gt.V(t, alice.ShowOrHide).Equal("Show")

		bob := dashboard.Users[1]
		gt.V(t, bob.Entry.User.Name).Equal("Bob")
		gt.V(t, bob.Pending).NotEqual(nil)
		gt.V(t, bob.Pending.FirstFile.File).Equal("README.md")
		gt.A(t, bob.BranchChart.BehindMarks).Length(3)
	})

	t.Run("unknown repository", func(t *testing.T) {
		var buf bytes.Buffer
		err := cli.New(cli.WithOutput(&buf)).Run([]string{
			"livegit", "--log-output", "stderr",
			"show", "--repository-id", "nope", "--fixture", "testdata/fixture.yaml",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
		gt.V(t, buf.Len()).Equal(0)
	})

	t.Run("repository ID is required", func(t *testing.T) {
		gt.Error(t, cli.New().Run([]string{"livegit", "--log-output", "stderr", "show"}))
	})
}

func TestExport(t *testing.T) {
	t.Setenv("LIVEGIT_BIGQUERY_PROJECT_ID", "")
	t.Setenv("LIVEGIT_BIGQUERY_DATASET_ID", "")
	t.Setenv("LIVEGIT_FIRESTORE_PROJECT_ID", "")

	err := cli.New().Run([]string{
		"livegit", "--log-output", "stderr",
		"export", "--repository-id", "r1", "--fixture", "testdata/fixture.yaml",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestInvalidLogLevel(t *testing.T) {
	gt.Error(t, cli.New().Run([]string{"livegit", "--log-level", "verbose", "show", "--repository-id", "r1"}))
}
