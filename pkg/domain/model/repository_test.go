package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
)

func TestRepoNameFromURL(t *testing.T) {
	testCases := []struct {
		url  string
		want string
	}{
		{"git@host:org/proj.git", "proj"},
		{"https://github.com/org/proj", "proj"},
		{"https://github.com/org/proj.git", "proj"},
		{"https://github.com/org/proj/", "proj"},
		{"ssh://git@example.com:2222/team/tool.git", "tool"},
		{"/srv/git/local.git", "local"},
		{"host:solo.git", "solo"},
		{"proj.git.backup", "proj.git.backup"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			gt.V(t, model.RepoNameFromURL(tc.url)).Equal(tc.want)
		})
	}
}

func TestRepositoryDisplayName(t *testing.T) {
	t.Run("stored name wins", func(t *testing.T) {
		repo := &model.Repository{ID: "r1", URL: "git@host:org/proj.git", Name: "Project"}
		gt.V(t, repo.DisplayName()).Equal("Project")
	})

	t.Run("derived from URL", func(t *testing.T) {
		repo := &model.Repository{ID: "r1", URL: "git@host:org/proj.git"}
		gt.V(t, repo.DisplayName()).Equal("proj")
	})

	t.Run("falls back to ID", func(t *testing.T) {
		repo := &model.Repository{ID: "r1"}
		gt.V(t, repo.DisplayName()).Equal("r1")
	})
}

func TestResolutionTitle(t *testing.T) {
	gt.V(t, (&model.Resolution{Status: types.ResolvePending}).Title()).Equal("Loading...")
	gt.V(t, (&model.Resolution{Status: types.ResolveNotFound}).Title()).Equal("Error: invalid repository ID")
	gt.V(t, (&model.Resolution{Status: types.ResolveFound, Name: "proj"}).Title()).Equal("proj")
}
