package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/livegit/pkg/domain/types"
)

// Repository is a remote repository watched by the dashboard
type Repository struct {
	ID   types.RepositoryID `json:"id" yaml:"id"`
	URL  string             `json:"url" yaml:"url"`
	Name string             `json:"name,omitempty" yaml:"name"`
}

var ptnRepoName = regexp.MustCompile(`/([^/]+?)(?:\.git)?$`)

// DisplayName returns Name if stored. Otherwise it is derived from URL: the
// last "/" delimited segment without a trailing ".git". The result is never
// empty.
func (x *Repository) DisplayName() string {
	if x.Name != "" {
		return x.Name
	}
	if name := RepoNameFromURL(x.URL); name != "" {
		return name
	}
	return string(x.ID)
}

// RepoNameFromURL extracts the repository name from a remote URL such as
// "git@github.com:org/proj.git" or "https://github.com/org/proj". It returns
// an empty string when nothing can be extracted.
func RepoNameFromURL(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if m := ptnRepoName.FindStringSubmatch(url); len(m) == 2 {
		return m[1]
	}

	// scp-like URL without any slash, e.g. "host:proj.git"
	if idx := strings.LastIndex(url, ":"); idx >= 0 {
		url = url[idx+1:]
	}
	return strings.TrimSuffix(url, ".git")
}

// Resolution is the outcome of RepositoryResolver. Repository is set only
// when Status is found.
type Resolution struct {
	Status     types.ResolveStatus `json:"status"`
	Repository *Repository         `json:"repository,omitempty"`
	Name       string              `json:"name"`
}

// Title is the dashboard header for each status.
func (x *Resolution) Title() string {
	switch x.Status {
	case types.ResolveFound:
		return x.Name
	case types.ResolveNotFound:
		return "Error: invalid repository ID"
	default:
		return "Loading..."
	}
}
