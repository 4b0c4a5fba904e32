package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/usecase"
)

func newEntry(numCommits int, pending bool) *model.ActivityEntry {
	wc := &model.WorkingCopy{
		ID:         "wc1",
		BranchName: "feature",
		FileStats:  &model.FileStats{NumAhead: 1, NumBehind: 2},
	}
	if pending {
		wc.GitDiff = []model.FileDiff{{File: "main.go", Content: "+x", LastModified: baseTime}}
	}

	entry := &model.ActivityEntry{WorkingCopy: wc}
	for i := range numCommits {
		entry.Commits = append(entry.Commits, &model.Commit{
			ID:        types.CommitID(fmt.Sprintf("c%d", i)),
			Timestamp: baseTime.Add(-time.Duration(i) * time.Minute),
			Message:   fmt.Sprintf("message %d", i),
		})
	}
	return entry
}

func itemIDs(items []*model.TimelineItem) []types.CommitID {
	ids := []types.CommitID{}
	for _, item := range items {
		ids = append(ids, item.CommitID)
	}
	return ids
}

func TestTimelineExamples(t *testing.T) {
	tf := labelFormatter()

	t.Run("two commits without pending changes", func(t *testing.T) {
		entry := newEntry(2, false)

		top := usecase.BuildTopItem(entry, tf)
		gt.V(t, top).NotEqual(nil)
		gt.V(t, top.CommitID).Equal("c0")
		gt.V(t, top.Icon).Equal(types.IconSave)

		older := usecase.BuildOlderItems(entry, model.Selection{}, tf)
		gt.V(t, itemIDs(older)).Equal([]types.CommitID{"c1"})
		gt.False(t, usecase.HasMore(entry))
	})

	t.Run("pending changes take precedence", func(t *testing.T) {
		entry := newEntry(2, true)

		gt.V(t, usecase.BuildTopItem(entry, tf)).Equal(nil)
		older := usecase.BuildOlderItems(entry, model.Selection{}, tf)
		gt.V(t, itemIDs(older)).Equal([]types.CommitID{"c0", "c1"})
	})

	t.Run("last pushed commit is shown as push", func(t *testing.T) {
		entry := newEntry(0, false)
		entry.LastPushedCommit = &model.Commit{ID: "p1", Timestamp: baseTime, Invalid: true}

		top := usecase.BuildTopItem(entry, tf)
		gt.V(t, top.CommitID).Equal("p1")
		gt.V(t, top.Icon).Equal(types.IconPush)
		gt.A(t, usecase.BuildOlderItems(entry, model.Selection{}, tf)).Length(0)
	})

	t.Run("no activity at all", func(t *testing.T) {
		entry := newEntry(0, false)
		gt.V(t, usecase.BuildTopItem(entry, tf)).Equal(nil)
		gt.True(t, usecase.IsIdle(entry))
	})

	t.Run("malformed entries show nothing", func(t *testing.T) {
		gt.V(t, usecase.BuildTopItem(nil, tf)).Equal(nil)
		gt.V(t, usecase.BuildTopItem(&model.ActivityEntry{}, tf)).Equal(nil)
		gt.A(t, usecase.BuildOlderItems(&model.ActivityEntry{}, model.Selection{}, tf)).Length(0)
		gt.False(t, usecase.HasMore(&model.ActivityEntry{}))
		gt.False(t, usecase.IsIdle(nil))
	})
}

func TestTimelineAnnotation(t *testing.T) {
	tf := labelFormatter()

	t.Run("items carry working copy state", func(t *testing.T) {
		entry := newEntry(2, false)
		top := usecase.BuildTopItem(entry, tf)

		gt.V(t, top.TimeLabel).Equal("at " + baseTime.Format(time.RFC3339))
		gt.V(t, top.BranchName).Equal("feature")
		gt.V(t, top.NumBehind).Equal(2)
		gt.V(t, top.BranchStyle).Equal(types.BranchStyleBehind)
		gt.V(t, top.Message).Equal("message 0")
	})

	t.Run("not behind has no style", func(t *testing.T) {
		entry := newEntry(2, false)
		entry.WorkingCopy.FileStats = &model.FileStats{NumAhead: 3}

		older := usecase.BuildOlderItems(entry, model.Selection{}, tf)
		gt.V(t, older[0].BranchStyle).Equal(types.BranchStyleNone)
		gt.V(t, older[0].NumBehind).Equal(0)
	})

	t.Run("missing file stats reads as zero", func(t *testing.T) {
		entry := newEntry(1, false)
		entry.WorkingCopy.FileStats = nil

		top := usecase.BuildTopItem(entry, tf)
		gt.V(t, top.NumBehind).Equal(0)
		gt.V(t, top.BranchStyle).Equal(types.BranchStyleNone)
	})
}

func TestTimelinePartition(t *testing.T) {
	tf := labelFormatter()

	for n := range 8 {
		t.Run(fmt.Sprintf("%d commits", n), func(t *testing.T) {
			entry := newEntry(n, false)
			top := usecase.BuildTopItem(entry, tf)
			older := usecase.BuildOlderItems(entry, model.Selection{}, tf)

			seen := map[types.CommitID]int{}
			if top != nil {
				seen[top.CommitID]++
			}
			for _, item := range older {
				seen[item.CommitID]++
			}

			// every shown commit is a distinct element of the list
			for id, count := range seen {
				gt.V(t, count).Equal(1)
				found := false
				for _, c := range entry.Commits {
					if c.ID == id {
						found = true
					}
				}
				gt.True(t, found)
			}

			// shown commits are a prefix of the list
			shown := len(seen)
			gt.V(t, shown).Equal(min(n, 4))
			for i := range shown {
				gt.V(t, seen[entry.Commits[i].ID]).Equal(1)
			}

			gt.V(t, usecase.HasMore(entry)).Equal(n > shown)
		})
	}
}

func TestTimelineExpansion(t *testing.T) {
	tf := labelFormatter()

	t.Run("expanded shows every remaining commit", func(t *testing.T) {
		entry := newEntry(7, false)
		sel := model.Selection{ExpandedWorkingCopyID: "wc1"}

		older := usecase.BuildOlderItems(entry, sel, tf)
		gt.V(t, itemIDs(older)).Equal([]types.CommitID{"c1", "c2", "c3", "c4", "c5", "c6"})
		gt.True(t, usecase.HasMore(entry))
		gt.V(t, usecase.ShowOrHide(entry.WorkingCopy, sel)).Equal("Hide")
	})

	t.Run("expansion of another working copy is ignored", func(t *testing.T) {
		entry := newEntry(7, true)
		sel := model.Selection{ExpandedWorkingCopyID: "wc2"}

		older := usecase.BuildOlderItems(entry, sel, tf)
		gt.V(t, itemIDs(older)).Equal([]types.CommitID{"c0", "c1", "c2"})
		gt.True(t, usecase.HasMore(entry))
		gt.V(t, usecase.ShowOrHide(entry.WorkingCopy, sel)).Equal("Show")
	})

	t.Run("hasMore with pending changes", func(t *testing.T) {
		gt.False(t, usecase.HasMore(newEntry(3, true)))
		gt.True(t, usecase.HasMore(newEntry(4, true)))
		gt.False(t, usecase.HasMore(newEntry(4, false)))
		gt.True(t, usecase.HasMore(newEntry(5, false)))
	})
}

func TestBuildPendingPanel(t *testing.T) {
	tf := labelFormatter()

	t.Run("nothing pending", func(t *testing.T) {
		gt.V(t, usecase.BuildPendingPanel(&model.WorkingCopy{}, tf)).Equal(nil)
		gt.V(t, usecase.BuildPendingPanel(nil, tf)).Equal(nil)
	})

	t.Run("diffed files take precedence", func(t *testing.T) {
		wc := &model.WorkingCopy{
			BranchName: "main",
			FileStats:  &model.FileStats{NumBehind: 1},
			GitDiff: []model.FileDiff{
				{File: "a.go", LastModified: baseTime},
				{File: "b.go", LastModified: baseTime.Add(time.Minute)},
			},
			UntrackedFiles: []model.UntrackedFile{{Filename: "new.txt"}},
		}

		panel := usecase.BuildPendingPanel(wc, tf)
		gt.V(t, panel.FirstFile.File).Equal("a.go")
		gt.V(t, panel.FirstFile.TimeLabel).Equal("at " + baseTime.Format(time.RFC3339))
		gt.A(t, panel.Files).Length(1)
		gt.V(t, panel.Files[0].File).Equal("b.go")
		gt.V(t, panel.Icon).Equal(types.IconWrite)
		gt.V(t, panel.BranchName).Equal("main")
		gt.V(t, panel.NumBehind).Equal(1)
		gt.V(t, panel.BranchStyle).Equal(types.BranchStyleBehind)
	})

	t.Run("untracked files without diff", func(t *testing.T) {
		wc := &model.WorkingCopy{
			UntrackedFiles: []model.UntrackedFile{{Filename: "new.txt", LastModified: baseTime}},
		}

		panel := usecase.BuildPendingPanel(wc, tf)
		gt.V(t, panel.FirstFile.File).Equal("new.txt")
		gt.True(t, panel.FirstFile.Untracked)
		gt.A(t, panel.Files).Length(0)
		gt.V(t, panel.BranchStyle).Equal(types.BranchStyleNone)
	})
}
