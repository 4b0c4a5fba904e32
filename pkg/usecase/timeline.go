package usecase

import (
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
)

// olderWindow is the number of older commits shown while collapsed.
const olderWindow = 3

// IdleMessage is shown for a working copy without any activity.
const IdleMessage = "Probably slacking..."

// HasPendingChanges reports uncommitted edits or untracked files in wc.
func HasPendingChanges(wc *model.WorkingCopy) bool {
	return wc.HasPendingChanges()
}

// BuildTopItem returns the latest event of entry: nothing while changes are
// pending, else the first local commit as a save, else the last pushed
// commit as a push.
func BuildTopItem(entry *model.ActivityEntry, tf interfaces.TimeFormatter) *model.TimelineItem {
	if entry == nil || entry.WorkingCopy == nil {
		return nil
	}
	wc := entry.WorkingCopy

	switch {
	case HasPendingChanges(wc):
		return nil
	case entry.FirstCommit() != nil:
		return annotate(entry.FirstCommit(), wc, types.IconSave, tf)
	case entry.LastPushedCommit != nil:
		return annotate(entry.LastPushedCommit, wc, types.IconPush, tf)
	default:
		return nil
	}
}

// BuildOlderItems returns the commits shown below the top item. The window
// starts after the top item and holds olderWindow commits, or every
// remaining commit when the working copy is expanded in sel.
func BuildOlderItems(entry *model.ActivityEntry, sel model.Selection, tf interfaces.TimeFormatter) []*model.TimelineItem {
	if entry == nil || entry.WorkingCopy == nil {
		return nil
	}
	wc := entry.WorkingCopy

	start := olderStart(wc)
	end := len(entry.Commits)
	if !sel.IsExpanded(wc.ID) {
		end = min(end, start+olderWindow)
	}

	items := make([]*model.TimelineItem, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		if entry.Commits[i] == nil {
			continue
		}
		items = append(items, annotate(entry.Commits[i], wc, types.IconSave, tf))
	}
	return items
}

// HasMore reports whether the collapsed window hides some commits. It does
// not depend on the selection.
func HasMore(entry *model.ActivityEntry) bool {
	if entry == nil || entry.WorkingCopy == nil {
		return false
	}
	return len(entry.Commits) > olderStart(entry.WorkingCopy)+olderWindow
}

// IsIdle is true when the working copy has no pending change and no commit.
func IsIdle(entry *model.ActivityEntry) bool {
	if entry == nil || entry.WorkingCopy == nil {
		return false
	}
	return !HasPendingChanges(entry.WorkingCopy) && len(entry.Commits) == 0
}

// BuildPendingPanel lists the uncommitted files of wc. Diffed files take
// precedence over untracked ones. It returns nil when nothing is pending.
func BuildPendingPanel(wc *model.WorkingCopy, tf interfaces.TimeFormatter) *model.PendingPanel {
	if !HasPendingChanges(wc) {
		return nil
	}

	var files []model.PendingFile
	if len(wc.GitDiff) > 0 {
		for _, diff := range wc.GitDiff {
			files = append(files, model.PendingFile{
				File:      diff.File,
				TimeLabel: tf.RelativeLabel(diff.LastModified),
			})
		}
	} else {
		for _, f := range wc.UntrackedFiles {
			files = append(files, model.PendingFile{
				File:      f.Filename,
				TimeLabel: tf.RelativeLabel(f.LastModified),
				Untracked: true,
			})
		}
	}

	stats := wc.Stats()
	return &model.PendingPanel{
		FirstFile:   files[0],
		Files:       files[1:],
		NumBehind:   stats.NumBehind,
		BranchStyle: branchStyle(stats),
		BranchName:  wc.BranchName,
		Icon:        types.IconWrite,
	}
}

// ShowOrHide is the label of the expand control of wc.
func ShowOrHide(wc *model.WorkingCopy, sel model.Selection) string {
	if wc != nil && sel.IsExpanded(wc.ID) {
		return "Hide"
	}
	return "Show"
}

func olderStart(wc *model.WorkingCopy) int {
	if HasPendingChanges(wc) {
		return 0
	}
	return 1
}

func branchStyle(stats model.FileStats) types.BranchStyle {
	if stats.NumBehind > 0 {
		return types.BranchStyleBehind
	}
	return types.BranchStyleNone
}

func annotate(commit *model.Commit, wc *model.WorkingCopy, icon types.IconKind, tf interfaces.TimeFormatter) *model.TimelineItem {
	stats := wc.Stats()
	return &model.TimelineItem{
		CommitID:    commit.ID,
		Message:     commit.Message,
		Timestamp:   commit.Timestamp,
		TimeLabel:   tf.RelativeLabel(commit.Timestamp),
		BranchName:  wc.BranchName,
		NumBehind:   stats.NumBehind,
		BranchStyle: branchStyle(stats),
		Icon:        icon,
	}
}
