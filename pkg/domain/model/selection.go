package model

import "github.com/m-mizutani/livegit/pkg/domain/types"

// Selection is the per-session view state. At most one working copy is
// expanded and at most one diff is open. The zero value has nothing
// selected.
type Selection struct {
	ExpandedWorkingCopyID types.WorkingCopyID `json:"expanded_working_copy_id,omitempty"`
	OpenDiffWorkingCopyID types.WorkingCopyID `json:"open_diff_working_copy_id,omitempty"`
	OpenDiffFile          string              `json:"open_diff_file,omitempty"`
}

func (x *Selection) IsExpanded(id types.WorkingCopyID) bool {
	return id != "" && x.ExpandedWorkingCopyID == id
}

func (x *Selection) IsDiffOpen(id types.WorkingCopyID) bool {
	return id != "" && x.OpenDiffWorkingCopyID == id
}

// ToggleExpanded collapses id if it is expanded, otherwise expands it in
// place of any other working copy.
func (x *Selection) ToggleExpanded(id types.WorkingCopyID) {
	if x.IsExpanded(id) {
		x.ExpandedWorkingCopyID = ""
		return
	}
	x.ExpandedWorkingCopyID = id
}

// ToggleDiff closes the open diff when id is already its working copy,
// whatever file was given. Otherwise it opens file of id, replacing any open
// diff. An empty file is ignored.
func (x *Selection) ToggleDiff(id types.WorkingCopyID, file string) {
	if file == "" {
		return
	}
	if x.IsDiffOpen(id) {
		x.OpenDiffWorkingCopyID = ""
		x.OpenDiffFile = ""
		return
	}
	x.OpenDiffWorkingCopyID = id
	x.OpenDiffFile = file
}
