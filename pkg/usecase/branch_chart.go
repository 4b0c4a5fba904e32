package usecase

import "github.com/m-mizutani/livegit/pkg/domain/model"

// BuildBranchChart turns ahead/behind counts into marks. The last behind
// mark is the one nearest the point of divergence. A nil stats renders as
// an empty chart.
func BuildBranchChart(stats *model.FileStats) *model.BranchChart {
	chart := &model.BranchChart{
		BehindMarks: []model.BehindMark{},
	}
	if stats == nil {
		return chart
	}

	chart.AheadMarks = max(stats.NumAhead, 0)
	chart.HasAhead = chart.AheadMarks > 0

	for i := range max(stats.NumBehind, 0) {
		chart.BehindMarks = append(chart.BehindMarks, model.BehindMark{
			Last: i == stats.NumBehind-1,
		})
	}
	return chart
}
