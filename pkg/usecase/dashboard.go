package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

// diffLanguage is the highlighter language of working copy diffs.
const diffLanguage = "diff"

// BuildDashboard composes the whole view of repoID for a session. Users is
// empty unless the repository is found.
func (x *UseCase) BuildDashboard(ctx context.Context, sessionID types.SessionID, repoID types.RepositoryID) (*model.Dashboard, error) {
	resolution, err := x.ResolveRepository(ctx, sessionID, repoID)
	if err != nil {
		return nil, err
	}

	session, err := x.clients.SessionRepository().GetSession(ctx, sessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get session")
	}

	dashboard := &model.Dashboard{
		Resolution: resolution,
		Title:      resolution.Title(),
		Selection:  session.Selection,
		Users:      []*model.UserCard{},
	}
	if resolution.Status != types.ResolveFound {
		return dashboard, nil
	}

	entries, err := x.BuildActivity(ctx, repoID)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if card := x.buildUserCard(ctx, entry, session.Selection); card != nil {
			dashboard.Users = append(dashboard.Users, card)
		}
	}

	return dashboard, nil
}

func (x *UseCase) buildUserCard(ctx context.Context, entry *model.ActivityEntry, sel model.Selection) *model.UserCard {
	if entry == nil || entry.WorkingCopy == nil {
		return nil
	}
	wc := entry.WorkingCopy
	tf := x.clients.TimeFormatter()

	card := &model.UserCard{
		Entry:       entry,
		Pending:     BuildPendingPanel(wc, tf),
		TopItem:     BuildTopItem(entry, tf),
		OlderItems:  BuildOlderItems(entry, sel, tf),
		HasMore:     HasMore(entry),
		ShowOrHide:  ShowOrHide(wc, sel),
		ShowingDiff: sel.IsDiffOpen(wc.ID),
		BranchChart: BuildBranchChart(wc.FileStats),
	}
	if IsIdle(entry) {
		card.IdleMessage = IdleMessage
	}

	if card.ShowingDiff {
		if diff := wc.FindDiff(sel.OpenDiffFile); diff != nil {
			markup, err := x.clients.Highlighter().Highlight(diffLanguage, diff.Content)
			if err != nil {
				logging.From(ctx).Warn("failed to highlight diff",
					"error", err,
					slog.Any("working_copy_id", wc.ID),
					slog.String("file", diff.File),
				)
			} else {
				card.FileDiff = markup
			}
		}
	}

	return card
}
