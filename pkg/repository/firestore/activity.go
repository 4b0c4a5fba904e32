package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/model"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionRepository  = "repository"
	collectionWorkingCopy = "working_copy"
	collectionCommit      = "commit"
	collectionUser        = "user"
)

var _ interfaces.ActivityRepository = (*Repository)(nil)

// Repository stores collector records in Firestore, one collection per kind.
type Repository struct {
	client *firestore.Client
	prefix string
}

// ToDocID validates an entity ID for use as a Firestore document ID.
// Document IDs cannot contain "/" and cannot be empty.
func ToDocID(id string) (string, error) {
	if id == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "ID is empty")
	}
	if strings.Contains(id, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "ID contains invalid character '/'",
			goerr.V("id", id),
		)
	}
	return id, nil
}

func (r *Repository) put(ctx context.Context, collection, id string, v any) error {
	docID, err := ToDocID(id)
	if err != nil {
		return err
	}

	if _, err := r.collection(collection).Doc(docID).Set(ctx, v); err != nil {
		return goerr.Wrap(err, "failed to set document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}
	return nil
}

func (r *Repository) get(ctx context.Context, collection, id string, v any) error {
	docID, err := ToDocID(id)
	if err != nil {
		return err
	}

	snap, err := r.collection(collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "document not found",
				goerr.V("collection", collection),
				goerr.V("id", id),
			)
		}
		return goerr.Wrap(err, "failed to get document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}

	if err := snap.DataTo(v); err != nil {
		return goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}
	return nil
}

// Repository operations

func (r *Repository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if repo == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "repository is nil")
	}
	return r.put(ctx, collectionRepository, string(repo.ID), repo)
}

func (r *Repository) GetRepository(ctx context.Context, repoID types.RepositoryID) (*model.Repository, error) {
	var repo model.Repository
	if err := r.get(ctx, collectionRepository, string(repoID), &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// WorkingCopy operations

func (r *Repository) PutWorkingCopy(ctx context.Context, wc *model.WorkingCopy) error {
	if wc == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "working copy is nil")
	}
	return r.put(ctx, collectionWorkingCopy, string(wc.ID), wc)
}

func (r *Repository) ListWorkingCopies(ctx context.Context, repoID types.RepositoryID) ([]*model.WorkingCopy, error) {
	query := r.collection(collectionWorkingCopy).
		Where("RepositoryID", "==", string(repoID)).
		OrderBy("Timestamp", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var copies []*model.WorkingCopy
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate working copies",
				goerr.V("repoID", repoID),
			)
		}

		var wc model.WorkingCopy
		if err := snap.DataTo(&wc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode working copy",
				goerr.V("docID", snap.Ref.ID),
			)
		}

		copies = append(copies, &wc)
	}

	return copies, nil
}

// Commit operations

func (r *Repository) PutCommit(ctx context.Context, commit *model.Commit) error {
	if commit == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "commit is nil")
	}
	return r.put(ctx, collectionCommit, string(commit.ID), commit)
}

func (r *Repository) GetCommits(ctx context.Context, ids []types.CommitID) ([]*model.Commit, error) {
	seen := make(map[types.CommitID]bool, len(ids))
	var refs []*firestore.DocumentRef
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		// IDs that are not valid document IDs are never stored
		docID, err := ToDocID(string(id))
		if err != nil {
			continue
		}
		refs = append(refs, r.collection(collectionCommit).Doc(docID))
	}

	if len(refs) == 0 {
		return nil, nil
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commits",
			goerr.V("count", len(refs)),
		)
	}

	var commits []*model.Commit
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var commit model.Commit
		if err := snap.DataTo(&commit); err != nil {
			return nil, goerr.Wrap(err, "failed to decode commit",
				goerr.V("docID", snap.Ref.ID),
			)
		}
		commits = append(commits, &commit)
	}

	model.SortCommits(commits)
	return commits, nil
}

func (r *Repository) GetLastPushedCommit(ctx context.Context, repoID types.RepositoryID, userID types.UserID) (*model.Commit, error) {
	query := r.collection(collectionCommit).
		Where("RepositoryID", "==", string(repoID)).
		Where("UserID", "==", string(userID)).
		Where("Invalid", "==", true).
		OrderBy("Timestamp", firestore.Desc).
		Limit(1)

	iter := query.Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query last pushed commit",
			goerr.V("repoID", repoID),
			goerr.V("userID", userID),
		)
	}

	var commit model.Commit
	if err := snap.DataTo(&commit); err != nil {
		return nil, goerr.Wrap(err, "failed to decode commit",
			goerr.V("docID", snap.Ref.ID),
		)
	}

	return &commit, nil
}

// User operations

func (r *Repository) PutUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "user is nil")
	}
	return r.put(ctx, collectionUser, string(user.ID), user)
}

func (r *Repository) GetUser(ctx context.Context, userID types.UserID) (*model.User, error) {
	var user model.User
	if err := r.get(ctx, collectionUser, string(userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
