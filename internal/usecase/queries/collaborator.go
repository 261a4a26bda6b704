package queries

import (
	"context"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCollaboratorNotFound = errs.New("collaborator not found")
	ErrCollaboratorQuery    = errs.New("collaborator query failed")
)

type CollaboratorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CollaboratorView, error)
}

type CollaboratorQueries interface {
	GetCurrent(ctx context.Context, id uuid.UUID) (*CollaboratorView, error)
}

type collaboratorQueriesImpl struct {
	store CollaboratorReadStore
}

func NewCollaboratorQueries(store CollaboratorReadStore) CollaboratorQueries {
	return &collaboratorQueriesImpl{store: store}
}

func (q *collaboratorQueriesImpl) GetCurrent(ctx context.Context, id uuid.UUID) (*CollaboratorView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCollaboratorNotFound
		}
		return nil, errs.Mark(err, ErrCollaboratorQuery)
	}
	return view, nil
}
