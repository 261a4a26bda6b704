package readstore

import (
	"context"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/pgconv"
	"bonojuntos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollaboratorReadStore struct {
	db *pgxpool.Pool
}

func NewCollaboratorReadStore(db *pgxpool.Pool) *CollaboratorReadStore {
	return &CollaboratorReadStore{db: db}
}

func (r *CollaboratorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CollaboratorView, error) {
	var view queries.CollaboratorView
	err := r.db.QueryRow(ctx, `
SELECT id, email, business_name, role, is_active
FROM collaborators
WHERE id = $1`, id).Scan(
		&view.ID, &view.Email, &view.BusinessName, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("collaborator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collaborator by id", err)
	}
	return &view, nil
}
