package writerepo

import (
	"context"
	"strings"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/pgconv"
	"bonojuntos/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CollaboratorRepository struct {
	db *pgxpool.Pool
}

func NewCollaboratorRepository(db *pgxpool.Pool) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

func (r *CollaboratorRepository) FindByEmail(ctx context.Context, email string) (*commands.CollaboratorSnapshot, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var snap commands.CollaboratorSnapshot
	err := r.db.QueryRow(ctx, `
SELECT id, email, password_hash, business_name, role, is_active
FROM collaborators
WHERE email = $1`, normalized).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.BusinessName, &snap.Role, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("collaborator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collaborator by email", err)
	}
	return &snap, nil
}
