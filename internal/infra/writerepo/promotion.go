package writerepo

import (
	"context"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/pgconv"
	"bonojuntos/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PromotionRepository serves the command side with write-safe snapshots.
type PromotionRepository struct {
	db *pgxpool.Pool
}

func NewPromotionRepository(db *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) FindByID(ctx context.Context, id int64) (*commands.PromotionSnapshot, error) {
	var (
		snap         commands.PromotionSnapshot
		perUserLimit int32
	)
	err := r.db.QueryRow(ctx, `
SELECT p.id, p.collaborator_id, p.title, c.business_name, p.per_user_limit, p.is_active
FROM promotions p
JOIN collaborators c ON c.id = p.collaborator_id
WHERE p.id = $1`, id).Scan(
		&snap.ID, &snap.CollaboratorID, &snap.Title, &snap.BusinessName,
		&perUserLimit, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by id", err)
	}
	snap.PerUserLimit = int(perUserLimit)
	return &snap, nil
}
