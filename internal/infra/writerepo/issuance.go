package writerepo

import (
	"context"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/pgconv"
	"bonojuntos/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IssuanceRepository struct {
	db *pgxpool.Pool
}

func NewIssuanceRepository(db *pgxpool.Pool) *IssuanceRepository {
	return &IssuanceRepository{db: db}
}

func (r *IssuanceRepository) Create(ctx context.Context, rec commands.IssuanceRecord) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO issued_coupons (promotion_id, user_id, collaborator_id, nonce, issued_at)
VALUES ($1, $2, $3, $4, $5)`,
		rec.PromotionID, rec.UserID, rec.CollaboratorID, rec.Nonce, rec.IssuedAt,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("nonce already issued", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to record issuance", err)
	}
	return nil
}
