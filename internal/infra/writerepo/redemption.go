package writerepo

import (
	"context"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/pgconv"
	"bonojuntos/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RedemptionRepository is the sole authority for redemption idempotency:
// the UNIQUE (promotion_id, nonce) constraint rejects a second submission
// carrying an already-recorded nonce, which no amount of local locking
// could guarantee across devices.
type RedemptionRepository struct {
	db *pgxpool.Pool
}

func NewRedemptionRepository(db *pgxpool.Pool) *RedemptionRepository {
	return &RedemptionRepository{db: db}
}

func (r *RedemptionRepository) Create(ctx context.Context, rec commands.RedemptionRecord) (uuid.UUID, error) {
	var redemptionID uuid.UUID
	err := r.db.QueryRow(ctx, `
INSERT INTO redemptions (id, user_id, promotion_id, branch_id, nonce, issued_at, redeemed_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, now())
RETURNING id`,
		rec.UserID, rec.PromotionID, rec.BranchID, rec.Nonce, rec.IssuedAt,
	).Scan(&redemptionID)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("nonce already redeemed for promotion", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("redemption references unknown promotion or branch", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create redemption", err)
	}
	return redemptionID, nil
}
