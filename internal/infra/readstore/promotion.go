package readstore

import (
	"context"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/pgconv"
	"bonojuntos/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionReadStore struct {
	db *pgxpool.Pool
}

func NewPromotionReadStore(db *pgxpool.Pool) *PromotionReadStore {
	return &PromotionReadStore{db: db}
}

const promotionByIDQuery = `
SELECT p.id, p.collaborator_id, p.title, c.business_name, p.per_user_limit, p.is_active, p.created_at, p.updated_at
FROM promotions p
JOIN collaborators c ON c.id = p.collaborator_id
WHERE p.id = $1`

func (r *PromotionReadStore) FindByID(ctx context.Context, id int64) (*queries.PromotionView, error) {
	var view queries.PromotionView
	err := r.db.QueryRow(ctx, promotionByIDQuery, id).Scan(
		&view.ID, &view.CollaboratorID, &view.Title, &view.BusinessName,
		&view.PerUserLimit, &view.IsActive, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by id", err)
	}
	return &view, nil
}

const redemptionsByPromotionQuery = `
SELECT r.id, r.promotion_id, p.title, r.user_id, r.branch_id, r.nonce, r.redeemed_at
FROM redemptions r
JOIN promotions p ON p.id = r.promotion_id
WHERE r.promotion_id = $1
ORDER BY r.redeemed_at DESC
LIMIT $2`

func (r *PromotionReadStore) ListRedemptions(ctx context.Context, promotionID int64, limit int) ([]queries.RedemptionListItem, error) {
	rows, err := r.db.Query(ctx, redemptionsByPromotionQuery, promotionID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}
	defer rows.Close()

	items := make([]queries.RedemptionListItem, 0, limit)
	for rows.Next() {
		var item queries.RedemptionListItem
		if err := rows.Scan(
			&item.ID, &item.PromotionID, &item.PromotionTitle,
			&item.UserID, &item.BranchID, &item.Nonce, &item.RedeemedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan redemption row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate redemption rows", err)
	}
	return items, nil
}
