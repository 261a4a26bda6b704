package queries

import (
	"context"

	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/errs"
)

var (
	ErrPromotionNotFound = errs.New("promotion not found")
	ErrPromotionQuery    = errs.New("promotion query failed")
)

type PromotionReadStore interface {
	FindByID(ctx context.Context, id int64) (*PromotionView, error)
	ListRedemptions(ctx context.Context, promotionID int64, limit int) ([]RedemptionListItem, error)
}

type PromotionQueries interface {
	GetByID(ctx context.Context, id int64) (*PromotionView, error)
	ListRedemptions(ctx context.Context, promotionID int64, limit int) ([]RedemptionListItem, error)
}

type promotionQueriesImpl struct {
	store PromotionReadStore
}

func NewPromotionQueries(store PromotionReadStore) PromotionQueries {
	return &promotionQueriesImpl{store: store}
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id int64) (*PromotionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrPromotionQuery)
	}
	return view, nil
}

func (q *promotionQueriesImpl) ListRedemptions(ctx context.Context, promotionID int64, limit int) ([]RedemptionListItem, error) {
	items, err := q.store.ListRedemptions(ctx, promotionID, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrPromotionQuery)
	}
	return items, nil
}
