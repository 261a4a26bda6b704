package commands

import (
	"context"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/clock"
	"bonojuntos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound = errs.New("promotion not found")
	ErrPromotionInactive = errs.New("promotion is not active")
	ErrIssuanceFailed    = errs.New("issuance failed")
)

type IssuanceRepository interface {
	Create(ctx context.Context, rec IssuanceRecord) error
}

// IssuanceCommands is the customer-facing side of the protocol: it mints the
// server-issued nonce and encodes the claim the merchant scanner will later
// decode.
type IssuanceCommands interface {
	IssueToken(ctx context.Context, promotionID int64, userID string) (string, error)
}

type issuanceUseCaseImpl struct {
	promotionRepo PromotionRepository
	issuanceRepo  IssuanceRepository
	clock         clock.Clock
}

func NewIssuanceCommands(
	promotionRepo PromotionRepository,
	issuanceRepo IssuanceRepository,
	clk clock.Clock,
) IssuanceCommands {
	return &issuanceUseCaseImpl{
		promotionRepo: promotionRepo,
		issuanceRepo:  issuanceRepo,
		clock:         clk,
	}
}

func (i *issuanceUseCaseImpl) IssueToken(ctx context.Context, promotionID int64, userID string) (string, error) {
	promo, err := i.promotionRepo.FindByID(ctx, promotionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrPromotionNotFound
		}
		return "", errs.Mark(err, ErrIssuanceFailed)
	}
	if !promo.IsActive {
		return "", ErrPromotionInactive
	}

	now := i.clock.Now()
	// uuid nonces never contain '|' or '=', which the token format forbids
	nonce := uuid.NewString()

	c := claim.Claim{
		SchemaVersion:  claim.SupportedVersion,
		PromotionID:    promo.ID,
		UserID:         userID,
		CollaboratorID: promo.CollaboratorID.String(),
		PerUserLimit:   promo.PerUserLimit,
		IssuedAtMillis: clock.Millis(now),
		Nonce:          nonce,
	}

	if err := i.issuanceRepo.Create(ctx, IssuanceRecord{
		PromotionID:    promo.ID,
		UserID:         userID,
		CollaboratorID: promo.CollaboratorID,
		Nonce:          nonce,
		IssuedAt:       now,
	}); err != nil {
		return "", errs.Mark(err, ErrIssuanceFailed)
	}

	return claim.Encode(c), nil
}
