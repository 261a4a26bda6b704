package commands

import (
	"context"
	"log/slog"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/domain/redemption"
	"bonojuntos/internal/infra"
	"bonojuntos/internal/pkg/clock"
	"bonojuntos/internal/pkg/config"
	"bonojuntos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errs.New("invalid token")
	ErrClaimRejected      = errs.New("claim rejected")
	ErrRedemptionConflict = errs.New("coupon already redeemed")
	ErrRedemptionFailed   = errs.New("redemption failed")
)

// Placeholder display text used when the promotion lookup is unavailable at
// scan time. The redemption itself is validated against the server's own
// record at confirm time, so a failed lookup must never block a scan.
const (
	placeholderPromotionTitle = "Promoción"
	placeholderBusinessName   = "Colaborador"
)

type PromotionRepository interface {
	FindByID(ctx context.Context, id int64) (*PromotionSnapshot, error)
}

type RedemptionRepository interface {
	Create(ctx context.Context, rec RedemptionRecord) (uuid.UUID, error)
}

// RedemptionCommands orchestrates the two-phase redemption flow: ProcessScan
// turns a raw token into a reviewable ConfirmationRecord, Confirm submits it.
// The coordinator is stateless per attempt; serialization of racing confirms
// is delegated entirely to the store's uniqueness constraint.
type RedemptionCommands interface {
	ProcessScan(ctx context.Context, token, scannerID string, branchID uuid.UUID) (*redemption.ConfirmationRecord, error)
	Confirm(ctx context.Context, record *redemption.ConfirmationRecord) (*redemption.RedemptionResult, error)
}

type redemptionUseCaseImpl struct {
	promotionRepo  PromotionRepository
	redemptionRepo RedemptionRepository
	clock          clock.Clock
	cfg            config.RedemptionConfig
}

func NewRedemptionCommands(
	promotionRepo PromotionRepository,
	redemptionRepo RedemptionRepository,
	clk clock.Clock,
	cfg config.Config,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		promotionRepo:  promotionRepo,
		redemptionRepo: redemptionRepo,
		clock:          clk,
		cfg:            cfg.Redemption,
	}
}

func (r *redemptionUseCaseImpl) ProcessScan(
	ctx context.Context,
	token, scannerID string,
	branchID uuid.UUID,
) (*redemption.ConfirmationRecord, error) {
	c, err := claim.Decode(token)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	policy := claim.Policy{MaxAge: r.cfg.MaxAge, ClockSkew: r.cfg.ClockSkew}
	if err := policy.Validate(c, r.clock.Now(), scannerID); err != nil {
		return nil, errs.Mark(err, ErrClaimRejected)
	}

	title, business := r.lookupDisplayData(ctx, c.PromotionID)

	return &redemption.ConfirmationRecord{
		PromotionID:    c.PromotionID,
		UserID:         c.UserID,
		CollaboratorID: c.CollaboratorID,
		BranchID:       branchID,
		Nonce:          c.Nonce,
		IssuedAt:       clock.FromMillis(c.IssuedAtMillis),
		UserName:       c.UserID,
		PromotionTitle: title,
		BusinessName:   business,
	}, nil
}

// lookupDisplayData is best-effort enrichment only: on any failure it
// degrades to placeholder text instead of blocking a possibly legitimate
// redemption.
func (r *redemptionUseCaseImpl) lookupDisplayData(ctx context.Context, promotionID int64) (title, business string) {
	lookupCtx, cancel := context.WithTimeout(ctx, r.cfg.LookupTimeout)
	defer cancel()

	promo, err := r.promotionRepo.FindByID(lookupCtx, promotionID)
	if err != nil {
		slog.Warn("promotion lookup failed, degrading to placeholder display data",
			"promotion_id", promotionID, "error", err.Error())
		return placeholderPromotionTitle, placeholderBusinessName
	}
	return promo.Title, promo.BusinessName
}

func (r *redemptionUseCaseImpl) Confirm(
	ctx context.Context,
	record *redemption.ConfirmationRecord,
) (*redemption.RedemptionResult, error) {
	writeCtx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	redemptionID, err := r.redemptionRepo.Create(writeCtx, RedemptionRecord{
		UserID:      record.UserID,
		PromotionID: record.PromotionID,
		BranchID:    record.BranchID,
		Nonce:       record.Nonce,
		IssuedAt:    record.IssuedAt,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Terminal: the coupon was already redeemed. Never retried.
			return nil, errs.Mark(err, ErrRedemptionConflict)
		}
		// Transient or unknown (a timed-out write may have landed
		// server-side); the operator must verify before re-scanning.
		return nil, errs.Mark(err, ErrRedemptionFailed)
	}

	return &redemption.RedemptionResult{RedemptionID: redemptionID}, nil
}
