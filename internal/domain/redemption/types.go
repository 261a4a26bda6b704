package redemption

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationRecord is the enriched, human-readable view of a decoded claim
// shown to the operator before committing the redemption. It is owned by the
// active attempt and discarded on cancel, confirm or error. Display fields
// are best-effort and may hold placeholder text when the promotion lookup
// was unavailable at scan time.
type ConfirmationRecord struct {
	AttemptID      uuid.UUID `json:"attempt_id"`
	PromotionID    int64     `json:"promotion_id"`
	UserID         string    `json:"user_id"`
	CollaboratorID string    `json:"collaborator_id"`
	BranchID       uuid.UUID `json:"branch_id"`
	Nonce          string    `json:"nonce"`
	IssuedAt       time.Time `json:"issued_at"`

	UserName       string `json:"user_name"`
	PromotionTitle string `json:"promotion_title"`
	BusinessName   string `json:"business_name"`
}

// RedemptionResult is returned by the redemption store after a successful
// write. Producing it is the single state-changing side effect of the whole
// subsystem; it must never exist twice for the same (promotion, nonce).
type RedemptionResult struct {
	RedemptionID uuid.UUID `json:"redemption_id"`
}
