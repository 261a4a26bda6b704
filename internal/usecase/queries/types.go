package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PromotionView struct {
	ID             int64     `json:"id"`
	CollaboratorID uuid.UUID `json:"collaborator_id"`
	Title          string    `json:"title"`
	BusinessName   string    `json:"business_name"`
	PerUserLimit   int32     `json:"per_user_limit"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RedemptionListItem struct {
	ID             uuid.UUID `json:"id"`
	PromotionID    int64     `json:"promotion_id"`
	PromotionTitle string    `json:"promotion_title"`
	UserID         string    `json:"user_id"`
	BranchID       uuid.UUID `json:"branch_id"`
	Nonce          string    `json:"nonce"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

type CollaboratorView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
