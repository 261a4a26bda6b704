package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type PromotionSnapshot struct {
	ID             int64
	CollaboratorID uuid.UUID
	Title          string
	BusinessName   string
	PerUserLimit   int
	IsActive       bool
}

type CollaboratorSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	BusinessName string
	Role         string
	IsActive     bool
}

// RedemptionRecord is what gets submitted to the redemption store. The store
// enforces uniqueness on (PromotionID, Nonce); the coordinator never
// serializes concurrent confirms itself.
type RedemptionRecord struct {
	UserID      string
	PromotionID int64
	BranchID    uuid.UUID
	Nonce       string
	IssuedAt    time.Time
}

// IssuanceRecord captures one server-side issuance of a coupon claim.
type IssuanceRecord struct {
	PromotionID    int64
	UserID         string
	CollaboratorID uuid.UUID
	Nonce          string
	IssuedAt       time.Time
}
