//go:build unit || e2e

package builder

import (
	"time"

	"bonojuntos/internal/domain/claim"
	"bonojuntos/internal/pkg/clock"
)

type ClaimBuilder struct {
	SchemaVersion  int
	PromotionID    int64
	UserID         string
	CollaboratorID string
	PerUserLimit   int
	IssuedAt       time.Time
	Nonce          string
}

func NewClaimBuilder() *ClaimBuilder {
	return &ClaimBuilder{
		SchemaVersion:  claim.SupportedVersion,
		PromotionID:    42,
		UserID:         "u1",
		CollaboratorID: "c1",
		PerUserLimit:   2,
		IssuedAt:       time.UnixMilli(1700000000000).UTC(),
		Nonce:          "abc123",
	}
}

func (b *ClaimBuilder) With(mutate func(*ClaimBuilder)) *ClaimBuilder {
	mutate(b)
	return b
}

func (b *ClaimBuilder) Build() claim.Claim {
	return claim.Claim{
		SchemaVersion:  b.SchemaVersion,
		PromotionID:    b.PromotionID,
		UserID:         b.UserID,
		CollaboratorID: b.CollaboratorID,
		PerUserLimit:   b.PerUserLimit,
		IssuedAtMillis: clock.Millis(b.IssuedAt),
		Nonce:          b.Nonce,
	}
}

func (b *ClaimBuilder) BuildToken() string {
	return claim.Encode(b.Build())
}
