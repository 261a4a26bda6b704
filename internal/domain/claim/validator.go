package claim

import (
	"errors"
	"time"
)

// SupportedVersion is the only schema version this scanner understands.
const SupportedVersion = 1

const (
	// DefaultMaxAge is how long a token stays redeemable after issuance.
	DefaultMaxAge = 24 * time.Hour
	// DefaultClockSkew bounds how far in the future an issuedAt may sit
	// before the token is treated as forged or from a broken clock.
	DefaultClockSkew = 5 * time.Minute
)

// Validation failures are policy rejections; each maps to a distinct
// operator-facing message at the handler boundary and must never be
// collapsed into a generic error.
var (
	ErrUnsupportedVersion = errors.New("unsupported claim schema version")
	ErrExpired            = errors.New("claim has expired")
	ErrIssuedInFuture     = errors.New("claim issued in the future")
	ErrMerchantMismatch   = errors.New("claim belongs to another merchant")
)

// Policy holds the validation windows. The zero value is not usable; use
// DefaultPolicy or build one from configuration.
type Policy struct {
	MaxAge    time.Duration
	ClockSkew time.Duration
}

func DefaultPolicy() Policy {
	return Policy{MaxAge: DefaultMaxAge, ClockSkew: DefaultClockSkew}
}

// Validate checks a claim against the verification instant and the scanning
// merchant identity using the default policy windows.
func Validate(c Claim, now time.Time, scannerID string) error {
	return DefaultPolicy().Validate(c, now, scannerID)
}

// Validate applies the rules in fixed precedence order, first failure wins:
// schema version, expiry, future skew, merchant ownership. Expiry is checked
// before skew and both before ownership so the most actionable error
// surfaces first; tests pin this order.
//
// When scannerID is empty the ownership rule is skipped. That permits
// scanning before the merchant identity is resolved; whether that is
// intentional in the upstream protocol is unresolved, so the rule stays
// permissive here rather than rejecting outright.
func (p Policy) Validate(c Claim, now time.Time, scannerID string) error {
	if c.SchemaVersion != SupportedVersion {
		return ErrUnsupportedVersion
	}

	issuedAt := time.UnixMilli(c.IssuedAtMillis)
	if now.Sub(issuedAt) > p.MaxAge {
		return ErrExpired
	}
	if issuedAt.Sub(now) > p.ClockSkew {
		return ErrIssuedInFuture
	}

	if scannerID != "" && c.CollaboratorID != scannerID {
		return ErrMerchantMismatch
	}

	return nil
}
