// Package claim implements the QR coupon claim: the wire codec, the
// point-of-sale validation rules and the scan throttle.
//
// A token carries no cryptographic integrity check. The nonce is a
// server-issued opaque string and the sole anti-replay key; anyone who can
// read a valid QR can replay it until first redemption, at which point the
// redemption store's uniqueness constraint on (promotion, nonce) rejects it.
package claim

// Claim is the immutable value decoded from a QR token. A Claim is valid
// only relative to a verification instant and a scanning merchant identity;
// validity is never intrinsic to the Claim alone.
type Claim struct {
	SchemaVersion  int
	PromotionID    int64
	UserID         string
	CollaboratorID string
	PerUserLimit   int
	IssuedAtMillis int64
	Nonce          string
}
