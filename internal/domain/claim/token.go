package claim

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenPrefix is the constant first segment of every token. The format is a
// bit-exact contract between the customer-facing issuer and independently
// built merchant scanners; do not change it without bumping SupportedVersion.
const TokenPrefix = "bj"

const (
	fieldVersion      = "v"
	fieldPromotionID  = "pid"
	fieldUserID       = "uid"
	fieldCollaborator = "cid"
	fieldPerUserLimit = "lpu"
	fieldIssuedAt     = "ts"
	fieldNonce        = "n"
)

// requiredFields is ordered so that MissingField errors are deterministic.
var requiredFields = []string{
	fieldVersion,
	fieldPromotionID,
	fieldUserID,
	fieldCollaborator,
	fieldPerUserLimit,
	fieldIssuedAt,
	fieldNonce,
}

type DecodeErrorKind string

const (
	KindMalformedPrefix DecodeErrorKind = "MALFORMED_PREFIX"
	KindMissingField    DecodeErrorKind = "MISSING_FIELD"
	KindTypeMismatch    DecodeErrorKind = "TYPE_MISMATCH"
)

// DecodeError is the closed error type returned by Decode. It is always a
// client-input problem; callers must not retry.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string // set for MissingField and TypeMismatch
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode token: %s (%s)", string(e.Kind), e.Field)
	}
	return "decode token: " + string(e.Kind)
}

// Encode renders a claim in the fixed field order of the wire format.
// Field values must not contain '|' or '='; producers are responsible for
// choosing nonces and ids that avoid those bytes, the codec does not escape.
func Encode(c Claim) string {
	return fmt.Sprintf("%s|%s=%d|%s=%d|%s=%s|%s=%s|%s=%d|%s=%d|%s=%s",
		TokenPrefix,
		fieldVersion, c.SchemaVersion,
		fieldPromotionID, c.PromotionID,
		fieldUserID, c.UserID,
		fieldCollaborator, c.CollaboratorID,
		fieldPerUserLimit, c.PerUserLimit,
		fieldIssuedAt, c.IssuedAtMillis,
		fieldNonce, c.Nonce,
	)
}

// Decode parses a token into a Claim. Fields are accepted in any order; a
// trailing pipe is tolerated as long as every remaining segment is still a
// well-formed key=value pair.
func Decode(token string) (Claim, error) {
	segments := strings.Split(token, "|")
	if segments[0] != TokenPrefix {
		return Claim{}, &DecodeError{Kind: KindMalformedPrefix}
	}

	fields := make(map[string]string, len(requiredFields))
	for i, seg := range segments[1:] {
		if seg == "" && i == len(segments)-2 {
			// extra trailing pipe
			continue
		}
		key, value, ok := strings.Cut(seg, "=")
		if !ok || key == "" {
			continue
		}
		fields[key] = value
	}

	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return Claim{}, &DecodeError{Kind: KindMissingField, Field: name}
		}
	}

	version, err := parseInt(fields, fieldVersion)
	if err != nil {
		return Claim{}, err
	}
	promotionID, err := parseInt64(fields, fieldPromotionID)
	if err != nil {
		return Claim{}, err
	}
	perUserLimit, err := parseInt(fields, fieldPerUserLimit)
	if err != nil {
		return Claim{}, err
	}
	issuedAt, err := parseInt64(fields, fieldIssuedAt)
	if err != nil {
		return Claim{}, err
	}

	return Claim{
		SchemaVersion:  version,
		PromotionID:    promotionID,
		UserID:         fields[fieldUserID],
		CollaboratorID: fields[fieldCollaborator],
		PerUserLimit:   perUserLimit,
		IssuedAtMillis: issuedAt,
		Nonce:          fields[fieldNonce],
	}, nil
}

func parseInt(fields map[string]string, name string) (int, error) {
	v, err := strconv.Atoi(fields[name])
	if err != nil {
		return 0, &DecodeError{Kind: KindTypeMismatch, Field: name}
	}
	return v, nil
}

func parseInt64(fields map[string]string, name string) (int64, error) {
	v, err := strconv.ParseInt(fields[name], 10, 64)
	if err != nil {
		return 0, &DecodeError{Kind: KindTypeMismatch, Field: name}
	}
	return v, nil
}
