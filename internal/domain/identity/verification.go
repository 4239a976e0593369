package identity

import "time"

// Verification is an email-confirmation token. PK: token (lookups come from
// the verification link, which carries only the token). ExpiresAt doubles
// as the DynamoDB TTL attribute; UsedAt stays nil until the token is
// consumed so reuse can be told apart from expiry.
type Verification struct {
	Token     string     `json:"token" dynamodbav:"token"`
	UserID    string     `json:"user_id" dynamodbav:"user_id"`
	ExpiresAt int64      `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
	UsedAt    *time.Time `json:"used_at,omitempty" dynamodbav:"used_at"`
	CreatedAt time.Time  `json:"created_at" dynamodbav:"created_at"`
}

// Expired reports whether the token's validity window has passed at now.
func (v *Verification) Expired(now time.Time) bool {
	return v.ExpiresAt < now.Unix()
}

// Used reports whether the token has already been consumed.
func (v *Verification) Used() bool { return v.UsedAt != nil }
