package ports

import (
	"time"

	"github.com/google/uuid"
)

type PinHasher interface {
	Hash(pin string) (string, error)
	Compare(hash, pin string) error
}

// SessionClaims is the payload signed into the terminal's bearer token.
// The Redis session record, not the token, remains the source of truth; the
// token only identifies the session and the acting account.
type SessionClaims struct {
	AccountID  uuid.UUID `json:"account_id"`
	Role       string    `json:"role"`
	DeviceID   uuid.UUID `json:"device_uuid"`
	SessionID  uuid.UUID `json:"session_id"`
	BusinessID uuid.UUID `json:"business_id"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	KeyID      string    `json:"kid"`
}

type TokenSigner interface {
	Sign(claims SessionClaims) (string, error)
	ParseAndValidate(token string) (SessionClaims, error)
	PublicJWKs() ([]map[string]any, error)
}
