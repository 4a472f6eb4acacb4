package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TerminalSession is the ephemeral POS-mode session envelope.
// It includes the account and device context so logout can attribute the
// clock-out and shift close after the bearer token alone would no longer do.
type TerminalSession struct {
	SessionID   uuid.UUID  `json:"session_id"`
	AccountID   uuid.UUID  `json:"account_id"`
	AccountName string     `json:"account_name"`
	Role        string     `json:"role"`
	DeviceID    uuid.UUID  `json:"device_uuid"`
	BusinessID  uuid.UUID  `json:"business_id"`
	BranchID    *uuid.UUID `json:"branch_id,omitempty"`
	PosLogin    bool       `json:"pos_login"`
	CSRFToken   string     `json:"csrf_token"`
	IPAddress   string     `json:"ip_address,omitempty"`
	UserAgent   string     `json:"user_agent,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
}

// TerminalSessionStore persists POS sessions for the lifetime of a terminal
// login. Delete is the invalidation primitive; the anti-forgery token for the
// post-logout surface is minted fresh rather than rewritten in place.
type TerminalSessionStore interface {
	Put(ctx context.Context, session TerminalSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID uuid.UUID) (*TerminalSession, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
