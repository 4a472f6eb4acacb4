package application

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/dukahub/pos-terminal-service/internal/domain"
	"github.com/dukahub/pos-terminal-service/internal/ports"
)

const serviceName = "POS-Terminal-Service"

const (
	eventTypePosClockedIn  = "pos.clocked_in"
	eventTypePosClockedOut = "pos.clocked_out"
	eventTypeDeviceLocked  = "pos.device_locked"
)

type Service struct {
	cfg        Config
	devices    ports.DeviceRepository
	accounts   ports.AccountRepository
	attendance ports.AttendanceRepository
	shifts     ports.ShiftRepository
	outbox     ports.OutboxRepository
	sessions   ports.TerminalSessionStore
	hasher     ports.PinHasher
	signer     ports.TokenSigner
	nowFn      func() time.Time
}

type Dependencies struct {
	Config     Config
	Devices    ports.DeviceRepository
	Accounts   ports.AccountRepository
	Attendance ports.AttendanceRepository
	Shifts     ports.ShiftRepository
	Outbox     ports.OutboxRepository
	Sessions   ports.TerminalSessionStore
	Hasher     ports.PinHasher
	Signer     ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.PinAttemptThreshold <= 0 {
		cfg.PinAttemptThreshold = domain.DefaultPinAttemptThreshold
	}
	return &Service{
		cfg:        cfg,
		devices:    deps.Devices,
		accounts:   deps.Accounts,
		attendance: deps.Attendance,
		shifts:     deps.Shifts,
		outbox:     deps.Outbox,
		sessions:   deps.Sessions,
		hasher:     deps.Hasher,
		signer:     deps.Signer,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

// PublicJWKs returns active public keys for downstream token verification.
func (s *Service) PublicJWKs() ([]map[string]any, error) {
	return s.signer.PublicJWKs()
}

// LoginPath is where rejected terminal logins are sent back to.
func (s *Service) LoginPath() string {
	return s.cfg.LoginPath
}

// newCSRFToken mints the anti-forgery token carried alongside the session.
// Logout mints a fresh one for the post-logout surface instead of reusing
// the invalidated session's token.
func newCSRFToken() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
