package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukahub/pos-terminal-service/internal/domain"
	"github.com/dukahub/pos-terminal-service/internal/ports"
)

// Login runs the full terminal authentication pipeline: device trust gate,
// credential matcher, then the shift/attendance coordinator. Every failure is
// an expected user-facing outcome carrying one exact flashed message.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	device, err := s.trustedDevice(ctx, req.DeviceUUID)
	if err != nil {
		return LoginResponse{}, err
	}

	account, err := s.matchCredential(ctx, device, req.PinCode)
	if err != nil {
		return LoginResponse{}, err
	}

	now := s.nowFn()
	if err := s.ensureClockedIn(ctx, account, device, now); err != nil {
		return LoginResponse{}, err
	}

	sessionID := uuid.New()
	csrfToken := newCSRFToken()
	session := ports.TerminalSession{
		SessionID:   sessionID,
		AccountID:   account.AccountID,
		AccountName: account.Name,
		Role:        account.Role,
		DeviceID:    device.DeviceID,
		BusinessID:  device.BusinessID,
		BranchID:    account.BranchID,
		PosLogin:    true,
		CSRFToken:   csrfToken,
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Put(ctx, session, s.cfg.SessionTTL); err != nil {
		return LoginResponse{}, fmt.Errorf("store terminal session: %w", err)
	}

	token, err := s.signer.Sign(ports.SessionClaims{
		AccountID:  account.AccountID,
		Role:       account.Role,
		DeviceID:   device.DeviceID,
		SessionID:  sessionID,
		BusinessID: device.BusinessID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return LoginResponse{}, fmt.Errorf("sign session token: %w", err)
	}

	slog.Default().InfoContext(ctx, "terminal logged in",
		"service", serviceName,
		"module", "application",
		"layer", "application",
		"operation", "pos_login",
		"outcome", "success",
		"session_id", sessionID,
		"device_uuid", device.DeviceID,
		"ip_address", req.IPAddress,
	)

	return LoginResponse{
		Token:      token,
		SessionID:  sessionID,
		CSRFToken:  csrfToken,
		Redirect:   s.cfg.DashboardPath,
		PosLogin:   true,
		DeviceUUID: device.DeviceID,
		ExpiresIn:  int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

// trustedDevice is the device trust gate: lookup and lockout check only,
// no side effects.
func (s *Service) trustedDevice(ctx context.Context, rawUUID string) (domain.Device, error) {
	deviceID, err := uuid.Parse(strings.TrimSpace(rawUUID))
	if err != nil {
		return domain.Device{}, domain.ErrDeviceNotRegistered
	}

	device, err := s.devices.GetByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Device{}, domain.ErrDeviceNotRegistered
		}
		return domain.Device{}, err
	}
	if device.IsDisabled {
		return domain.Device{}, domain.ErrDeviceLockedOut
	}
	return device, nil
}

// matchCredential resolves a PIN against the accounts of the device's
// business and branch. A miss drives the device attempt counter; a hit
// clears it. Lockout belongs to the terminal, not the person: the same
// hardware is the brute-force surface, so a repeatedly mistyping colleague
// can lock the till for everyone.
func (s *Service) matchCredential(ctx context.Context, device domain.Device, pin string) (domain.Account, error) {
	if err := domain.ValidatePin(pin); err != nil {
		return domain.Account{}, err
	}

	candidates, err := s.accounts.ListActiveByBranch(ctx, device.BusinessID, device.BranchID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("list branch accounts: %w", err)
	}

	for _, account := range candidates {
		if account.BranchID == nil || *account.BranchID != device.BranchID {
			continue
		}
		if s.hasher.Compare(account.PinHash, pin) == nil {
			if err := s.devices.ResetAttempts(ctx, device.DeviceID, s.nowFn()); err != nil {
				return domain.Account{}, fmt.Errorf("reset device attempts: %w", err)
			}
			return account, nil
		}
	}

	return domain.Account{}, s.recordFailedAttempt(ctx, device)
}

// recordFailedAttempt increments the device counter atomically, disables the
// device at the threshold, and picks the exact flashed message.
func (s *Service) recordFailedAttempt(ctx context.Context, device domain.Device) error {
	now := s.nowFn()
	updated, err := s.devices.RecordFailedAttempt(ctx, device.DeviceID, s.cfg.PinAttemptThreshold, now)
	if err != nil {
		return fmt.Errorf("record failed attempt: %w", err)
	}

	if updated.IsDisabled {
		if !device.IsDisabled {
			s.emitDeviceLocked(ctx, updated, now)
		}
		slog.Default().WarnContext(ctx, "device locked out",
			"service", serviceName,
			"module", "application",
			"layer", "application",
			"operation", "pos_login",
			"outcome", "blocked",
			"device_uuid", updated.DeviceID,
			"attempts", updated.Attempts,
		)
		return &domain.PinRejectedError{Message: domain.DeviceLockedOutMessage}
	}

	remaining := domain.RemainingAttempts(s.cfg.PinAttemptThreshold, updated.Attempts)
	return &domain.PinRejectedError{Message: domain.FailedPinMessage(remaining)}
}

// ensureClockedIn opens a time-clock entry for (account, device branch)
// unless one is already open. Repeated logins inside one open shift are a
// no-op so a terminal bounce cannot double-clock anyone.
func (s *Service) ensureClockedIn(ctx context.Context, account domain.Account, device domain.Device, now time.Time) error {
	open, err := s.attendance.GetOpenEntry(ctx, account.AccountID, device.BranchID)
	if err != nil {
		return fmt.Errorf("load open attendance entry: %w", err)
	}
	if open != nil {
		return nil
	}

	entry, err := s.attendance.CreateOpenEntry(ctx, account.AccountID, device.BranchID, now)
	if err != nil {
		// A concurrent login won the partial unique index; same outcome.
		if errors.Is(err, domain.ErrConflict) {
			return nil
		}
		return fmt.Errorf("create attendance entry: %w", err)
	}

	payload, _ := json.Marshal(map[string]any{
		"entry_id":    entry.EntryID,
		"account_id":  account.AccountID,
		"branch_id":   device.BranchID,
		"device_uuid": device.DeviceID,
		"clock_in":    entry.ClockIn,
	})
	_ = s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    eventTypePosClockedIn,
		PartitionKey: device.BranchID.String(),
		Payload:      payload,
		OccurredAt:   now,
	})
	return nil
}

func (s *Service) emitDeviceLocked(ctx context.Context, device domain.Device, now time.Time) {
	payload, _ := json.Marshal(map[string]any{
		"device_uuid": device.DeviceID,
		"business_id": device.BusinessID,
		"branch_id":   device.BranchID,
		"attempts":    device.Attempts,
		"locked_at":   now,
	})
	_ = s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    eventTypeDeviceLocked,
		PartitionKey: device.DeviceID.String(),
		Payload:      payload,
		OccurredAt:   now,
	})
}
