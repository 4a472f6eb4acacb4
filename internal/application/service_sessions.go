package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dukahub/pos-terminal-service/internal/domain"
	"github.com/dukahub/pos-terminal-service/internal/ports"
)

// ValidateSession verifies token integrity and that the POS session is still
// live. The session record is re-checked on every call so an invalidated
// terminal loses access immediately, not at token expiry.
func (s *Service) ValidateSession(ctx context.Context, token string) (ports.SessionClaims, error) {
	claims, err := s.signer.ParseAndValidate(token)
	if err != nil {
		return ports.SessionClaims{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return ports.SessionClaims{}, err
	}
	if session == nil || !session.PosLogin {
		return ports.SessionClaims{}, domain.ErrUnauthorized
	}
	if session.AccountID != claims.AccountID || session.DeviceID != claims.DeviceID {
		return ports.SessionClaims{}, domain.ErrUnauthorized
	}
	if session.ExpiresAt.Before(s.nowFn()) {
		return ports.SessionClaims{}, domain.ErrSessionExpired
	}

	// Deactivated staff lose live sessions immediately, not at expiry.
	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ports.SessionClaims{}, domain.ErrUnauthorized
		}
		return ports.SessionClaims{}, err
	}
	if !account.IsActive {
		return ports.SessionClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

// SessionInfo returns the live session descriptor for the caller's token.
func (s *Service) SessionInfo(ctx context.Context, token string) (SessionDescriptor, error) {
	claims, err := s.ValidateSession(ctx, token)
	if err != nil {
		return SessionDescriptor{}, err
	}
	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return SessionDescriptor{}, err
	}
	if session == nil {
		return SessionDescriptor{}, domain.ErrUnauthorized
	}
	return SessionDescriptor{
		SessionID:   session.SessionID,
		AccountID:   session.AccountID,
		AccountName: session.AccountName,
		Role:        session.Role,
		DeviceUUID:  session.DeviceID,
		BusinessID:  session.BusinessID,
		BranchID:    session.BranchID,
		PosLogin:    session.PosLogin,
		CreatedAt:   session.CreatedAt,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// OpenShifts lists the open shifts of the caller's device branch so the
// terminal can show what a logout would close.
func (s *Service) OpenShifts(ctx context.Context, claims ports.SessionClaims) (OpenShiftsResponse, error) {
	device, err := s.devices.GetByID(ctx, claims.DeviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return OpenShiftsResponse{}, domain.ErrDeviceNotRegistered
		}
		return OpenShiftsResponse{}, err
	}

	shifts, err := s.shifts.ListOpenByBranch(ctx, device.BranchID)
	if err != nil {
		return OpenShiftsResponse{}, err
	}

	out := OpenShiftsResponse{
		BranchID: device.BranchID,
		Shifts:   make([]ShiftDescriptor, 0, len(shifts)),
	}
	for _, shift := range shifts {
		out.Shifts = append(out.Shifts, ShiftDescriptor{
			ShiftID:  shift.ShiftID,
			BranchID: shift.BranchID,
			OpenedBy: shift.OpenedBy,
			OpenedAt: shift.OpenedAt,
		})
	}
	return out, nil
}

// DeviceStatus reports registration and lockout state for one terminal.
// Admin dashboards poll this to surface which tills need a reset.
func (s *Service) DeviceStatus(ctx context.Context, rawUUID string) (DeviceStatusResponse, error) {
	deviceID, err := uuid.Parse(strings.TrimSpace(rawUUID))
	if err != nil {
		return DeviceStatusResponse{}, domain.ErrDeviceNotRegistered
	}
	device, err := s.devices.GetByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return DeviceStatusResponse{}, domain.ErrDeviceNotRegistered
		}
		return DeviceStatusResponse{}, err
	}
	return DeviceStatusResponse{
		DeviceUUID:        device.DeviceID,
		BusinessID:        device.BusinessID,
		BranchID:          device.BranchID,
		Label:             device.Label,
		Attempts:          device.Attempts,
		RemainingAttempts: domain.RemainingAttempts(s.cfg.PinAttemptThreshold, device.Attempts),
		IsDisabled:        device.IsDisabled,
	}, nil
}
