package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukahub/pos-terminal-service/internal/domain"
	"github.com/dukahub/pos-terminal-service/internal/ports"
)

// Logout closes the acting account's open time-clock entry, bulk-closes
// every open shift of the branch, and only then tears the session down.
// The ordering is mandatory: once the session record is gone the acting
// account can no longer be attributed to the clock-out or shift close.
func (s *Service) Logout(ctx context.Context, token string) (LogoutResponse, error) {
	claims, err := s.signer.ParseAndValidate(token)
	if err != nil {
		return LogoutResponse{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return LogoutResponse{}, fmt.Errorf("load terminal session: %w", err)
	}
	if session == nil || session.AccountID != claims.AccountID {
		return LogoutResponse{}, domain.ErrUnauthorized
	}

	now := s.nowFn()
	var shiftsClosed int64

	// An account without a branch gets no attendance or shift mutation at
	// all; that combination exists for terminals not tied to a physical
	// branch and is a silent no-op, not an error.
	if session.BranchID != nil {
		branchID := *session.BranchID

		closed, err := s.attendance.CloseOpenEntry(ctx, session.AccountID, branchID, now)
		if err != nil {
			return LogoutResponse{}, fmt.Errorf("close attendance entry: %w", err)
		}

		shiftsClosed, err = s.shifts.CloseAllOpenByBranch(ctx, branchID, now)
		if err != nil {
			return LogoutResponse{}, fmt.Errorf("close branch shifts: %w", err)
		}

		if closed || shiftsClosed > 0 {
			s.emitClockedOut(ctx, session, branchID, shiftsClosed, closed, now)
		}
	}

	if err := s.sessions.Delete(ctx, session.SessionID); err != nil {
		return LogoutResponse{}, fmt.Errorf("invalidate terminal session: %w", err)
	}

	slog.Default().InfoContext(ctx, "terminal logged out",
		"service", serviceName,
		"module", "application",
		"layer", "application",
		"operation", "pos_logout",
		"outcome", "success",
		"session_id", session.SessionID,
		"device_uuid", session.DeviceID,
		"shifts_closed", shiftsClosed,
	)

	return LogoutResponse{
		Redirect:     s.cfg.EntryPath,
		CSRFToken:    newCSRFToken(),
		ShiftsClosed: shiftsClosed,
	}, nil
}

func (s *Service) emitClockedOut(ctx context.Context, session *ports.TerminalSession, branchID uuid.UUID, shiftsClosed int64, entryClosed bool, now time.Time) {
	payload, _ := json.Marshal(map[string]any{
		"account_id":    session.AccountID,
		"branch_id":     branchID,
		"device_uuid":   session.DeviceID,
		"entry_closed":  entryClosed,
		"shifts_closed": shiftsClosed,
		"clock_out":     now,
	})
	_ = s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:      uuid.New(),
		EventType:    eventTypePosClockedOut,
		PartitionKey: branchID.String(),
		Payload:      payload,
		OccurredAt:   now,
	})
}
