package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukahub/pos-terminal-service/internal/domain"
)

// DeviceRepository owns mutable trust state for POS terminals.
// RecordFailedAttempt must be atomic: the increment and the disable decision
// happen in one statement so concurrent bad PINs cannot under-count.
type DeviceRepository interface {
	GetByID(ctx context.Context, deviceID uuid.UUID) (domain.Device, error)
	RecordFailedAttempt(ctx context.Context, deviceID uuid.UUID, threshold int, at time.Time) (domain.Device, error)
	ResetAttempts(ctx context.Context, deviceID uuid.UUID, at time.Time) error
}

// AccountRepository reads staff identities; provisioning flows own writes.
type AccountRepository interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (domain.Account, error)
	ListActiveByBranch(ctx context.Context, businessID, branchID uuid.UUID) ([]domain.Account, error)
}

// AttendanceRepository manages time-clock intervals.
// CreateOpenEntry relies on a partial unique index over open entries; a
// duplicate insert reports ErrConflict so callers can treat it as the
// already-clocked-in case.
type AttendanceRepository interface {
	GetOpenEntry(ctx context.Context, accountID, branchID uuid.UUID) (*domain.AttendanceEntry, error)
	CreateOpenEntry(ctx context.Context, accountID, branchID uuid.UUID, clockIn time.Time) (domain.AttendanceEntry, error)
	CloseOpenEntry(ctx context.Context, accountID, branchID uuid.UUID, clockOut time.Time) (bool, error)
}

// ShiftRepository bulk-closes a branch's open shifts on terminal logout.
// Shift creation belongs to the sales flow and has no contract here.
type ShiftRepository interface {
	CloseAllOpenByBranch(ctx context.Context, branchID uuid.UUID, closedAt time.Time) (int64, error)
	ListOpenByBranch(ctx context.Context, branchID uuid.UUID) ([]domain.Shift, error)
}

// OutboxEvent is the write-side event payload prior to storage.
// It is adapter-neutral to keep application code independent of broker specifics.
type OutboxEvent struct {
	EventID      uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	OccurredAt   time.Time
}

// OutboxRecord represents durable outbox state, including retry/error metadata.
type OutboxRecord struct {
	OutboxID       uuid.UUID
	EventType      string
	PartitionKey   string
	Payload        []byte
	RetryCount     int
	LastError      *string
	CreatedAt      time.Time
	PublishedAt    *time.Time
	LastErrorAt    *time.Time
	FirstSeenAt    time.Time
	ClaimToken     *string
	ClaimUntil     *time.Time
	DeadLetteredAt *time.Time
}

// OutboxRepository controls publish-retry workflow for domain events.
// This explicit contract enables transactional outbox patterns without leaking DB details.
type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
	ClaimUnpublished(ctx context.Context, limit int, claimToken string, claimUntil time.Time) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, outboxID uuid.UUID, claimToken string, at time.Time) error
	MarkFailed(ctx context.Context, outboxID uuid.UUID, claimToken, errMsg string, at time.Time) error
	MarkDeadLettered(ctx context.Context, outboxID uuid.UUID, claimToken, errMsg string, at time.Time) error
}
