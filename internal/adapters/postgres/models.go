package postgres

import (
	"time"

	"github.com/google/uuid"
)

type posDeviceModel struct {
	DeviceID   uuid.UUID `gorm:"column:device_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BusinessID uuid.UUID `gorm:"column:business_id"`
	BranchID   uuid.UUID `gorm:"column:branch_id"`
	Label      string    `gorm:"column:label"`
	Attempts   int       `gorm:"column:attempts"`
	IsDisabled bool      `gorm:"column:is_disabled"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (posDeviceModel) TableName() string { return "pos_devices" }

type accountModel struct {
	AccountID  uuid.UUID  `gorm:"column:account_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string     `gorm:"column:name"`
	Role       string     `gorm:"column:role"`
	PinHash    string     `gorm:"column:pin_hash"`
	BusinessID uuid.UUID  `gorm:"column:business_id"`
	BranchID   *uuid.UUID `gorm:"column:branch_id"`
	IsActive   bool       `gorm:"column:is_active"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (accountModel) TableName() string { return "accounts" }

type attendanceEntryModel struct {
	EntryID   uuid.UUID  `gorm:"column:entry_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AccountID uuid.UUID  `gorm:"column:account_id"`
	BranchID  uuid.UUID  `gorm:"column:branch_id"`
	ClockIn   time.Time  `gorm:"column:clock_in"`
	ClockOut  *time.Time `gorm:"column:clock_out"`
}

func (attendanceEntryModel) TableName() string { return "attendance_entries" }

type shiftModel struct {
	ShiftID  uuid.UUID  `gorm:"column:shift_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BranchID uuid.UUID  `gorm:"column:branch_id"`
	OpenedBy uuid.UUID  `gorm:"column:opened_by"`
	OpenedAt time.Time  `gorm:"column:opened_at"`
	ClosedAt *time.Time `gorm:"column:closed_at"`
}

func (shiftModel) TableName() string { return "shifts" }

type posOutboxModel struct {
	OutboxID       uuid.UUID  `gorm:"column:outbox_id;type:uuid;primaryKey"`
	EventType      string     `gorm:"column:event_type"`
	PartitionKey   string     `gorm:"column:partition_key"`
	Payload        string     `gorm:"column:payload;type:jsonb"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	FirstSeenAt    time.Time  `gorm:"column:first_seen_at"`
	PublishedAt    *time.Time `gorm:"column:published_at"`
	RetryCount     int        `gorm:"column:retry_count"`
	LastError      *string    `gorm:"column:last_error"`
	LastErrorAt    *time.Time `gorm:"column:last_error_at"`
	ClaimToken     *string    `gorm:"column:claim_token"`
	ClaimUntil     *time.Time `gorm:"column:claim_until"`
	DeadLetteredAt *time.Time `gorm:"column:dead_lettered_at"`
}

func (posOutboxModel) TableName() string { return "pos_outbox" }
