package domain

import (
	"time"

	"github.com/google/uuid"
)

// Staff roles recognized across the platform. The terminal service only
// authenticates them; authorization is decided by the consuming flows.
const (
	RoleAdmin    = "ADMIN"
	RoleOwner    = "OWNER"
	RoleSeller   = "SELLER"
	RoleSupplier = "SUPPLIER"
	RoleCustomer = "CUSTOMER"
)

// Device is a registered POS terminal scoped to one business and branch.
// It is the unit of trust for PIN login: failed attempts and lockout live
// here, not on the account, because the shared terminal is the attack surface.
type Device struct {
	DeviceID   uuid.UUID
	BusinessID uuid.UUID
	BranchID   uuid.UUID
	Label      string
	Attempts   int
	IsDisabled bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Account is a staff identity able to log in on trusted terminals.
// PIN uniqueness within a business+branch pair is a provisioning-time
// precondition; this service only reads accounts.
type Account struct {
	AccountID  uuid.UUID
	Name       string
	Role       string
	PinHash    string
	BusinessID uuid.UUID
	BranchID   *uuid.UUID
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AttendanceEntry is a per-account, per-branch time-clock interval.
// At most one entry per (account, branch) may have a nil ClockOut.
type AttendanceEntry struct {
	EntryID   uuid.UUID
	AccountID uuid.UUID
	BranchID  uuid.UUID
	ClockIn   time.Time
	ClockOut  *time.Time
}

// Shift is a branch-scoped work period owned by the sales flow.
// This service only closes open shifts in bulk when a terminal logs out.
type Shift struct {
	ShiftID  uuid.UUID
	BranchID uuid.UUID
	OpenedBy uuid.UUID
	OpenedAt time.Time
	ClosedAt *time.Time
}
