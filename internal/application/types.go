package application

import (
	"time"

	"github.com/google/uuid"
)

type Config struct {
	PinAttemptThreshold int
	SessionTTL          time.Duration
	TokenTTL            time.Duration
	DashboardPath       string
	EntryPath           string
	LoginPath           string
}

type LoginRequest struct {
	PinCode    string `json:"pin_code"`
	DeviceUUID string `json:"device_uuid"`
	IPAddress  string `json:"ip_address"`
	UserAgent  string `json:"user_agent"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	SessionID  uuid.UUID `json:"session_id"`
	CSRFToken  string    `json:"csrf_token"`
	Redirect   string    `json:"redirect"`
	PosLogin   bool      `json:"pos_login"`
	DeviceUUID uuid.UUID `json:"device_uuid"`
	ExpiresIn  int64     `json:"expires_in"`
}

type LogoutResponse struct {
	Redirect     string `json:"redirect"`
	CSRFToken    string `json:"csrf_token"`
	ShiftsClosed int64  `json:"shifts_closed"`
}

type SessionDescriptor struct {
	SessionID   uuid.UUID  `json:"session_id"`
	AccountID   uuid.UUID  `json:"account_id"`
	AccountName string     `json:"account_name"`
	Role        string     `json:"role"`
	DeviceUUID  uuid.UUID  `json:"device_uuid"`
	BusinessID  uuid.UUID  `json:"business_id"`
	BranchID    *uuid.UUID `json:"branch_id,omitempty"`
	PosLogin    bool       `json:"pos_login"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
}

type ShiftDescriptor struct {
	ShiftID  uuid.UUID `json:"shift_id"`
	BranchID uuid.UUID `json:"branch_id"`
	OpenedBy uuid.UUID `json:"opened_by"`
	OpenedAt time.Time `json:"opened_at"`
}

type OpenShiftsResponse struct {
	BranchID uuid.UUID         `json:"branch_id"`
	Shifts   []ShiftDescriptor `json:"shifts"`
}

type DeviceStatusResponse struct {
	DeviceUUID        uuid.UUID `json:"device_uuid"`
	BusinessID        uuid.UUID `json:"business_id"`
	BranchID          uuid.UUID `json:"branch_id"`
	Label             string    `json:"label"`
	Attempts          int       `json:"attempts"`
	RemainingAttempts int       `json:"remaining_attempts"`
	IsDisabled        bool      `json:"is_disabled"`
}
