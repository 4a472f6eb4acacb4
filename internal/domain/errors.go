package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrDeviceNotRegistered is returned for login attempts from terminals
	// that were never provisioned for any branch.
	ErrDeviceNotRegistered = errors.New("device not registered")
	// ErrDeviceLockedOut signals a terminal disabled after repeated failed PIN attempts.
	// Only an administrator can re-enable the device; there is no automatic reset.
	ErrDeviceLockedOut = errors.New("device locked out")
	// ErrInvalidPinFormat rejects malformed PIN input before any account lookup.
	ErrInvalidPinFormat = errors.New("invalid pin format")
	// ErrCredentialMismatch hides which account (if any) the PIN was close to.
	// The device-scoped attempt counter is the only failure signal exposed.
	ErrCredentialMismatch = errors.New("credential mismatch")
	ErrSessionExpired     = errors.New("session expired")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
)

// PinRejectedError carries the exact user-facing message for a failed PIN
// attempt. The login surface flashes this message verbatim, so it travels
// with the error value instead of being recomputed at the transport layer.
type PinRejectedError struct {
	Message string
}

func (e *PinRejectedError) Error() string { return e.Message }

func (e *PinRejectedError) Unwrap() error { return ErrCredentialMismatch }
