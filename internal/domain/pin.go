package domain

import (
	"fmt"
)

// PinLength is fixed platform-wide; terminals render a 4-digit keypad.
const PinLength = 4

// DefaultPinAttemptThreshold is the number of failed attempts after which a
// device is disabled until an administrator intervenes.
const DefaultPinAttemptThreshold = 3

// DeviceLockedOutMessage is flashed on the login surface whenever a disabled
// device is used, regardless of PIN correctness.
const DeviceLockedOutMessage = "This device has been locked out. Contact your administrator to re-enable it."

// InvalidPinFormatMessage is flashed when the submitted PIN is not exactly
// four digits; no lookup or attempt counting happens in that case.
const InvalidPinFormatMessage = "PIN must be exactly 4 digits."

// DeviceNotRegisteredMessage is flashed when the terminal UUID is unknown.
const DeviceNotRegisteredMessage = "This device is not registered."

// ValidatePin enforces the 4-digit PIN format before any account lookup.
func ValidatePin(pin string) error {
	if len(pin) != PinLength {
		return fmt.Errorf("%w: pin must be exactly %d digits", ErrInvalidPinFormat, PinLength)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: pin must contain only digits", ErrInvalidPinFormat)
		}
	}
	return nil
}

// RemainingAttempts reports how many failed attempts the device has left
// before lockout, never going negative.
func RemainingAttempts(threshold, attempts int) int {
	remaining := threshold - attempts
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FailedPinMessage formats the flashed message for a wrong PIN on a device
// that is still enabled. One remaining attempt uses the singular "attempt";
// every other count, including zero, uses "attempts". The threshold-crossing
// failure never reaches here because the device disables in the same update
// and the lockout message wins.
func FailedPinMessage(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	noun := "attempts"
	if remaining == 1 {
		noun = "attempt"
	}
	return fmt.Sprintf("Invalid PIN. You have %d %s remaining.", remaining, noun)
}
