package domain

import "testing"

func TestValidatePin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		pin       string
		wantError bool
	}{
		{name: "valid", pin: "1234", wantError: false},
		{name: "leading zeros", pin: "0042", wantError: false},
		{name: "too short", pin: "123", wantError: true},
		{name: "too long", pin: "12345", wantError: true},
		{name: "letters", pin: "12ab", wantError: true},
		{name: "empty", pin: "", wantError: true},
		{name: "unicode digits", pin: "１２３４", wantError: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePin(tc.pin)
			if tc.wantError && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantError && err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
		})
	}
}

func TestFailedPinMessagePluralization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		remaining int
		want      string
	}{
		{remaining: 2, want: "Invalid PIN. You have 2 attempts remaining."},
		{remaining: 1, want: "Invalid PIN. You have 1 attempt remaining."},
		{remaining: 0, want: "Invalid PIN. You have 0 attempts remaining."},
		{remaining: -1, want: "Invalid PIN. You have 0 attempts remaining."},
	}

	for _, tc := range cases {
		if got := FailedPinMessage(tc.remaining); got != tc.want {
			t.Fatalf("FailedPinMessage(%d) = %q, want %q", tc.remaining, got, tc.want)
		}
	}
}

func TestRemainingAttemptsNeverNegative(t *testing.T) {
	t.Parallel()

	if got := RemainingAttempts(3, 5); got != 0 {
		t.Fatalf("expected 0 remaining past threshold, got %d", got)
	}
	if got := RemainingAttempts(3, 1); got != 2 {
		t.Fatalf("expected 2 remaining, got %d", got)
	}
}
