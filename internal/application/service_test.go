package application_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dukahub/pos-terminal-service/internal/application"
	"github.com/dukahub/pos-terminal-service/internal/domain"
	"github.com/dukahub/pos-terminal-service/internal/ports"
)

func TestLoginSuccessOpensAttendanceEntry(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	account := f.seedAccount(device, "1234")

	res, err := f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: device.DeviceID.String(),
		IPAddress:  "203.0.113.9",
		UserAgent:  "till-agent/1.0",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Redirect != "/pos/dashboard" {
		t.Fatalf("expected dashboard redirect, got %q", res.Redirect)
	}
	if !res.PosLogin || res.DeviceUUID != device.DeviceID {
		t.Fatalf("expected pos session flags for device %s", device.DeviceID)
	}
	if res.Token == "" || res.CSRFToken == "" {
		t.Fatalf("expected signed token and csrf token")
	}

	open := f.attendance.openEntries(account.AccountID, device.BranchID)
	if len(open) != 1 {
		t.Fatalf("expected exactly one open attendance entry, got %d", len(open))
	}

	session, err := f.sessions.Get(ctx, res.SessionID)
	if err != nil || session == nil {
		t.Fatalf("expected stored terminal session, got %v (%v)", session, err)
	}
	if !session.PosLogin || session.DeviceID != device.DeviceID {
		t.Fatalf("session missing pos-mode device state")
	}
	if session.IPAddress != "203.0.113.9" || session.UserAgent != "till-agent/1.0" {
		t.Fatalf("session missing request metadata, got ip=%q agent=%q", session.IPAddress, session.UserAgent)
	}
}

func TestLoginTwiceIsIdempotentForAttendance(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	account := f.seedAccount(device, "1234")

	for i := 0; i < 2; i++ {
		if _, err := f.service.Login(ctx, application.LoginRequest{
			PinCode:    "1234",
			DeviceUUID: device.DeviceID.String(),
		}); err != nil {
			t.Fatalf("login %d failed: %v", i+1, err)
		}
	}

	if n := len(f.attendance.openEntries(account.AccountID, device.BranchID)); n != 1 {
		t.Fatalf("expected one open entry after repeated logins, got %d", n)
	}
	if n := f.outbox.countByType("pos.clocked_in"); n != 1 {
		t.Fatalf("expected one clock-in event, got %d", n)
	}
}

func TestWrongPinCountsDownAttempts(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	f.seedAccount(device, "1234")

	wantMessages := []string{
		"Invalid PIN. You have 2 attempts remaining.",
		"Invalid PIN. You have 1 attempt remaining.",
	}
	for i, want := range wantMessages {
		_, err := f.service.Login(ctx, application.LoginRequest{
			PinCode:    "9999",
			DeviceUUID: device.DeviceID.String(),
		})
		if !errors.Is(err, domain.ErrCredentialMismatch) {
			t.Fatalf("attempt %d: expected credential mismatch, got %v", i+1, err)
		}
		if err.Error() != want {
			t.Fatalf("attempt %d: message %q, want %q", i+1, err.Error(), want)
		}
	}

	got := f.devices.get(device.DeviceID)
	if got.Attempts != 2 || got.IsDisabled {
		t.Fatalf("expected attempts=2 enabled device, got attempts=%d disabled=%v", got.Attempts, got.IsDisabled)
	}
}

func TestThirdWrongPinLocksDevicePermanently(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	f.seedAccount(device, "1234")

	var lastErr error
	for i := 0; i < 3; i++ {
		_, lastErr = f.service.Login(ctx, application.LoginRequest{
			PinCode:    "9999",
			DeviceUUID: device.DeviceID.String(),
		})
	}
	if lastErr == nil || lastErr.Error() != domain.DeviceLockedOutMessage {
		t.Fatalf("expected lockout message on third failure, got %v", lastErr)
	}
	if got := f.devices.get(device.DeviceID); !got.IsDisabled || got.Attempts != 3 {
		t.Fatalf("expected disabled device with attempts=3, got %+v", got)
	}
	if n := f.outbox.countByType("pos.device_locked"); n != 1 {
		t.Fatalf("expected one device-locked event, got %d", n)
	}

	// Correct PIN no longer helps; the gate rejects before any matching.
	_, err := f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: device.DeviceID.String(),
	})
	if !errors.Is(err, domain.ErrDeviceLockedOut) {
		t.Fatalf("expected locked-out gate error, got %v", err)
	}
}

func TestSuccessfulMatchResetsAttempts(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(2, false)
	f.seedAccount(device, "1234")

	if _, err := f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: device.DeviceID.String(),
	}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got := f.devices.get(device.DeviceID); got.Attempts != 0 || got.IsDisabled {
		t.Fatalf("expected cleared attempts, got %+v", got)
	}
}

func TestMalformedPinRejectedBeforeLookup(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	f.seedAccount(device, "1234")

	for _, pin := range []string{"", "12", "12345", "12a4"} {
		_, err := f.service.Login(ctx, application.LoginRequest{
			PinCode:    pin,
			DeviceUUID: device.DeviceID.String(),
		})
		if !errors.Is(err, domain.ErrInvalidPinFormat) {
			t.Fatalf("pin %q: expected format error, got %v", pin, err)
		}
	}
	if got := f.devices.get(device.DeviceID); got.Attempts != 0 {
		t.Fatalf("format failures must not count as attempts, got %d", got.Attempts)
	}
	if f.accounts.listCalls != 0 {
		t.Fatalf("format failures must not trigger account lookup, got %d lookups", f.accounts.listCalls)
	}
}

func TestUnknownDeviceRejected(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: uuid.NewString(),
	})
	if !errors.Is(err, domain.ErrDeviceNotRegistered) {
		t.Fatalf("expected device-not-registered, got %v", err)
	}

	_, err = f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: "not-a-uuid",
	})
	if !errors.Is(err, domain.ErrDeviceNotRegistered) {
		t.Fatalf("expected device-not-registered for malformed uuid, got %v", err)
	}
}

func TestLogoutClosesEntryAndAllBranchShifts(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	account := f.seedAccount(device, "1234")
	other := f.seedAccount(device, "5678")

	f.shifts.seedOpen(device.BranchID, account.AccountID)
	f.shifts.seedOpen(device.BranchID, other.AccountID)

	loginRes, err := f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: device.DeviceID.String(),
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	logoutRes, err := f.service.Logout(ctx, loginRes.Token)
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if logoutRes.Redirect != "/pos" {
		t.Fatalf("expected entry redirect, got %q", logoutRes.Redirect)
	}
	if logoutRes.CSRFToken == "" || logoutRes.CSRFToken == loginRes.CSRFToken {
		t.Fatalf("expected rotated anti-forgery token")
	}
	if logoutRes.ShiftsClosed != 2 {
		t.Fatalf("expected both branch shifts closed, got %d", logoutRes.ShiftsClosed)
	}

	if n := len(f.attendance.openEntries(account.AccountID, device.BranchID)); n != 0 {
		t.Fatalf("expected closed attendance entry, %d still open", n)
	}
	if open, _ := f.shifts.ListOpenByBranch(ctx, device.BranchID); len(open) != 0 {
		t.Fatalf("expected no open shifts, got %d", len(open))
	}

	// Session is torn down only after the business-logic side effects.
	if session, _ := f.sessions.Get(ctx, loginRes.SessionID); session != nil {
		t.Fatalf("expected invalidated session")
	}
	if _, err := f.service.ValidateSession(ctx, loginRes.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after logout, got %v", err)
	}
	if _, err := f.service.Logout(ctx, loginRes.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized on repeated logout, got %v", err)
	}
}

func TestLogoutWithoutBranchSkipsMutations(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	f.shifts.seedOpen(device.BranchID, uuid.New())

	// Sessions for branchless accounts come from flows outside PIN login;
	// seed one directly.
	accountID := uuid.New()
	sessionID := uuid.New()
	now := time.Now().UTC()
	_ = f.sessions.Put(ctx, ports.TerminalSession{
		SessionID:  sessionID,
		AccountID:  accountID,
		Role:       domain.RoleOwner,
		DeviceID:   device.DeviceID,
		BusinessID: device.BusinessID,
		PosLogin:   true,
		CSRFToken:  "csrf",
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}, time.Hour)
	token, err := f.signer.Sign(ports.SessionClaims{
		AccountID:  accountID,
		Role:       domain.RoleOwner,
		DeviceID:   device.DeviceID,
		SessionID:  sessionID,
		BusinessID: device.BusinessID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("sign session token: %v", err)
	}

	res, err := f.service.Logout(ctx, token)
	if err != nil {
		t.Fatalf("branchless logout must not error: %v", err)
	}
	if res.ShiftsClosed != 0 {
		t.Fatalf("branchless logout must not close shifts, closed %d", res.ShiftsClosed)
	}
	if open, _ := f.shifts.ListOpenByBranch(ctx, device.BranchID); len(open) != 1 {
		t.Fatalf("expected untouched branch shift")
	}
	if f.attendance.closeCalls != 0 {
		t.Fatalf("branchless logout must not touch attendance")
	}
}

func TestValidateSessionRejectsDeactivatedAccount(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	account := f.seedAccount(device, "1234")

	res, err := f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: device.DeviceID.String(),
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := f.service.ValidateSession(ctx, res.Token); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}

	f.accounts.setActive(account.AccountID, false)
	if _, err := f.service.ValidateSession(ctx, res.Token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("deactivated account must lose its session, got %v", err)
	}
}

func TestOpenShiftsListsSessionBranch(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	account := f.seedAccount(device, "1234")
	other := f.seedAccount(device, "5678")

	f.shifts.seedOpen(device.BranchID, account.AccountID)
	f.shifts.seedOpen(device.BranchID, other.AccountID)
	f.shifts.seedOpen(uuid.New(), uuid.New())

	res, err := f.service.Login(ctx, application.LoginRequest{
		PinCode:    "1234",
		DeviceUUID: device.DeviceID.String(),
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := f.service.ValidateSession(ctx, res.Token)
	if err != nil {
		t.Fatalf("validate session: %v", err)
	}

	open, err := f.service.OpenShifts(ctx, claims)
	if err != nil {
		t.Fatalf("open shifts failed: %v", err)
	}
	if open.BranchID != device.BranchID {
		t.Fatalf("expected branch %s, got %s", device.BranchID, open.BranchID)
	}
	if len(open.Shifts) != 2 {
		t.Fatalf("expected the branch's two open shifts, got %d", len(open.Shifts))
	}
	for _, shift := range open.Shifts {
		if shift.BranchID != device.BranchID {
			t.Fatalf("foreign branch shift leaked: %+v", shift)
		}
	}
}

func TestDeviceStatusReportsRemainingAttempts(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(2, false)

	status, err := f.service.DeviceStatus(ctx, device.DeviceID.String())
	if err != nil {
		t.Fatalf("device status failed: %v", err)
	}
	if status.Attempts != 2 || status.RemainingAttempts != 1 || status.IsDisabled {
		t.Fatalf("unexpected status %+v", status)
	}

	if _, err := f.service.DeviceStatus(ctx, uuid.NewString()); !errors.Is(err, domain.ErrDeviceNotRegistered) {
		t.Fatalf("expected device-not-registered, got %v", err)
	}
}

func TestConcurrentWrongPinsNeverUndercount(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	device := f.seedDevice(0, false)
	f.seedAccount(device, "1234")

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.service.Login(ctx, application.LoginRequest{
				PinCode:    "0000",
				DeviceUUID: device.DeviceID.String(),
			})
		}()
	}
	wg.Wait()

	if got := f.devices.get(device.DeviceID); got.Attempts != 3 || !got.IsDisabled {
		t.Fatalf("atomic increment expected attempts=3 disabled, got %+v", got)
	}
}

// --- fixture ---

type fixture struct {
	service    *application.Service
	devices    *fakeDevices
	accounts   *fakeAccounts
	attendance *fakeAttendance
	shifts     *fakeShifts
	outbox     *fakeOutbox
	sessions   *fakeSessions
	signer     *fakeSigner
}

func newFixture() *fixture {
	devices := &fakeDevices{byID: map[uuid.UUID]domain.Device{}}
	accounts := &fakeAccounts{}
	attendance := &fakeAttendance{}
	shifts := &fakeShifts{}
	outbox := &fakeOutbox{}
	sessions := &fakeSessions{byID: map[uuid.UUID]ports.TerminalSession{}}
	signer := &fakeSigner{tokens: map[string]ports.SessionClaims{}}

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			PinAttemptThreshold: 3,
			SessionTTL:          12 * time.Hour,
			TokenTTL:            12 * time.Hour,
			DashboardPath:       "/pos/dashboard",
			EntryPath:           "/pos",
			LoginPath:           "/pos/login",
		},
		Devices:    devices,
		Accounts:   accounts,
		Attendance: attendance,
		Shifts:     shifts,
		Outbox:     outbox,
		Sessions:   sessions,
		Hasher:     &fakeHasher{},
		Signer:     signer,
	})

	return &fixture{
		service:    svc,
		devices:    devices,
		accounts:   accounts,
		attendance: attendance,
		shifts:     shifts,
		outbox:     outbox,
		sessions:   sessions,
		signer:     signer,
	}
}

func (f *fixture) seedDevice(attempts int, disabled bool) domain.Device {
	device := domain.Device{
		DeviceID:   uuid.New(),
		BusinessID: uuid.New(),
		BranchID:   uuid.New(),
		Label:      "till-1",
		Attempts:   attempts,
		IsDisabled: disabled,
	}
	f.devices.mu.Lock()
	f.devices.byID[device.DeviceID] = device
	f.devices.mu.Unlock()
	return device
}

func (f *fixture) seedAccount(device domain.Device, pin string) domain.Account {
	branch := device.BranchID
	account := domain.Account{
		AccountID:  uuid.New(),
		Name:       "Seller " + pin,
		Role:       domain.RoleSeller,
		PinHash:    "h:" + pin,
		BusinessID: device.BusinessID,
		BranchID:   &branch,
		IsActive:   true,
	}
	f.accounts.mu.Lock()
	f.accounts.accounts = append(f.accounts.accounts, account)
	f.accounts.mu.Unlock()
	return account
}

// --- fakes ---

type fakeDevices struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Device
}

func (f *fakeDevices) get(deviceID uuid.UUID) domain.Device {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[deviceID]
}

func (f *fakeDevices) GetByID(_ context.Context, deviceID uuid.UUID) (domain.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	device, ok := f.byID[deviceID]
	if !ok {
		return domain.Device{}, domain.ErrNotFound
	}
	return device, nil
}

func (f *fakeDevices) RecordFailedAttempt(_ context.Context, deviceID uuid.UUID, threshold int, at time.Time) (domain.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	device, ok := f.byID[deviceID]
	if !ok {
		return domain.Device{}, domain.ErrNotFound
	}
	device.Attempts++
	if device.Attempts >= threshold {
		device.IsDisabled = true
	}
	device.UpdatedAt = at
	f.byID[deviceID] = device
	return device, nil
}

func (f *fakeDevices) ResetAttempts(_ context.Context, deviceID uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	device, ok := f.byID[deviceID]
	if !ok {
		return domain.ErrNotFound
	}
	device.Attempts = 0
	device.UpdatedAt = at
	f.byID[deviceID] = device
	return nil
}

type fakeAccounts struct {
	mu        sync.Mutex
	accounts  []domain.Account
	listCalls int
}

func (f *fakeAccounts) setActive(accountID uuid.UUID, active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.accounts {
		if f.accounts[i].AccountID == accountID {
			f.accounts[i].IsActive = active
		}
	}
}

func (f *fakeAccounts) GetByID(_ context.Context, accountID uuid.UUID) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.AccountID == accountID {
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrNotFound
}

func (f *fakeAccounts) ListActiveByBranch(_ context.Context, businessID, branchID uuid.UUID) ([]domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	var out []domain.Account
	for _, account := range f.accounts {
		if !account.IsActive || account.BusinessID != businessID {
			continue
		}
		if account.BranchID != nil && *account.BranchID == branchID {
			out = append(out, account)
		}
	}
	return out, nil
}

type fakeAttendance struct {
	mu         sync.Mutex
	entries    []domain.AttendanceEntry
	closeCalls int
}

func (f *fakeAttendance) openEntries(accountID, branchID uuid.UUID) []domain.AttendanceEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.AttendanceEntry
	for _, entry := range f.entries {
		if entry.AccountID == accountID && entry.BranchID == branchID && entry.ClockOut == nil {
			out = append(out, entry)
		}
	}
	return out
}

func (f *fakeAttendance) GetOpenEntry(_ context.Context, accountID, branchID uuid.UUID) (*domain.AttendanceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		entry := f.entries[i]
		if entry.AccountID == accountID && entry.BranchID == branchID && entry.ClockOut == nil {
			copied := entry
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendance) CreateOpenEntry(_ context.Context, accountID, branchID uuid.UUID, clockIn time.Time) (domain.AttendanceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, entry := range f.entries {
		if entry.AccountID == accountID && entry.BranchID == branchID && entry.ClockOut == nil {
			return domain.AttendanceEntry{}, domain.ErrConflict
		}
	}
	entry := domain.AttendanceEntry{
		EntryID:   uuid.New(),
		AccountID: accountID,
		BranchID:  branchID,
		ClockIn:   clockIn,
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeAttendance) CloseOpenEntry(_ context.Context, accountID, branchID uuid.UUID, clockOut time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	for i := range f.entries {
		if f.entries[i].AccountID == accountID && f.entries[i].BranchID == branchID && f.entries[i].ClockOut == nil {
			out := clockOut
			f.entries[i].ClockOut = &out
			return true, nil
		}
	}
	return false, nil
}

type fakeShifts struct {
	mu     sync.Mutex
	shifts []domain.Shift
}

func (f *fakeShifts) seedOpen(branchID, openedBy uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shifts = append(f.shifts, domain.Shift{
		ShiftID:  uuid.New(),
		BranchID: branchID,
		OpenedBy: openedBy,
		OpenedAt: time.Now().UTC(),
	})
}

func (f *fakeShifts) CloseAllOpenByBranch(_ context.Context, branchID uuid.UUID, closedAt time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var closed int64
	for i := range f.shifts {
		if f.shifts[i].BranchID == branchID && f.shifts[i].ClosedAt == nil {
			at := closedAt
			f.shifts[i].ClosedAt = &at
			closed++
		}
	}
	return closed, nil
}

func (f *fakeShifts) ListOpenByBranch(_ context.Context, branchID uuid.UUID) ([]domain.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Shift
	for _, shift := range f.shifts {
		if shift.BranchID == branchID && shift.ClosedAt == nil {
			out = append(out, shift)
		}
	}
	return out, nil
}

type fakeOutbox struct {
	mu     sync.Mutex
	events []ports.OutboxEvent
}

func (f *fakeOutbox) countByType(eventType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, event := range f.events {
		if event.EventType == eventType {
			n++
		}
	}
	return n
}

func (f *fakeOutbox) Enqueue(_ context.Context, event ports.OutboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutbox) ClaimUnpublished(context.Context, int, string, time.Time) ([]ports.OutboxRecord, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkPublished(context.Context, uuid.UUID, string, time.Time) error { return nil }
func (f *fakeOutbox) MarkFailed(context.Context, uuid.UUID, string, string, time.Time) error {
	return nil
}
func (f *fakeOutbox) MarkDeadLettered(context.Context, uuid.UUID, string, string, time.Time) error {
	return nil
}

type fakeSessions struct {
	mu   sync.Mutex
	byID map[uuid.UUID]ports.TerminalSession
}

func (f *fakeSessions) Put(_ context.Context, session ports.TerminalSession, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[session.SessionID] = session
	return nil
}

func (f *fakeSessions) Get(_ context.Context, sessionID uuid.UUID) (*ports.TerminalSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.byID[sessionID]
	if !ok {
		return nil, nil
	}
	copied := session
	return &copied, nil
}

func (f *fakeSessions) Delete(_ context.Context, sessionID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, sessionID)
	return nil
}

type fakeHasher struct{}

func (f *fakeHasher) Hash(pin string) (string, error) { return "h:" + pin, nil }

func (f *fakeHasher) Compare(hash, pin string) error {
	if hash != "h:"+pin {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	tokens map[string]ports.SessionClaims
}

func (f *fakeSigner) Sign(claims ports.SessionClaims) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token := fmt.Sprintf("tok-%s-%d", claims.SessionID, len(f.tokens))
	f.tokens[token] = claims
	return token, nil
}

func (f *fakeSigner) ParseAndValidate(token string) (ports.SessionClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claims, ok := f.tokens[token]
	if !ok {
		return ports.SessionClaims{}, errors.New("unknown token")
	}
	return claims, nil
}

func (f *fakeSigner) PublicJWKs() ([]map[string]any, error) { return nil, nil }
