package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dukahub/pos-terminal-service/internal/domain"
)

func toDomainDevice(row posDeviceModel) domain.Device {
	return domain.Device{
		DeviceID:   row.DeviceID,
		BusinessID: row.BusinessID,
		BranchID:   row.BranchID,
		Label:      row.Label,
		Attempts:   row.Attempts,
		IsDisabled: row.IsDisabled,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func toDomainAccount(row accountModel) domain.Account {
	return domain.Account{
		AccountID:  row.AccountID,
		Name:       row.Name,
		Role:       row.Role,
		PinHash:    row.PinHash,
		BusinessID: row.BusinessID,
		BranchID:   row.BranchID,
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func toDomainAttendanceEntry(row attendanceEntryModel) domain.AttendanceEntry {
	return domain.AttendanceEntry{
		EntryID:   row.EntryID,
		AccountID: row.AccountID,
		BranchID:  row.BranchID,
		ClockIn:   row.ClockIn,
		ClockOut:  row.ClockOut,
	}
}

func toDomainShift(row shiftModel) domain.Shift {
	return domain.Shift{
		ShiftID:  row.ShiftID,
		BranchID: row.BranchID,
		OpenedBy: row.OpenedBy,
		OpenedAt: row.OpenedAt,
		ClosedAt: row.ClosedAt,
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
