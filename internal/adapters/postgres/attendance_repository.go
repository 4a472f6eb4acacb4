package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukahub/pos-terminal-service/internal/domain"
)

type attendanceRepository struct {
	db *gorm.DB
}

func (r *attendanceRepository) GetOpenEntry(ctx context.Context, accountID, branchID uuid.UUID) (*domain.AttendanceEntry, error) {
	var rec attendanceEntryModel
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("branch_id = ?", branchID).
		Where("clock_out IS NULL").
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entry := toDomainAttendanceEntry(rec)
	return &entry, nil
}

// CreateOpenEntry reports ErrConflict when the partial unique index over open
// entries rejects the insert, which callers treat as already clocked in.
func (r *attendanceRepository) CreateOpenEntry(ctx context.Context, accountID, branchID uuid.UUID, clockIn time.Time) (domain.AttendanceEntry, error) {
	rec := attendanceEntryModel{
		AccountID: accountID,
		BranchID:  branchID,
		ClockIn:   clockIn,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.AttendanceEntry{}, domain.ErrConflict
		}
		return domain.AttendanceEntry{}, err
	}
	return toDomainAttendanceEntry(rec), nil
}

func (r *attendanceRepository) CloseOpenEntry(ctx context.Context, accountID, branchID uuid.UUID, clockOut time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&attendanceEntryModel{}).
		Where("account_id = ?", accountID).
		Where("branch_id = ?", branchID).
		Where("clock_out IS NULL").
		Update("clock_out", clockOut)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
