package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukahub/pos-terminal-service/internal/domain"
)

type deviceRepository struct {
	db *gorm.DB
}

func (r *deviceRepository) GetByID(ctx context.Context, deviceID uuid.UUID) (domain.Device, error) {
	var rec posDeviceModel
	if err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Device{}, domain.ErrNotFound
		}
		return domain.Device{}, err
	}
	return toDomainDevice(rec), nil
}

// RecordFailedAttempt bumps the counter and flips the disable flag in one
// statement. Two terminals racing on the same device both land on the same
// row lock, so the threshold cannot be crossed without disabling.
func (r *deviceRepository) RecordFailedAttempt(ctx context.Context, deviceID uuid.UUID, threshold int, at time.Time) (domain.Device, error) {
	var rec posDeviceModel
	res := r.db.WithContext(ctx).Raw(`
		UPDATE pos_devices
		SET attempts = attempts + 1,
		    is_disabled = is_disabled OR attempts + 1 >= ?,
		    updated_at = ?
		WHERE device_id = ?
		RETURNING device_id, business_id, branch_id, label, attempts, is_disabled, created_at, updated_at`,
		threshold, at, deviceID,
	).Scan(&rec)
	if res.Error != nil {
		return domain.Device{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Device{}, domain.ErrNotFound
	}
	return toDomainDevice(rec), nil
}

func (r *deviceRepository) ResetAttempts(ctx context.Context, deviceID uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&posDeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"attempts":   0,
			"updated_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
