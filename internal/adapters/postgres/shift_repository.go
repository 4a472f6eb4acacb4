package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukahub/pos-terminal-service/internal/domain"
)

type shiftRepository struct {
	db *gorm.DB
}

func (r *shiftRepository) CloseAllOpenByBranch(ctx context.Context, branchID uuid.UUID, closedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&shiftModel{}).
		Where("branch_id = ?", branchID).
		Where("closed_at IS NULL").
		Update("closed_at", closedAt)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *shiftRepository) ListOpenByBranch(ctx context.Context, branchID uuid.UUID) ([]domain.Shift, error) {
	var rows []shiftModel
	query := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Where("closed_at IS NULL").
		Order("opened_at ASC")
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Shift, 0, len(rows))
	for _, item := range rows {
		result = append(result, toDomainShift(item))
	}
	return result, nil
}
