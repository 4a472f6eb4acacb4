package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukahub/pos-terminal-service/internal/domain"
)

type accountRepository struct {
	db *gorm.DB
}

func (r *accountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (domain.Account, error) {
	var rec accountModel
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Account{}, domain.ErrNotFound
		}
		return domain.Account{}, err
	}
	return toDomainAccount(rec), nil
}

func (r *accountRepository) ListActiveByBranch(ctx context.Context, businessID, branchID uuid.UUID) ([]domain.Account, error) {
	var rows []accountModel
	query := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Where("branch_id = ?", branchID).
		Where("is_active = TRUE").
		Order("created_at ASC")
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Account, 0, len(rows))
	for _, item := range rows {
		result = append(result, toDomainAccount(item))
	}
	return result, nil
}
