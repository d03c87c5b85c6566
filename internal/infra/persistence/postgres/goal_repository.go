package postgres

import (
	"context"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// goalRepository implements the repository.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository is the constructor for goalRepository.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// FindActiveByUser retrieves a user's active goals, oldest first.
func (repo *goalRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []*model.GoalModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&goalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active goals")
	}

	goals := make([]*entity.Goal, 0, len(goalModels))
	for _, goalM := range goalModels {
		goals = append(goals, &entity.Goal{
			ID:            goalM.ID,
			UserID:        goalM.UserID,
			Name:          goalM.Name,
			TargetAmount:  goalM.TargetAmount,
			CurrentAmount: goalM.CurrentAmount,
			IsActive:      goalM.IsActive,
			CreatedAt:     goalM.CreatedAt,
			UpdatedAt:     goalM.UpdatedAt,
		})
	}

	return goals, nil
}
