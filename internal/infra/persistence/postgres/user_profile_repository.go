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

// userProfileRepository implements the repository.UserProfileRepository interface.
type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &userProfileRepository{
		db: db,
	}
}

// FindByUserID retrieves a user's dashboard profile.
func (repo *userProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return &entity.UserProfile{
		UserID:      profileM.UserID,
		DisplayName: profileM.DisplayName,
		Currency:    profileM.Currency,
		FCMToken:    profileM.FCMToken,
		CreatedAt:   profileM.CreatedAt,
		UpdatedAt:   profileM.UpdatedAt,
	}, nil
}
