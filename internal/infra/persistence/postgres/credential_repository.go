package postgres

import (
	"context"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// FindByUserAndProvider retrieves the credential for one connection.
func (repo *credentialRepository) FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.ProviderCredential, error) {
	var credM model.ProviderCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return toCredentialDomain(&credM), nil
}

// FindByUser retrieves all of a user's provider credentials.
func (repo *credentialRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProviderCredential, error) {
	var credentialModels []*model.ProviderCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("provider ASC").
		Find(&credentialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find credentials by user")
	}

	credentials := make([]*entity.ProviderCredential, 0, len(credentialModels))
	for _, credM := range credentialModels {
		credentials = append(credentials, toCredentialDomain(credM))
	}

	return credentials, nil
}

// Save inserts the credential or replaces the existing row for the same
// (user, provider) pair. Concurrent refreshes are last-write-wins.
func (repo *credentialRepository) Save(ctx context.Context, cred *entity.ProviderCredential) error {
	credM := fromCredentialDomain(cred)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token", "refresh_token", "expires_at", "updated_at",
			}),
		}).
		Create(credM).Error; err != nil {
		return errors.Wrap(err, "failed to save credential")
	}

	cred.ID = credM.ID

	return nil
}

// Delete discards the credential for one connection.
func (repo *credentialRepository) Delete(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Delete(&model.ProviderCredentialModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete credential")
	}

	return nil
}

func toCredentialDomain(credM *model.ProviderCredentialModel) *entity.ProviderCredential {
	return &entity.ProviderCredential{
		ID:           credM.ID,
		UserID:       credM.UserID,
		Provider:     entity.ProviderType(credM.Provider),
		AccessToken:  credM.AccessToken,
		RefreshToken: credM.RefreshToken,
		ExpiresAt:    credM.ExpiresAt,
		CreatedAt:    credM.CreatedAt,
		UpdatedAt:    credM.UpdatedAt,
	}
}

func fromCredentialDomain(cred *entity.ProviderCredential) *model.ProviderCredentialModel {
	return &model.ProviderCredentialModel{
		ID:           cred.ID,
		UserID:       cred.UserID,
		Provider:     string(cred.Provider),
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		ExpiresAt:    cred.ExpiresAt,
		CreatedAt:    cred.CreatedAt,
		UpdatedAt:    cred.UpdatedAt,
	}
}
