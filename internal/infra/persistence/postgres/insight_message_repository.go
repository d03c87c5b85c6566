package postgres

import (
	"context"
	"slices"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// insightMessageRepository implements the repository.InsightMessageRepository interface.
type insightMessageRepository struct {
	db *gorm.DB
}

// NewInsightMessageRepository is the constructor for insightMessageRepository.
func NewInsightMessageRepository(db *gorm.DB) repository.InsightMessageRepository {
	return &insightMessageRepository{
		db: db,
	}
}

// Create appends one message to the user's history.
func (repo *insightMessageRepository) Create(ctx context.Context, message *entity.InsightMessage) error {
	messageM := &model.InsightMessageModel{
		ID:      message.ID,
		UserID:  message.UserID,
		Role:    string(message.Role),
		Content: message.Content,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return errors.Wrap(err, "failed to create insight message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindRecentByUser returns the most recent messages in chronological order.
func (repo *insightMessageRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.InsightMessage, error) {
	var messageModels []*model.InsightMessageModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find insight messages")
	}

	// The query walks newest-first for the limit; callers want reading order.
	slices.Reverse(messageModels)

	messages := make([]*entity.InsightMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, &entity.InsightMessage{
			ID:        messageM.ID,
			UserID:    messageM.UserID,
			Role:      entity.InsightRole(messageM.Role),
			Content:   messageM.Content,
			CreatedAt: messageM.CreatedAt,
		})
	}

	return messages, nil
}
