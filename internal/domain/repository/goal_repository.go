package repository

import (
	"context"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

// GoalRepository reads the user's goals for insight context. Goal CRUD lives
// in the dashboard service.
type GoalRepository interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)
}
