package repository

import (
	"context"

	"finsight/internal/domain/entity"
	"finsight/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile record.
var ErrProfileNotFound = errors.New("user profile not found")

// UserProfileRepository reads dashboard profiles. Profile writes belong to
// the account service; this service only consumes them.
type UserProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
}
