// Package adapters provides the repository implementations for the auth
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"stockradar/internal/feature/auth/domain/entity"
	"stockradar/internal/feature/auth/usecase"
)

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a user repository backed by the given DB.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create persists a new user. The unique index on email rejects
// duplicates at the database level.
func (r *userGorm) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail returns the user with the given email address.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
