package repository

import (
	"context"

	"gorm.io/gorm"

	"taskchat-api/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (repository UserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (entity.User, error) {
	user := &entity.User{}
	err := db.WithContext(ctx).Where("email = ?", email).First(user).Error
	return *user, err
}
