package repository

import (
	"context"
	"errors"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/pkg/sqlite"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	*sqlite.DB
}

func NewUserRepository(db *sqlite.DB) *UserRepository {
	return &UserRepository{
		db,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var entity UserEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserModel(&entity), nil
}

// GetByCredentials is the username+password exact-match lookup.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	var entity UserEntity
	err := r.Read(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserModel(&entity), nil
}

// GetByPIN is the PIN exact-match lookup.
func (r *UserRepository) GetByPIN(ctx context.Context, pin string) (*model.User, error) {
	var entity UserEntity
	err := r.Read(ctx).Where("pin = ?", pin).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserModel(&entity), nil
}

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.Read(ctx).Model(&UserEntity{}).
		Where("username = ?", username).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(ctx context.Context, username, password, pin string) error {
	entity := &UserEntity{
		Username: username,
		Password: password,
		PIN:      optional(pin),
	}
	return r.Write(ctx).Create(entity).Error
}
