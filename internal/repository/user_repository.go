package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ByPavel22/ByPavel22Bot/internal/model"
)

// UserRepository handles reads and writes for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate finds a user by TelegramID or creates one with the given
// profile fields. The boolean reports whether a new row was created.
// Concurrent first contacts are resolved by the unique index on telegram_id:
// the losing insert refetches the winner's row instead of failing.
func (r *UserRepository) GetOrCreate(ctx context.Context, telegramID int64, username, firstName, lastName string) (*model.User, bool, error) {
	var user model.User
	db := r.db.WithContext(ctx)

	err := db.Where("telegram_id = ?", telegramID).First(&user).Error
	switch {
	case err == nil:
		return &user, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			TelegramID: telegramID,
			Username:   username,
			FirstName:  firstName,
			LastName:   lastName,
		}
		createErr := db.Create(&user).Error
		if createErr == nil {
			return &user, true, nil
		}
		if isConflict(createErr) {
			// Lost the race: another contact from the same identity won.
			if err := db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
				return nil, false, classify("refetch user", err)
			}
			return &user, false, nil
		}
		return nil, false, classify("create user", createErr)
	default:
		return nil, false, classify("find user", err)
	}
}

// FindByTelegramID returns the user for an external identity.
// Returns gorm.ErrRecordNotFound when the identity was never seen.
func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, classify("find user", err)
	}
	return &user, nil
}

// Count returns the total number of known users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return 0, classify("count users", err)
	}
	return total, nil
}

// ListRecent returns up to limit users ordered newest first.
func (r *UserRepository) ListRecent(ctx context.Context, limit int) ([]model.User, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	var users []model.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, classify("list recent users", err)
	}
	return users, nil
}
