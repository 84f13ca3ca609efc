package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"veoprompt-backend/internal/models"
	"veoprompt-backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const userCacheTTL = time.Hour

// UserService is the role store: lookup, listing, role changes, confirmation
// and deletion. Lookups go through a redis cache when one is configured.
type UserService struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

func NewUserService(db *gorm.DB, rdb *redis.Client) *UserService {
	return &UserService{DB: db, Redis: rdb, Ctx: context.Background()}
}

func userCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func (s *UserService) FindByID(userID uint) (models.User, error) {
	cacheKey := userCacheKey(userID)
	if s.Redis != nil {
		val, err := s.Redis.Get(s.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(user); err == nil {
			s.Redis.Set(s.Ctx, cacheKey, data, userCacheTTL)
		}
	}
	return user, nil
}

// List retrieves a paginated list of users.
func (s *UserService) List(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	offset := (page - 1) * limit

	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Order("created_at asc").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update applies selective field updates with optimistic locking. Password
// values are hashed before they are written.
func (s *UserService) Update(id uint, updates map[string]interface{}, operator string) (*models.User, error) {
	tx := s.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	currentVersion := user.Version
	updates["version"] = currentVersion + 1

	result := tx.Model(&user).Where("version = ?", currentVersion).Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrOptimisticLock
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.invalidate(id)

	logger.Log.Info("user updated",
		zap.Uint("user_id", id),
		zap.String("operator", operator))

	s.DB.First(&user, id)
	return &user, nil
}

// SetRole changes a user's role.
func (s *UserService) SetRole(id uint, role, operator string) (*models.User, error) {
	if role != models.RoleFree && role != models.RolePaid && role != models.RoleAdmin {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	return s.Update(id, map[string]interface{}{"role": role}, operator)
}

// Confirm marks an account as confirmed so it can log in.
func (s *UserService) Confirm(id uint, operator string) (*models.User, error) {
	return s.Update(id, map[string]interface{}{"confirmed": true}, operator)
}

// Delete removes a user account.
func (s *UserService) Delete(id uint) error {
	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	s.invalidate(id)
	return nil
}

func (s *UserService) invalidate(id uint) {
	if s.Redis != nil {
		s.Redis.Del(s.Ctx, userCacheKey(id))
	}
}
