package services

import (
	"errors"
	"time"

	"veoprompt-backend/internal/models"
	"veoprompt-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	sessionTokenTTL  = 24 * time.Hour
	rememberTokenTTL = 72 * time.Hour
)

// AuthService handles registration, login and logout. New accounts start as
// unconfirmed free users; an admin must confirm them before login succeeds.
type AuthService struct {
	DB        *gorm.DB
	Denylist  *DenylistService
	JWTSecret string
}

func NewAuthService(db *gorm.DB, denylist *DenylistService, jwtSecret string) *AuthService {
	return &AuthService{DB: db, Denylist: denylist, JWTSecret: jwtSecret}
}

func (s *AuthService) Register(email, password string) (*models.User, error) {
	var existing models.User
	result := s.DB.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleFree,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and confirmation state, then issues a token.
// Remember controls the token lifetime: a remembered session outlives a
// browser restart, a plain one lasts a day.
func (s *AuthService) Login(email, password string, remember bool) (string, *models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.Confirmed {
		return "", nil, ErrNotConfirmed
	}

	ttl := sessionTokenTTL
	if remember {
		ttl = rememberTokenTTL
	}
	token, err := utils.GenerateToken(s.JWTSecret, user.ID, user.Role, ttl)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Logout revokes the token for the remainder of its lifetime.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := utils.ValidateToken(s.JWTSecret, tokenString)
	if err != nil {
		// Already invalid, nothing to revoke.
		return nil
	}

	ttl := rememberTokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if remaining := time.Until(exp.Time); remaining > 0 {
			ttl = remaining
		}
	}
	return s.Denylist.Add(tokenString, ttl)
}

// SeedAdmin ensures the configured admin account exists and is confirmed.
// Called once on startup with an explicit handle rather than living as a
// process-wide implicit singleton.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var admin models.User
	err := db.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Email:     email,
		Password:  string(hashedPassword),
		Role:      models.RoleAdmin,
		Confirmed: true,
	}
	return db.Create(&admin).Error
}
