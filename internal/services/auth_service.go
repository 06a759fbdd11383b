package services

import (
	"context"
	"errors"
	"strings"

	"gymdesk-backend/internal/database"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/utils"
	"gymdesk-backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// EnsureAdminUser creates the configured admin account on first start. An
// existing account keeps its current password.
func EnsureAdminUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	var existing models.User
	err := database.DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return translateDBError(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}
	if err := database.DB.WithContext(ctx).Create(user).Error; err != nil {
		return translateDBError(err)
	}

	logger.L().Info("Admin account created", zap.String("username", username))
	return nil
}

func LoginAdmin(ctx context.Context, username, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, translateDBError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
