package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type AuthTokenRepository interface {
	Create(token *model.AuthToken) error
	FindByKey(key string) (*model.AuthToken, error)
	DeleteByKey(key string) error
	DeleteExpired(before time.Time) (int64, error)
}

type authTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) AuthTokenRepository {
	return &authTokenRepository{db: db}
}

func (r *authTokenRepository) Create(token *model.AuthToken) error {
	if err := r.db.Create(token).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create auth token", err)
	}
	return nil
}

func (r *authTokenRepository) FindByKey(key string) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.db.Preload("User").Where("`key` = ?", key).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrInvalidToken
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query auth token", err)
	}
	return &token, nil
}

func (r *authTokenRepository) DeleteByKey(key string) error {
	if err := r.db.Where("`key` = ?", key).Delete(&model.AuthToken{}).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to delete auth token", err)
	}
	return nil
}

// DeleteExpired removes tokens whose expiry is before the given time and
// returns how many rows were purged.
func (r *authTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&model.AuthToken{})
	if result.Error != nil {
		return 0, responses.Wrap(responses.CodeInternalError, "failed to purge expired tokens", result.Error)
	}
	return result.RowsAffected, nil
}
