package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Search(keyword string, offset, limit int) ([]*model.User, int64, error)
	Update(user *model.User) error
	UpdateLastLogin(id int64, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create user", err)
	}
	return nil
}

func (r *userRepository) FindByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query user", err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query user", err)
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, responses.Wrap(responses.CodeInternalError, "failed to query user", err)
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, responses.Wrap(responses.CodeInternalError, "failed to query user", err)
	}
	return count > 0, nil
}

// Search matches keyword against username, email, first and last name.
func (r *userRepository) Search(keyword string, offset, limit int) ([]*model.User, int64, error) {
	query := r.db.Model(&model.User{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where(
			"username LIKE ? OR email LIKE ? OR first_name LIKE ? OR last_name LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to count users", err)
	}

	var users []*model.User
	err := query.Order("username ASC").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to query users", err)
	}
	return users, total, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update user", err)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(id int64, at time.Time) error {
	err := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("last_login_at", at).Error
	if err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update last login", err)
	}
	return nil
}
