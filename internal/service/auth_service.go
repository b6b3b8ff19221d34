package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/config"
	"github.com/Employeest/employeest-be/internal/pkg/crypto"
	"github.com/Employeest/employeest-be/internal/pkg/jwt"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.ProfileResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(tokenKey string) error
	Profile(userID int64) (*dto.ProfileResponse, error)
	UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.AuthTokenRepository
	logger    *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.AuthTokenRepository, logger *zap.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.ProfileResponse, error) {
	if req.Password != req.Password2 {
		return nil, responses.New(responses.CodeBadRequest, "Password fields didn't match.")
	}

	taken, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, responses.New(responses.CodeBadRequest, "A user with that username already exists.")
	}

	taken, err = s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, responses.New(responses.CodeBadRequest, "A user with that email address already exists.")
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to hash password", err)
	}

	user := &model.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashed,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return toProfileResponse(user), nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, responses.ErrInvalidCredentials
	}
	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, responses.ErrInvalidCredentials
	}

	expire := config.GlobalConfig.Auth.JWT.AccessTokenExpire

	key, err := crypto.RandomKey(20)
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to generate token key", err)
	}
	authToken := &model.AuthToken{
		Key:       key,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(expire) * time.Second),
	}
	if err := s.tokenRepo.Create(authToken); err != nil {
		return nil, err
	}

	signed, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Role, user.IsStaff, key)
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to sign token", err)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		s.logger.Warn("failed to record last login", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	s.logger.Info("user logged in", zap.Int64("user_id", user.ID))

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresIn: expire,
		User:      dto.NewUserResponse(user),
	}, nil
}

// Logout deletes the token's backing row so the presented credential can never
// authenticate again.
func (s *authService) Logout(tokenKey string) error {
	return s.tokenRepo.DeleteByKey(tokenKey)
}

func (s *authService) Profile(userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user), nil
}

func (s *authService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, responses.New(responses.CodeBadRequest, "A user with that email address already exists.")
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return toProfileResponse(user), nil
}

func toProfileResponse(user *model.User) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsStaff:     user.IsStaff,
	}
	if user.LastLoginAt != nil {
		resp.LastLoginAt = user.LastLoginAt.Format(time.RFC3339)
	}
	return resp
}
