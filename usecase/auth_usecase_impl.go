package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskchat-api/dto/req"
	"taskchat-api/dto/res"
	"taskchat-api/entity"
	"taskchat-api/repository"
	"taskchat-api/security"
	"taskchat-api/util"
)

type AuthUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.UserResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate register request: %v", err)
		return res.UserResponse{}, err
	}
	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.UserResponse{}, err
	}

	newUser := &entity.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashPassword,
	}

	if err := uc.UserRepository.Save(ctx, trx, newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			uc.Logger.Warnf("register rejected, email already taken: %s", request.Email)
			return res.UserResponse{}, fiber.NewError(fiber.StatusConflict, "email already registered")
		}
		uc.Logger.WithError(err).Errorf("failed to save user: %v", err)
		return res.UserResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit user: %v", err)
		return res.UserResponse{}, err
	}

	return res.UserResponse{
		ID:    newUser.ID,
		Name:  newUser.Name,
		Email: newUser.Email,
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate login request: %v", err)
		return res.LoginResponse{}, err
	}

	// a miss on the email lookup and a password mismatch must be
	// indistinguishable to the caller
	currentUser, err := uc.UserRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		uc.Logger.WithError(err).Warn("login failed, email not found")
		return res.LoginResponse{}, fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	if match := util.ComparePassword(currentUser.Password, request.Password); !match {
		uc.Logger.Warnf("login failed, wrong password for user %s", currentUser.ID)
		return res.LoginResponse{}, fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := uc.JWT.GenerateToken(&currentUser)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token: %v", err)
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{
		User: res.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
		Token: token,
	}, nil
}
