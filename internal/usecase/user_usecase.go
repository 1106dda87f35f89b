package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Signup registers a new account.
func (uc *UserUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: weak password: %v", ErrInvalidInput, err)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, &StorageError{Op: "create user", Err: err}
	}
	uc.logger.Infof("user %s signed up", user.ID)
	return user, nil
}

// Login checks the credentials and issues an access token.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to look up user by email: %v", err)
		return "", "", &StorageError{Op: "get user", Err: err}
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return user.ID, token, nil
}

// Authenticate returns the user id carried by a valid access token.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (string, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if claims.UserID == "" {
		return "", ErrInvalidCredentials
	}
	return claims.UserID, nil
}
