// Package services contains the authentication business logic, kept free of
// transport concerns so it can be exercised against in-memory repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medichain/backend/internal/common"
	"github.com/medichain/backend/internal/server/auth"
	"github.com/medichain/backend/internal/server/config"
	"github.com/medichain/backend/internal/server/models"
	"github.com/medichain/backend/internal/server/repositories/refreshtokens"
	"github.com/medichain/backend/internal/server/repositories/users"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Profile carries the optional registration fields owned by the user record.
type Profile struct {
	Name        string
	Role        string
	PhoneNumber string
}

type UserService struct {
	repo                         users.Repository
	refreshTokenRepo             refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
	passwordMinLength            int
}

func NewUserService(repo users.Repository, refreshTokenRepo refreshtokens.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                         repo,
		refreshTokenRepo:             refreshTokenRepo,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		bcryptCost:                   cfg.BcryptCost,
		passwordMinLength:            cfg.PasswordMinLength,
	}
}

// Register validates the input, hashes the password, creates the user
// record and issues a token pair. A duplicate email surfaces as
// common.ErrorEmailAlreadyExists even when the store lost a check/insert
// race, because the store's uniqueness constraint is the authority.
func (s *UserService) Register(ctx context.Context, email, password string, profile Profile) (*models.User, *TokenPair, error) {

	if err := s.validateCredentials(email, password); err != nil {
		return nil, nil, err
	}

	role := profile.Role
	if role == "" {
		role = models.RolePatient
	}
	if role != models.RolePatient && role != models.RoleDoctor {
		return nil, nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         profile.Name,
		Role:         role,
		PhoneNumber:  profile.PhoneNumber,
		CreatedAt:    time.Now(),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailAlreadyExists) {
			return nil, nil, common.ErrorEmailAlreadyExists
		}
		return nil, nil, common.ErrorInternal
	}

	tokens, err := s.generateTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Login verifies the credentials and issues a fresh token pair. Unknown
// email and wrong password are deliberately indistinguishable to callers.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorInvalidCredentials
		}
		return nil, nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, common.ErrorInvalidCredentials
	}

	tokens, err := s.generateTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Refresh rotates a refresh token: the presented token is deleted and a new
// pair is issued. Unknown and expired tokens both fail as unauthorized.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {

	token, err := s.refreshTokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	if err := s.refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, common.ErrorInternal
	}

	return s.generateTokenPair(ctx, token.UserID)
}

// Logout revokes every refresh token of the user. Access tokens stay valid
// until natural expiry; their short lifetime bounds the exposure window.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.refreshTokenRepo.DeleteByUser(ctx, userID); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// CurrentUser resolves a verified token subject to its user record.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// VerifyAccessToken checks signature and expiry and returns the subject id.
func (s *UserService) VerifyAccessToken(tokenString string) (string, error) {
	return auth.GetUserIDFromToken(tokenString, s.jwtSecret)
}

func (s *UserService) validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if len(password) < s.passwordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, s.passwordMinLength)
	}
	return nil
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}

	err = s.refreshTokenRepo.Create(ctx, userID, refreshToken, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
