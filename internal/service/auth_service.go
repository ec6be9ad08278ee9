package service

import (
	"errors"
	"fmt"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/internal/store"
	"biomed-maintenance-tracker/pkg/apperrors"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenWriter persists refresh tokens. repository.UserRepository implements it;
// a nil writer keeps tokens in memory.
type TokenWriter interface {
	CreateRefreshToken(token *models.RefreshToken) error
	RevokeRefreshTokenByHash(hash string) error
}

type AuthService struct {
	users  *store.UserDirectory
	tokens *utils.TokenManager
	writer TokenWriter
	audit  AuditLogger
	log    *zap.Logger
	clock  engine.Clock
}

func NewAuthService(
	users *store.UserDirectory,
	tokens *utils.TokenManager,
	writer TokenWriter,
	audit AuditLogger,
	log *zap.Logger,
	clock engine.Clock,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		writer: writer,
		audit:  audit,
		log:    log.Named("auth"),
		clock:  clock,
	}
}

// LoginResponse represents the response structure for login and refresh
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"-"`
	ExpiresIn    int          `json:"expires_in"`
	User         *models.User `json:"user"`
}

// Login authenticates a user by email and password and returns tokens
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		s.log.Info("login rejected", zap.String("user_id", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	audit(s.audit, s.log, user.ID, "user_login", fmt.Sprintf("User %s logged in", user.Email))
	return response, nil
}

// Refresh rotates a refresh token: the old one is revoked and a new pair issued
func (s *AuthService) Refresh(refreshToken string) (*LoginResponse, error) {
	hash := s.tokens.HashRefreshToken(refreshToken)

	token, err := s.users.ConsumeRefreshToken(hash, s.clock(), s.revokePersist())
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	user, err := s.users.FindUserByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// Logout revokes a refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(refreshToken string) {
	hash := s.tokens.HashRefreshToken(refreshToken)
	if err := s.users.RevokeRefreshTokenByHash(hash, s.revokePersist()); err != nil {
		s.log.Warn("failed to revoke refresh token", zap.Error(err))
	}
}

func (s *AuthService) revokePersist() func(hash string) error {
	if s.writer == nil {
		return nil
	}
	return s.writer.RevokeRefreshTokenByHash
}

// GetUser returns the account behind an authenticated request
func (s *AuthService) GetUser(id string) (*models.User, error) {
	return s.users.FindUserByID(id)
}

// HasPermission reports whether user id currently holds permission.
// Unknown users hold nothing.
func (s *AuthService) HasPermission(id, permission string) bool {
	user, err := s.users.FindUserByID(id)
	if err != nil {
		return false
	}
	return user.HasPermission(permission)
}

func (s *AuthService) issueTokens(user *models.User) (*LoginResponse, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role), user.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	var persist func(models.RefreshToken) error
	if s.writer != nil {
		persist = func(t models.RefreshToken) error {
			return s.writer.CreateRefreshToken(&t)
		}
	}

	now := s.clock()
	err = s.users.CreateRefreshToken(models.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: s.tokens.HashRefreshToken(refreshToken),
		ExpiresAt: now.Add(s.tokens.RefreshTokenExpiry()),
		CreatedAt: now,
	}, persist)
	if err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.tokens.AccessTokenExpiry().Seconds()),
		User:         user,
	}, nil
}
