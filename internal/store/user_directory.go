package store

import (
	"strings"
	"sync"
	"time"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"
)

// UserDirectory holds staff accounts and issued refresh tokens
type UserDirectory struct {
	mu     sync.RWMutex
	users  []models.User
	tokens map[string]models.RefreshToken // keyed by token hash
}

func NewUserDirectory(users []models.User) *UserDirectory {
	return &UserDirectory{
		users:  append([]models.User(nil), users...),
		tokens: make(map[string]models.RefreshToken),
	}
}

// FindUserByEmail matches email case-insensitively
func (d *UserDirectory) FindUserByEmail(email string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	email = strings.TrimSpace(email)
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (d *UserDirectory) FindUserByID(id string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// ListUsers returns a copy of every account
func (d *UserDirectory) ListUsers() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.User(nil), d.users...)
}

// CreateUser adds user. persist, when non-nil, runs before the user becomes visible.
func (d *UserDirectory) CreateUser(user models.User, persist func(models.User) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.ErrDuplicateUser
		}
	}

	if persist != nil {
		if err := persist(user); err != nil {
			return err
		}
	}

	d.users = append(d.users, user)
	return nil
}

// LoadRefreshTokens adds previously issued tokens, e.g. from the database at start
func (d *UserDirectory) LoadRefreshTokens(tokens []models.RefreshToken) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range tokens {
		d.tokens[t.TokenHash] = t
	}
}

// CreateRefreshToken stores token. persist, when non-nil, runs first and its
// error leaves the directory unchanged.
func (d *UserDirectory) CreateRefreshToken(token models.RefreshToken, persist func(models.RefreshToken) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if persist != nil {
		if err := persist(token); err != nil {
			return err
		}
	}
	d.tokens[token.TokenHash] = token
	return nil
}

// ConsumeRefreshToken checks and revokes a token in one step, so a token can be
// exchanged at most once. Expired tokens are revoked and rejected.
func (d *UserDirectory) ConsumeRefreshToken(hash string, now time.Time, persist func(hash string) error) (*models.RefreshToken, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	token, ok := d.tokens[hash]
	if !ok || token.Revoked {
		return nil, apperrors.ErrInvalidToken
	}

	if now.After(token.ExpiresAt) {
		token.Revoked = true
		d.tokens[hash] = token
		return nil, apperrors.ErrInvalidToken
	}

	if persist != nil {
		if err := persist(hash); err != nil {
			return nil, err
		}
	}

	token.Revoked = true
	d.tokens[hash] = token
	return &token, nil
}

// RevokeRefreshTokenByHash marks a token revoked. Unknown hashes are ignored.
func (d *UserDirectory) RevokeRefreshTokenByHash(hash string, persist func(hash string) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	token, ok := d.tokens[hash]
	if !ok || token.Revoked {
		return nil
	}

	if persist != nil {
		if err := persist(hash); err != nil {
			return err
		}
	}

	token.Revoked = true
	d.tokens[hash] = token
	return nil
}
