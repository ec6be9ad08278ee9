package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDirectory_FindUserByEmailIgnoresCase(t *testing.T) {
	d := NewUserDirectory([]models.User{{ID: "u1", Email: "Jane.Manager@Hospital.org"}})

	u, err := d.FindUserByEmail(" jane.manager@hospital.org ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = d.FindUserByEmail("nobody@hospital.org")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserDirectory_CreateUserRejectsDuplicateEmail(t *testing.T) {
	d := NewUserDirectory([]models.User{{ID: "u1", Email: "a@hospital.org"}})

	err := d.CreateUser(models.User{ID: "u2", Email: "A@HOSPITAL.ORG"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)
	assert.Len(t, d.ListUsers(), 1)
}

func TestUserDirectory_ConsumeRefreshToken(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	d := NewUserDirectory(nil)
	require.NoError(t, d.CreateRefreshToken(models.RefreshToken{ID: "t1", UserID: "u1", TokenHash: "hash", ExpiresAt: now.Add(time.Hour)}, nil))

	token, err := d.ConsumeRefreshToken("hash", now, nil)
	require.NoError(t, err)
	assert.Equal(t, "u1", token.UserID)

	_, err = d.ConsumeRefreshToken("hash", now, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken, "a token is exchanged once")

	_, err = d.ConsumeRefreshToken("unknown", now, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestUserDirectory_ConsumeRefreshTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	d := NewUserDirectory(nil)
	d.LoadRefreshTokens([]models.RefreshToken{{ID: "t1", UserID: "u1", TokenHash: "hash", ExpiresAt: now.Add(-time.Minute)}})

	persisted := 0
	_, err := d.ConsumeRefreshToken("hash", now, func(string) error { persisted++; return nil })
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Zero(t, persisted)
}

func TestUserDirectory_ConsumeRefreshTokenConcurrent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	d := NewUserDirectory(nil)
	require.NoError(t, d.CreateRefreshToken(models.RefreshToken{ID: "t1", UserID: "u1", TokenHash: "hash", ExpiresAt: now.Add(time.Hour)}, nil))

	const callers = 16
	var wg sync.WaitGroup
	var succeeded atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.ConsumeRefreshToken("hash", now, nil); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
}

func TestUserDirectory_PersistFailureKeepsToken(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	d := NewUserDirectory(nil)
	require.NoError(t, d.CreateRefreshToken(models.RefreshToken{ID: "t1", UserID: "u1", TokenHash: "hash", ExpiresAt: now.Add(time.Hour)}, nil))

	boom := errors.New("db down")
	_, err := d.ConsumeRefreshToken("hash", now, func(string) error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, d.RevokeRefreshTokenByHash("hash", func(string) error { return boom }), boom)

	_, err = d.ConsumeRefreshToken("hash", now, nil)
	assert.NoError(t, err, "failed writes leave the token usable")

	err = d.CreateRefreshToken(models.RefreshToken{ID: "t2", TokenHash: "other"}, func(models.RefreshToken) error { return boom })
	assert.ErrorIs(t, err, boom)
	_, err = d.ConsumeRefreshToken("other", now, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestUserDirectory_RevokeRefreshToken(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	d := NewUserDirectory(nil)
	require.NoError(t, d.CreateRefreshToken(models.RefreshToken{ID: "t1", UserID: "u1", TokenHash: "hash", ExpiresAt: now.Add(time.Hour)}, nil))

	require.NoError(t, d.RevokeRefreshTokenByHash("hash", nil))
	require.NoError(t, d.RevokeRefreshTokenByHash("unknown", nil))

	_, err := d.ConsumeRefreshToken("hash", now, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
