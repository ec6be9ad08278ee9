package service

import (
	"testing"

	"biomed-maintenance-tracker/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestThemeService(t *testing.T) {
	svc := NewThemeService()

	assert.Equal(t, ThemeLight, svc.Get("user-1"))
	assert.Equal(t, ThemeDark, svc.Toggle("user-1"))
	assert.Equal(t, ThemeDark, svc.Get("user-1"))
	assert.Equal(t, ThemeLight, svc.Toggle("user-1"))

	assert.NoError(t, svc.Set("user-2", ThemeDark))
	assert.Equal(t, ThemeDark, svc.Get("user-2"))
	assert.Equal(t, ThemeLight, svc.Get("user-1"), "preferences are per user")

	assert.ErrorIs(t, svc.Set("user-2", "sepia"), apperrors.ErrInvalidTheme)
}
