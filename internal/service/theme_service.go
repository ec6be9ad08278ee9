package service

import (
	"sync"

	"biomed-maintenance-tracker/pkg/apperrors"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeService keeps each user's light/dark preference. Users without one get light.
type ThemeService struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

func NewThemeService() *ThemeService {
	return &ThemeService{themes: make(map[string]Theme)}
}

func (s *ThemeService) Get(userID string) Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.themes[userID]; ok {
		return t
	}
	return ThemeLight
}

func (s *ThemeService) Set(userID string, theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return apperrors.ErrInvalidTheme
	}

	s.mu.Lock()
	s.themes[userID] = theme
	s.mu.Unlock()
	return nil
}

// Toggle flips the preference and returns the new value
func (s *ThemeService) Toggle(userID string) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ThemeDark
	if s.themes[userID] == ThemeDark {
		next = ThemeLight
	}
	s.themes[userID] = next
	return next
}
