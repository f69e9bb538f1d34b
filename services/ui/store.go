// Package ui holds presentation preferences (theme, language) and the
// in-app notification queue.
package ui

import (
	"sync"
	"time"

	"soldy/storage"
	"soldy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NotificationType classifies a toast notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is one toast entry. A non-zero Duration schedules
// automatic removal.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Duration  time.Duration    `json:"duration,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Store owns theme, language and notifications. Theme and language
// persist under their fixed storage keys so existing user preferences
// survive.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	clock   utils.Clock
	logger  *zap.Logger

	theme         Theme
	language      string
	notifications []Notification
	timers        map[string]utils.Timer
}

// NewStore builds a UI store, restoring persisted theme and language.
func NewStore(st storage.Store, clock utils.Clock, logger *zap.Logger) *Store {
	s := &Store{
		storage:  st,
		clock:    clock,
		logger:   logger,
		theme:    ThemeLight,
		language: "ru",
		timers:   make(map[string]utils.Timer),
	}
	if v, ok, err := st.Get(storage.ThemeKey); err == nil && ok && (Theme(v) == ThemeLight || Theme(v) == ThemeDark) {
		s.theme = Theme(v)
	}
	if v, ok, err := st.Get(storage.LanguageKey); err == nil && ok && v != "" {
		s.language = v
	}
	return s
}

// ToggleTheme flips between light and dark and persists the result.
func (s *Store) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	s.persistTheme()
	return s.theme
}

// SetTheme sets and persists the theme.
func (s *Store) SetTheme(theme Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.persistTheme()
}

// Callers hold s.mu.
func (s *Store) persistTheme() {
	if err := s.storage.Set(storage.ThemeKey, string(s.theme)); err != nil {
		s.logger.Warn("failed to persist theme", zap.Error(err))
	}
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// IsDarkTheme reports whether the dark theme is active.
func (s *Store) IsDarkTheme() bool {
	return s.Theme() == ThemeDark
}

// SetLanguage sets and persists the interface language.
func (s *Store) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	if err := s.storage.Set(storage.LanguageKey, lang); err != nil {
		s.logger.Warn("failed to persist language", zap.Error(err))
	}
}

// Language returns the current interface language.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// AddNotification queues a toast at the front of the list. A positive
// duration schedules automatic removal through the clock.
func (s *Store) AddNotification(kind NotificationType, title, message string, duration time.Duration) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Duration:  duration,
		Timestamp: s.clock.Now(),
	}

	s.mu.Lock()
	s.notifications = append([]Notification{n}, s.notifications...)
	if duration > 0 {
		id := n.ID
		s.timers[id] = s.clock.AfterFunc(duration, func() {
			s.RemoveNotification(id)
		})
	}
	s.mu.Unlock()
	return n
}

// RemoveNotification drops a toast by id and cancels its expiry timer.
func (s *Store) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearNotifications drops all toasts and cancels their timers.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.notifications = nil
}

// Notifications returns a copy of the current toast list.
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
