package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cinema-tui/model"
)

const (
	appDir          = "cinema-tui"
	sessionFile     = "session.json"
	loginsFile      = "logins.json"
	maxRecentLogins = 5
)

type envelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

type loginHistory struct {
	Emails []string `json:"emails"`
}

// SavedSession is a persisted login response together with the time it was
// stored.
type SavedSession struct {
	Account model.Account
	SavedAt time.Time
}

func SaveSession(account model.Account) error {
	if strings.TrimSpace(account.Token) == "" {
		return errors.New("account token is required")
	}
	path, err := ConfigPath(sessionFile)
	if err != nil {
		return err
	}
	return saveJSON(path, account, 0o600)
}

// LoadSession returns the stored session. ok is false when nothing is stored.
func LoadSession() (SavedSession, bool, error) {
	path, err := ConfigPath(sessionFile)
	if err != nil {
		return SavedSession{}, false, err
	}
	env, ok, err := loadJSON[model.Account](path)
	if err != nil || !ok {
		return SavedSession{}, false, err
	}
	if strings.TrimSpace(env.Data.Token) == "" {
		return SavedSession{}, false, nil
	}
	return SavedSession{Account: env.Data, SavedAt: env.UpdatedAt}, true, nil
}

func ClearSession() error {
	path, err := ConfigPath(sessionFile)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func LoadRecentLogins() ([]string, error) {
	path, err := ConfigPath(loginsFile)
	if err != nil {
		return nil, err
	}
	env, ok, err := loadJSON[loginHistory](path)
	if err != nil {
		return nil, errors.New("invalid login history format")
	}
	if !ok {
		return nil, nil
	}
	return env.Data.Emails, nil
}

// RememberLogin moves email to the front of the login history.
func RememberLogin(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	history, _ := LoadRecentLogins()
	next := []string{email}
	for _, existing := range history {
		if existing == "" || strings.EqualFold(existing, email) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentLogins {
			break
		}
	}
	path, err := ConfigPath(loginsFile)
	if err != nil {
		return err
	}
	return saveJSON(path, loginHistory{Emails: next}, 0o644)
}

func loadJSON[T any](path string) (envelope[T], bool, error) {
	var env envelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return env, false, nil
		}
		return env, false, err
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return env, false, err
	}
	return env, true, nil
}

func saveJSON[T any](path string, data T, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	env := envelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, perm)
}

// ConfigPath returns name inside the per-user config directory of the app.
func ConfigPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}

// CachePath returns name inside the per-user cache directory of the app.
func CachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
