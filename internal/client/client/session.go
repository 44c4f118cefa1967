package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/filex"
)

// Session is what the CLI remembers after a successful login.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// LoadSession reads the session file. A missing file yields ErrNoSession.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("corrupt session file %s: %w", path, err)
	}
	if s.Token == "" || s.UserID == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

// SaveSession writes s to path, readable by the current user only.
func SaveSession(path string, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return filex.WriteFilePrivate(path, data)
}

// ClearSession removes the session file; a missing file is not an error.
func ClearSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
