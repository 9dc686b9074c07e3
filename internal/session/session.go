// Package session exposes the signed-in admin identity to the panel.
package session

import (
	"context"
	"strings"
	"sync"
)

// User is the display identity of the signed-in admin.
type User struct {
	DisplayName string
}

// Identity supplies the current user and performs sign out on request.
// SignOut may be called off the UI goroutine.
type Identity interface {
	Current() (User, bool)
	SignOut(ctx context.Context) error
}

// Static is an Identity configured up front. An empty name means nobody is
// signed in.
type Static struct {
	mu   sync.RWMutex
	user *User
}

func NewStatic(displayName string) *Static {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return &Static{}
	}
	return &Static{user: &User{DisplayName: name}}
}

func (s *Static) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Static) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}
