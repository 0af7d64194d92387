// Package directory serves the searchable user directory.
package directory

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Initial returns the first letter of the name, used as avatar text.
func (u User) Initial() string {
	for _, r := range u.Name {
		return string(r)
	}
	return ""
}

// Source provides the full user list.
type Source interface {
	FindAll(ctx context.Context) ([]User, error)
}

// MemorySource serves a fixed user list, optionally after a simulated fetch delay.
type MemorySource struct {
	users   []User
	latency time.Duration
}

// NewMemorySource creates a source over users. A positive latency delays every
// FindAll call unless ctx ends first.
func NewMemorySource(users []User, latency time.Duration) *MemorySource {
	return &MemorySource{users: users, latency: latency}
}

func (m *MemorySource) FindAll(ctx context.Context) ([]User, error) {
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	out := make([]User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// MockUsers is the demo directory.
func MockUsers() []User {
	return []User{
		{ID: 1, Name: "Alice Johnson"},
		{ID: 2, Name: "Bob Smith"},
		{ID: 3, Name: "Charlie Davis"},
		{ID: 4, Name: "Diana Prince"},
		{ID: 5, Name: "Ethan Clark"},
		{ID: 6, Name: "Fiona Lewis"},
		{ID: 7, Name: "George Hall"},
		{ID: 8, Name: "Hannah Adams"},
		{ID: 9, Name: "Ian Turner"},
		{ID: 10, Name: "Julia Roberts"},
	}
}

// SearchResult is a filtered directory page.
type SearchResult struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Search returns the users whose name contains term, ignoring case.
// An empty term matches every user.
func (s *Service) Search(ctx context.Context, term string) (*SearchResult, error) {
	users, err := s.source.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	needle := strings.ToLower(term)
	matched := make([]User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			matched = append(matched, u)
		}
	}
	return &SearchResult{Users: matched, Count: len(matched), Label: countLabel(len(matched))}, nil
}

func countLabel(n int) string {
	if n == 1 {
		return "1 user found"
	}
	return fmt.Sprintf("%d users found", n)
}
