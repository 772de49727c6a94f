package testutil

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
)

// MockSource is a mock implementation of user.Source
type MockSource struct {
	Users      []user.User
	FetchError error
	Calls      atomic.Int32
}

func NewMockSource(users ...user.User) *MockSource {
	return &MockSource{Users: users}
}

func (m *MockSource) FetchUsers(ctx context.Context) ([]user.User, error) {
	m.Calls.Add(1)
	if m.FetchError != nil {
		return nil, m.FetchError
	}
	out := make([]user.User, len(m.Users))
	copy(out, m.Users)
	return out, nil
}

// MockRandomSource is a mock implementation of user.RandomSource. Each call
// returns a distinct valid input unless FailNext is set.
type MockRandomSource struct {
	mu       sync.Mutex
	calls    int
	failNext int
	// Block, when set, holds every fetch until it is closed or ctx ends
	Block chan struct{}
}

func NewMockRandomSource() *MockRandomSource {
	return &MockRandomSource{}
}

// FailNext makes the next n fetches fail
func (m *MockRandomSource) FailNext(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = n
}

// Calls returns the number of fetches made
func (m *MockRandomSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockRandomSource) FetchRandom(ctx context.Context) (user.Input, error) {
	m.mu.Lock()
	m.calls++
	n := m.calls
	fail := m.failNext > 0
	if fail {
		m.failNext--
	}
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return user.Input{}, ctx.Err()
		}
	}

	if fail {
		return user.Input{}, fmt.Errorf("random user source unavailable")
	}

	return user.Input{
		Name:    fmt.Sprintf("Random Person %d", n),
		Email:   fmt.Sprintf("random%d@example.com", n),
		Street:  "Main Street",
		City:    "Springfield",
		Zipcode: "12345",
	}, nil
}

// SampleUsers returns a small fixed collection shaped like the placeholder API
func SampleUsers() []user.User {
	return []user.User{
		{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz", Address: user.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874"}},
		{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv", Address: user.Address{Street: "Victor Plains", Suite: "Suite 879", City: "Wisokyburgh", Zipcode: "90566-7771"}},
		{ID: 3, Name: "Clementine Bauch", Email: "Nathan@yesenia.net", Address: user.Address{Street: "Douglas Extension", Suite: "Suite 847", City: "McKenziehaven", Zipcode: "59590-4157"}},
	}
}
