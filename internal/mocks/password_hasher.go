package mocks

import (
	"errors"
	"strings"
	"sync"

	"github.com/phrazzld/wtwr-api/internal/service/auth"
)

// ErrPasswordMismatch is returned by MockPasswordHasher when a comparison fails.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordHasher implements auth.PasswordHasher for testing.
//
// Without overrides it "hashes" by prefixing "hashed:" and compares
// accordingly, which keeps tests fast while preserving hash != plaintext.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	mu           sync.Mutex
	hashCalls    int
	compareCalls int
	compared     []string
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

const mockHashPrefix = "hashed:"

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.mu.Lock()
	m.hashCalls++
	m.mu.Unlock()

	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return mockHashPrefix + password, nil
}

// Compare implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.mu.Lock()
	m.compareCalls++
	m.compared = append(m.compared, hashedPassword)
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if !strings.HasPrefix(hashedPassword, mockHashPrefix) ||
		strings.TrimPrefix(hashedPassword, mockHashPrefix) != password {
		return ErrPasswordMismatch
	}
	return nil
}

// HashCallCount returns how many times Hash was called.
func (m *MockPasswordHasher) HashCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hashCalls
}

// CompareCallCount returns how many times Compare was called.
func (m *MockPasswordHasher) CompareCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compareCalls
}

// ComparedHashes returns the hashes passed to Compare, in call order.
func (m *MockPasswordHasher) ComparedHashes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.compared...)
}
