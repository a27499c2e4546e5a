package bankdemo

import (
	"errors"
	"sync"
)

// ErrUsernameTaken is returned by Store.Create when the username is already
// registered.
var ErrUsernameTaken = errors.New("bankdemo: username already exists")

// Customer is a registered demo-bank customer. Password is never serialized.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Phone     string `json:"phone"`
	SSN       string `json:"-"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"-"`
}

// Store is the demo bank's in-memory customer store. Unlike the framework's
// container, the store is shared across HTTP handlers and locks internally.
type Store struct {
	mu        sync.RWMutex
	customers map[string]Customer // keyed by username
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{customers: make(map[string]Customer)}
}

// Create adds a customer, enforcing username uniqueness.
func (s *Store) Create(c Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.customers[c.Username]; exists {
		return ErrUsernameTaken
	}
	s.customers[c.Username] = c
	return nil
}

// Get looks up a customer by username.
func (s *Store) Get(username string) (Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[username]
	return c, ok
}

// Delete removes a customer; it reports whether one existed.
func (s *Store) Delete(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[username]; !ok {
		return false
	}
	delete(s.customers, username)
	return true
}

// Count returns the number of registered customers.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}
