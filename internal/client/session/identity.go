package session

import (
	"sync"

	"github.com/akodina/shopfront/pkg/api"
)

// Identity is the currently authenticated user, or nil when nobody is
// logged in. It is only ever replaced wholesale, never mutated in place.
type Identity struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// IsAdmin reports whether the identity may use the admin endpoints.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == "ADMIN"
}

// IdentityFromUser builds an Identity from a profile payload.
func IdentityFromUser(u api.User) *Identity {
	return &Identity{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// Manager holds the current Identity and fans out every change to
// registered listeners. Writers are the login, registration, logout and
// profile-update flows only; everything else reads.
//
// Every transition notifies, including nil→user, user→nil and user→user:
// the cart synchronizer relies on there being no special-cased transitions.
type Manager struct {
	mu        sync.Mutex
	current   *Identity
	listeners map[int]func(*Identity)
	nextID    int
}

// NewManager creates an identity manager with no authenticated user.
func NewManager() *Manager {
	return &Manager{
		listeners: make(map[int]func(*Identity)),
	}
}

// Current returns the current identity, nil when logged out.
func (m *Manager) Current() *Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set replaces the current identity and notifies all change listeners.
func (m *Manager) Set(identity *Identity) {
	m.mu.Lock()
	m.current = identity
	listeners := make([]func(*Identity), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	// Listeners run outside the lock so they may call back into Current.
	for _, fn := range listeners {
		fn(identity)
	}
}

// OnChange registers a listener invoked on every identity transition.
// The returned function unregisters it.
func (m *Manager) OnChange(fn func(*Identity)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}
