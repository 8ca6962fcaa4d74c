package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
)

// Persistence is the storage Manager writes through to. *Store implements it.
type Persistence interface {
	Read(ctx context.Context) (models.Session, bool)
	Write(ctx context.Context, token string, user models.User) error
	Clear(ctx context.Context) error
}

// Manager holds the current user. It starts in the loading state until Init
// has read the persisted session.
type Manager struct {
	store Persistence

	mu          sync.RWMutex
	loading     bool
	user        *models.User
	token       string
	subscribers []func(*models.User)

	initOnce sync.Once
}

func NewManager(store Persistence) *Manager {
	return &Manager{store: store, loading: true}
}

// Init restores the persisted session. Only the first call has an effect.
func (m *Manager) Init(ctx context.Context) {
	m.initOnce.Do(func() {
		sess, ok := m.store.Read(ctx)

		m.mu.Lock()
		if ok {
			u := sess.User
			m.user = &u
			m.token = sess.Token
		}
		m.loading = false
		m.mu.Unlock()
	})
}

func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) User() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.user != nil
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.User()
	return ok
}

// Login persists the session, then makes user current. On a storage error
// the in-memory state is left untouched.
func (m *Manager) Login(ctx context.Context, token string, user models.User) error {
	if err := m.store.Write(ctx, token, user); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	u := user
	m.mu.Lock()
	m.user = &u
	m.token = token
	m.loading = false
	m.mu.Unlock()

	m.notify(&u)
	return nil
}

// Logout ends the session. The user is cleared from memory even when the
// store could not be cleared; that error is still returned. Subscribers are
// only notified when a user was actually logged in.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)

	m.mu.Lock()
	wasIn := m.user != nil
	m.user = nil
	m.token = ""
	m.mu.Unlock()

	if wasIn {
		m.notify(nil)
	}
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Subscribe registers fn to be called with the new user (nil after logout)
// on every login and logout.
func (m *Manager) Subscribe(fn func(*models.User)) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

func (m *Manager) notify(u *models.User) {
	m.mu.RLock()
	subs := make([]func(*models.User), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.RUnlock()

	for _, fn := range subs {
		var arg *models.User
		if u != nil {
			cp := *u
			arg = &cp
		}
		fn(arg)
	}
}
