package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryTokenStore keeps the token in memory only.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	return s.Save("")
}

// FileTokenStore persists the token to a file, surviving process restarts.
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// AuthState is the snapshot published to subscribers whenever the session
// changes.
type AuthState struct {
	Token string
	User  *User
	Stats *UserStats
}

// LoggedIn reports whether a token is held.
func (s AuthState) LoggedIn() bool {
	return s.Token != ""
}

// AuthStore holds the session state and notifies subscribers of changes.
// There is no push channel from the server; consumers re-render from the
// snapshot they receive and trigger refreshes explicitly.
type AuthStore struct {
	mu    sync.Mutex
	state AuthState
	store TokenStore

	nextSubID int
	subs      map[int]func(AuthState)
}

// NewAuthStore creates an AuthStore backed by the given TokenStore. A
// previously saved token is loaded but the user snapshot stays empty until
// the client fetches it.
func NewAuthStore(store TokenStore) *AuthStore {
	if store == nil {
		store = &MemoryTokenStore{}
	}
	token, _ := store.Load()
	return &AuthStore{
		state: AuthState{Token: token},
		store: store,
		subs:  make(map[int]func(AuthState)),
	}
}

// Subscribe registers fn to be called with every state change. The returned
// function cancels the subscription.
func (a *AuthStore) Subscribe(fn func(AuthState)) (cancel func()) {
	a.mu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subs[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

// State returns the current snapshot.
func (a *AuthStore) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Token returns the current token.
func (a *AuthStore) Token() string {
	return a.State().Token
}

func (a *AuthStore) update(mutate func(*AuthState)) {
	a.mu.Lock()
	mutate(&a.state)
	state := a.state
	fns := make([]func(AuthState), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	// Notify outside the lock so subscribers may call back into the store.
	for _, fn := range fns {
		fn(state)
	}
}

// SetSession stores a new token and user snapshot.
func (a *AuthStore) SetSession(token string, user *User) {
	_ = a.store.Save(token)
	a.update(func(s *AuthState) {
		s.Token = token
		s.User = user
		s.Stats = nil
	})
}

// SetUser replaces the user snapshot.
func (a *AuthStore) SetUser(user *User) {
	a.update(func(s *AuthState) { s.User = user })
}

// SetStats replaces the stats snapshot.
func (a *AuthStore) SetStats(stats *UserStats) {
	a.update(func(s *AuthState) { s.Stats = stats })
}

// Clear drops the session.
func (a *AuthStore) Clear() {
	_ = a.store.Clear()
	a.update(func(s *AuthState) {
		*s = AuthState{}
	})
}
