package local

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
)

// defaultSessionTTL bounds how long a minted access token stays valid
// without a refresh.
const defaultSessionTTL = 12 * time.Hour

// Backend implements gateway.Gateway on top of an embedded SQLite
// database. Sessions are held in memory: this backend emulates a managed
// service for one process, it is not a distributed auth provider.
type Backend struct {
	db *gorm.DB

	mu       sync.Mutex
	sessions map[string]*gateway.Session
	subs     map[int]chan gateway.AuthEvent
	nextSub  int

	sessionTTL time.Duration
	now        func() time.Time
}

// New wraps an opened database handle in a Backend.
func New(db *gorm.DB) *Backend {
	return &Backend{
		db:         db,
		sessions:   make(map[string]*gateway.Session),
		subs:       make(map[int]chan gateway.AuthEvent),
		sessionTTL: defaultSessionTTL,
		now:        time.Now,
	}
}

// compile-time check: Backend satisfies the full backend contract.
var _ gateway.Gateway = (*Backend)(nil)

// SetSessionTTL overrides the default session lifetime. Non-positive
// values are ignored.
func (b *Backend) SetSessionTTL(d time.Duration) {
	if d > 0 {
		b.sessionTTL = d
	}
}

func newID() string { return uuid.NewString() }

//
// Auth
//

// SignIn authenticates an employee by email and mints a session token.
// The managed backend issues sessions through its own login UI; the local
// backend exposes this as the equivalent entry point. A SIGNED_IN event is
// published to subscribers.
func (b *Backend) SignIn(ctx context.Context, email, fullName string) (*gateway.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, gateway.ErrNoSession
	}

	// The session's user id is stable per email: reuse the profile row id
	// when one exists so repeat sign-ins map to the same identity.
	userID := ""
	var p domain.Profile
	err := b.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	switch {
	case err == nil:
		userID = p.ID
	case err == gorm.ErrRecordNotFound:
		userID = newID()
	default:
		return nil, err
	}

	s := &gateway.Session{
		UserID:    userID,
		Email:     email,
		FullName:  strings.TrimSpace(fullName),
		Token:     newID(),
		ExpiresAt: b.now().Add(b.sessionTTL),
	}

	b.mu.Lock()
	b.sessions[s.Token] = s
	b.mu.Unlock()

	b.publish(gateway.AuthEvent{Type: gateway.EventSignedIn, Session: s})
	return s, nil
}

// Session resolves token to a live session or gateway.ErrNoSession.
func (b *Backend) Session(ctx context.Context, token string) (*gateway.Session, error) {
	b.mu.Lock()
	s, ok := b.sessions[token]
	if ok && b.now().After(s.ExpiresAt) {
		delete(b.sessions, token)
		ok = false
	}
	b.mu.Unlock()
	if !ok {
		return nil, gateway.ErrNoSession
	}
	cp := *s
	return &cp, nil
}

// Refresh extends a session's lifetime and publishes TOKEN_REFRESHED, the
// signal the bootstrap controller uses to re-read the profile for
// permission changes.
func (b *Backend) Refresh(ctx context.Context, token string) (*gateway.Session, error) {
	b.mu.Lock()
	s, ok := b.sessions[token]
	if ok {
		s.ExpiresAt = b.now().Add(b.sessionTTL)
	}
	b.mu.Unlock()
	if !ok {
		return nil, gateway.ErrNoSession
	}
	cp := *s
	b.publish(gateway.AuthEvent{Type: gateway.EventTokenRefreshed, Session: &cp})
	return &cp, nil
}

// SignOut invalidates the session and publishes SIGNED_OUT. Signing out an
// unknown token is a no-op.
func (b *Backend) SignOut(ctx context.Context, token string) error {
	b.mu.Lock()
	s, ok := b.sessions[token]
	delete(b.sessions, token)
	b.mu.Unlock()
	if ok {
		cp := *s
		b.publish(gateway.AuthEvent{Type: gateway.EventSignedOut, Session: &cp})
	}
	return nil
}

// Subscribe registers an auth-state listener. Events are delivered on a
// buffered channel; a subscriber that falls behind loses events rather
// than blocking the publisher (the controller re-reads state on its own
// fetches, so a dropped event degrades to a later reconciliation).
func (b *Backend) Subscribe() (<-chan gateway.AuthEvent, func()) {
	ch := make(chan gateway.AuthEvent, 16)

	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, stop
}

func (b *Backend) publish(ev gateway.AuthEvent) {
	b.mu.Lock()
	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			log.Warn().Int("subscriber", id).Str("event", string(ev.Type)).
				Msg("auth event dropped for slow subscriber")
		}
	}
	b.mu.Unlock()
}
