// Package session implements the auth/bootstrap lifecycle of a signed-in
// session: checking the backend session, lazily creating the profile row,
// running the parallel bootstrap fetches that populate the session store,
// and reacting to auth-state change events for the lifetime of the
// session. One Controller exists per live session; the Registry hands them
// out keyed by access token.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
	"github.com/ideabox/go-ideabox-backend/internal/sysutil"
)

// State is the controller's lifecycle state.
type State string

// Controller states. The initial session check moves UNINITIALIZED through
// CHECKING_SESSION to either AUTHENTICATED or UNAUTHENTICATED; auth events
// move between the two terminal states afterwards.
const (
	StateUninitialized   State = "UNINITIALIZED"
	StateCheckingSession State = "CHECKING_SESSION"
	StateAuthenticated   State = "AUTHENTICATED"
	StateUnauthenticated State = "UNAUTHENTICATED"
)

// ErrAlreadyStarted is returned when Start is called more than once.
var ErrAlreadyStarted = errors.New("session: controller already started")

// defaultNotificationLimit caps the bootstrap notification fetch.
const defaultNotificationLimit = 50

// Controller owns the auth/bootstrap lifecycle for a single session. It is
// an explicit start/stop object: Start subscribes to auth-state events
// exactly once and runs the initial session check; Stop tears the
// subscription down. Requests block on Ready until the initial check
// completes (the render contract for protected routes).
type Controller struct {
	gw    gateway.Gateway
	store *store.Store
	token string

	// NotificationLimit caps the bootstrap notification fetch; zero means
	// the default of 50.
	NotificationLimit int

	mu      sync.Mutex
	state   State
	started bool

	ready chan struct{}
	done  chan struct{}
	stop  func()
}

// NewController builds a controller for the session identified by token.
// It does nothing until Start.
func NewController(gw gateway.Gateway, st *store.Store, token string) *Controller {
	return &Controller{
		gw:    gw,
		store: st,
		token: token,
		state: StateUninitialized,
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Store returns the session store owned by this controller.
func (c *Controller) Store() *store.Store { return c.store }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Start subscribes to auth-state change events and runs the initial
// session check and bootstrap. It must be called exactly once; further
// calls return ErrAlreadyStarted. The event subscription stays live until
// Stop.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	c.state = StateCheckingSession
	c.mu.Unlock()

	events, stop := c.gw.Subscribe()
	c.stop = stop
	go c.eventLoop(events)

	c.checkSession(ctx)
	close(c.ready)
	return nil
}

// Stop detaches the auth-event subscription and waits for the event loop
// to drain. Safe to call once after a successful Start.
func (c *Controller) Stop() {
	if c.stop != nil {
		c.stop()
		<-c.done
	}
}

// Ready blocks until the initial session check has finished or ctx is
// done. Protected routes must not render before this returns nil.
func (c *Controller) Ready(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// checkSession resolves the token, loads or creates the profile, and
// bootstraps the store. A missing session is not an error; it just leaves
// the controller UNAUTHENTICATED.
func (c *Controller) checkSession(ctx context.Context) {
	sess, err := c.gw.Session(ctx, c.token)
	if err != nil {
		if !errors.Is(err, gateway.ErrNoSession) {
			log.Error().Err(err).Msg("session check failed")
		}
		c.setState(StateUnauthenticated)
		return
	}

	if err := c.loadProfileAndBootstrap(ctx, sess); err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("bootstrap failed")
		c.setState(StateUnauthenticated)
		return
	}
	c.setState(StateAuthenticated)
}

// loadProfileAndBootstrap fetches the profile row (creating it with
// session-derived defaults when the backend reports not found) and then
// runs the five parallel bootstrap fetches.
func (c *Controller) loadProfileAndBootstrap(ctx context.Context, sess *gateway.Session) error {
	p, err := c.ensureProfile(ctx, sess)
	if err != nil {
		return err
	}
	c.store.SetUser(p)
	c.bootstrap(ctx, sess.UserID)
	return nil
}

// ensureProfile returns the profile row for the session user, creating it
// lazily on the backend's not-found condition.
func (c *Controller) ensureProfile(ctx context.Context, sess *gateway.Session) (*domain.Profile, error) {
	p, err := c.gw.GetProfile(ctx, sess.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gateway.ErrNotFound) {
		return nil, err
	}

	name := sysutil.FirstNonEmpty(sess.FullName, emailLocalPart(sess.Email), "member")
	created, err := c.gw.CreateProfile(ctx, gateway.ProfileInsert{
		ID:       sess.UserID,
		Email:    sess.Email,
		FullName: name,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", created.ID).Msg("profile created on first sign-in")
	return created, nil
}

// bootstrap issues the five independent collection fetches concurrently
// and populates the store with whatever subset succeeds. Failures are
// isolated per collection: each closure logs and returns nil so one
// failing fetch never blocks the others.
func (c *Controller) bootstrap(ctx context.Context, userID string) {
	limit := c.NotificationLimit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, err := c.gw.ListCategories(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("bootstrap: categories fetch failed")
			return nil
		}
		c.store.SetCategories(cats)
		return nil
	})
	g.Go(func() error {
		ideas, err := c.gw.ListIdeas(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("bootstrap: ideas fetch failed")
			return nil
		}
		c.store.SetIdeas(ideas)
		return nil
	})
	g.Go(func() error {
		votes, err := c.gw.ListVotesByUser(ctx, userID)
		if err != nil {
			log.Warn().Err(err).Msg("bootstrap: votes fetch failed")
			return nil
		}
		c.store.SetUserVotes(votes)
		return nil
	})
	g.Go(func() error {
		ns, err := c.gw.ListNotifications(ctx, userID, limit)
		if err != nil {
			log.Warn().Err(err).Msg("bootstrap: notifications fetch failed")
			return nil
		}
		c.store.SetNotifications(ns)
		return nil
	})
	g.Go(func() error {
		rc, err := c.gw.LatestReviewCycle(ctx)
		if err != nil {
			if !errors.Is(err, gateway.ErrNotFound) {
				log.Warn().Err(err).Msg("bootstrap: review cycle fetch failed")
			}
			return nil
		}
		c.store.SetCurrentCycle(rc)
		return nil
	})
	_ = g.Wait()
}

// eventLoop reacts to auth-state changes for this session's token until
// the subscription is stopped.
func (c *Controller) eventLoop(events <-chan gateway.AuthEvent) {
	defer close(c.done)
	for ev := range events {
		if ev.Session == nil || ev.Session.Token != c.token {
			continue
		}
		ctx := context.Background()
		switch ev.Type {
		case gateway.EventSignedIn:
			if err := c.loadProfileAndBootstrap(ctx, ev.Session); err != nil {
				log.Error().Err(err).Msg("sign-in bootstrap failed")
				continue
			}
			c.setState(StateAuthenticated)
		case gateway.EventSignedOut:
			c.store.Clear()
			c.setState(StateUnauthenticated)
		case gateway.EventTokenRefreshed:
			// Permission bits may have changed; re-read only the profile,
			// not the whole world.
			p, err := c.gw.GetProfile(ctx, ev.Session.UserID)
			if err != nil {
				log.Warn().Err(err).Msg("profile refresh failed")
				continue
			}
			c.store.SetUser(p)
		}
	}
}

// emailLocalPart returns the part of an address before the '@'.
func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return ""
}
