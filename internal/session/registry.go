package session

import (
	"context"
	"errors"
	"sync"
)

// ErrUnauthenticated is returned by Resolve when the token does not map to
// a live backend session. Transport translates it into a redirect to the
// login route.
var ErrUnauthenticated = errors.New("session: unauthenticated")

// controllerFactory builds a Controller for a token. Split out so tests
// can substitute controller construction.
type controllerFactory func(token string) *Controller

// Registry hands out one running Controller per access token, creating it
// on the first authenticated request (the server-side analogue of the
// provider mounting) and stopping it on sign-out or when its session turns
// out to be dead.
type Registry struct {
	newController controllerFactory

	mu       sync.Mutex
	sessions map[string]*Controller
}

// NewRegistry builds a registry that constructs controllers with factory.
func NewRegistry(factory func(token string) *Controller) *Registry {
	return &Registry{
		newController: factory,
		sessions:      make(map[string]*Controller),
	}
}

// Resolve returns the running controller for token, starting one when this
// is the first request of the session. It blocks until the controller's
// initial session check finishes and returns ErrUnauthenticated when the
// check leaves the controller signed out. Dead controllers are evicted so
// a later request with a re-issued token starts fresh.
func (r *Registry) Resolve(ctx context.Context, token string) (*Controller, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	r.mu.Lock()
	c, ok := r.sessions[token]
	if !ok {
		c = r.newController(token)
		r.sessions[token] = c
		// Start outside the lock would race a second request for the same
		// token; Start itself is one-shot guarded, so holding the lock
		// only for map access and starting here is safe and cheap (Start
		// blocks on network, so release first).
	}
	r.mu.Unlock()

	if !ok {
		if err := c.Start(ctx); err != nil && !errors.Is(err, ErrAlreadyStarted) {
			r.Evict(token)
			return nil, err
		}
	}

	if err := c.Ready(ctx); err != nil {
		return nil, err
	}
	if c.State() != StateAuthenticated {
		r.Evict(token)
		return nil, ErrUnauthenticated
	}
	return c, nil
}

// Evict stops and forgets the controller for token, if any.
func (r *Registry) Evict(token string) {
	r.mu.Lock()
	c, ok := r.sessions[token]
	delete(r.sessions, token)
	r.mu.Unlock()
	if ok {
		c.Stop()
	}
}

// Len returns the number of live controllers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Shutdown stops every controller. Called on server teardown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	cs := make([]*Controller, 0, len(r.sessions))
	for _, c := range r.sessions {
		cs = append(cs, c)
	}
	r.sessions = make(map[string]*Controller)
	r.mu.Unlock()
	for _, c := range cs {
		c.Stop()
	}
}
