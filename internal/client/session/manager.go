// Package session owns the client's authentication state: acquiring a bearer
// credential from the remote endpoint, deriving an identity from it,
// persisting both across restarts, and broadcasting changes so dependent
// views can re-fetch. The manager is the single writer of session state;
// everything else only reads snapshots.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/api"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/token"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"
)

// ErrNoToken is returned when a successful login response carried no token in
// either accepted shape.
var ErrNoToken = errors.New("login response carried no token")

// Session is a point-in-time snapshot of the client's belief about who is
// authenticated. Identity is nil while anonymous.
type Session struct {
	Token        string
	Identity     *token.Claims
	Initializing bool
}

// LoggedIn reports whether a credential is held.
func (s Session) LoggedIn() bool { return s.Token != "" }

// SubjectID returns the authenticated subject's identifier, or "" when
// anonymous.
func (s Session) SubjectID() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.SubjectID
}

// AuthEndpoint is the slice of the remote API the manager needs.
type AuthEndpoint interface {
	Login(ctx context.Context, in api.LoginInput) (*api.LoginEnvelope, error)
	Register(ctx context.Context, in api.RegisterInput) error
}

// Manager owns the live session. Construct it with NewManager, wire the
// endpoint with SetEndpoint (the HTTP client needs the manager's token first,
// so the two are bound in two steps), then call Hydrate once at startup.
type Manager struct {
	store Store
	log   logging.Logger

	mu       sync.Mutex
	endpoint AuthEndpoint
	session  Session
	subs     []func()
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{
		store:   store,
		log:     log,
		session: Session{Initializing: true},
	}
}

// SetEndpoint binds the remote auth endpoint. Must be called before Login or
// Register.
func (m *Manager) SetEndpoint(ep AuthEndpoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.endpoint = ep
}

// Current returns a snapshot of the live session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// CurrentToken satisfies api.TokenSource.
func (m *Manager) CurrentToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Token
}

// OnChange registers a callback invoked after every session transition
// (hydration, login, logout). Callbacks run on the mutating goroutine and see
// the new state via Current.
func (m *Manager) OnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *Manager) notify() {
	m.mu.Lock()
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// swap installs the new session state atomically: token and identity become
// visible together, never one without the other.
func (m *Manager) swap(s Session) {
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
	m.notify()
}

// Hydrate restores the session from the store. It runs once at startup and
// always terminates with Initializing=false, whatever garbage the store
// holds. If the stored identity is absent or unparseable it is re-derived
// from the token and written back.
func (m *Manager) Hydrate(ctx context.Context) {
	next := Session{}
	defer func() { m.swap(next) }()

	rawToken, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		m.log.Warn(ctx, "session hydrate: reading token failed", "error", err)
		return
	}
	tok := string(rawToken)
	if tok == "" {
		return
	}
	next.Token = tok

	identity := m.loadStoredIdentity(ctx)
	if identity == nil {
		claims := token.Decode(tok)
		identity = &claims
		if raw, err := json.Marshal(claims); err == nil {
			if err := m.store.Set(ctx, KeyUser, raw); err != nil {
				m.log.Warn(ctx, "session hydrate: caching identity failed", "error", err)
			}
		}
	}
	next.Identity = identity
}

// loadStoredIdentity reads and parses the persisted identity. Unparseable
// values — including the literal "undefined"/"null" strings an earlier
// release used to write — count as absent and the bad entry is cleared.
func (m *Manager) loadStoredIdentity(ctx context.Context) *token.Claims {
	raw, err := m.store.Get(ctx, KeyUser)
	if err != nil {
		m.log.Warn(ctx, "session hydrate: reading identity failed", "error", err)
		return nil
	}
	s := string(raw)
	if s == "" || s == "undefined" || s == "null" {
		if s != "" {
			_ = m.store.Delete(ctx, KeyUser)
		}
		return nil
	}
	var claims token.Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		m.log.Warn(ctx, "session hydrate: discarding corrupt identity", "error", err)
		_ = m.store.Delete(ctx, KeyUser)
		return nil
	}
	return &claims
}

// Login authenticates against the remote endpoint and, on success, persists
// the credential plus identity and swaps the live session. The endpoint's
// response shape is not standardized: token and user are accepted both flat
// and nested under `result`.
func (m *Manager) Login(ctx context.Context, in api.LoginInput) (Session, error) {
	env, err := m.endpoint.Login(ctx, in)
	if err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}

	tok, user := extractAuthPayload(env)
	if tok == "" {
		return Session{}, ErrNoToken
	}

	var identity token.Claims
	if user != nil {
		identity = token.Claims{
			SubjectID:   user.SubjectID(),
			Email:       user.Email,
			DisplayName: user.DisplayName,
		}
	} else {
		identity = token.Decode(tok)
	}

	rawUser, err := json.Marshal(identity)
	if err != nil {
		return Session{}, fmt.Errorf("login: encoding identity: %w", err)
	}
	if err := m.store.SetMany(ctx, map[string][]byte{
		KeyToken: []byte(tok),
		KeyUser:  rawUser,
	}); err != nil {
		return Session{}, fmt.Errorf("login: persisting session: %w", err)
	}

	next := Session{Token: tok, Identity: &identity}
	m.swap(next)
	return next, nil
}

// extractAuthPayload picks the token and user out of whichever response shape
// the endpoint produced. Flat fields win over nested ones.
func extractAuthPayload(env *api.LoginEnvelope) (string, *api.UserPayload) {
	tok := env.Token
	user := env.User
	if env.Result != nil {
		if tok == "" {
			tok = env.Result.Token
		}
		if user == nil {
			user = env.Result.User
		}
	}
	return tok, user
}

// Register creates an account. It does not establish a session; the user
// logs in afterwards.
func (m *Manager) Register(ctx context.Context, in api.RegisterInput) error {
	if err := m.endpoint.Register(ctx, in); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout drops the live session and deletes the persisted keys. It cannot
// fail: store trouble is logged and the in-memory session goes anonymous
// regardless.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "logout: clearing session store failed", "error", err)
	}
	m.swap(Session{})
}
