package session

import (
	"time"

	"ThynxSite/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	CookieName = "thynx_sid"
	LocalsKey  = "admin_session"

	keyAuthenticated = "adminAuthenticated"
	keyPinVersion    = "pinVersion"
	keyCSRFToken     = "csrfToken"
)

type Config struct {
	// Storage defaults to fiber's in-memory storage when nil.
	Storage      fiber.Storage
	Expiration   time.Duration
	CookieSecure bool
}

type Manager struct {
	store *session.Store
	utils utils.IUtils
}

func New(cfg Config, u utils.IUtils) *Manager {
	if cfg.Expiration <= 0 {
		cfg.Expiration = 12 * time.Hour
	}

	store := session.New(session.Config{
		Storage:        cfg.Storage,
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + CookieName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	})

	return &Manager{store: store, utils: u}
}

// State is the admin view of one caller's session. It is loaded once per
// request and cached in the fiber locals so guards and handlers share it.
type State struct {
	sess  *session.Session
	utils utils.IUtils
	dirty bool
}

func (m *Manager) Load(c *fiber.Ctx) (*State, error) {
	if st, ok := c.Locals(LocalsKey).(*State); ok && st.sess != nil {
		return st, nil
	}

	sess, err := m.store.Get(c)
	if err != nil {
		return nil, err
	}

	st := &State{sess: sess, utils: m.utils}
	c.Locals(LocalsKey, st)
	return st, nil
}

// AuthenticatedFor reports whether the session holds the admin flag for the
// PIN identified by pinVersion. A session authenticated against a PIN that
// was since reset or replaced is not authenticated, and an empty pinVersion
// (no PIN configured) never matches.
func (s *State) AuthenticatedFor(pinVersion string) bool {
	if s.sess == nil || pinVersion == "" {
		return false
	}
	auth, ok := s.sess.Get(keyAuthenticated).(bool)
	if !ok || !auth {
		return false
	}
	version, _ := s.sess.Get(keyPinVersion).(string)
	return version == pinVersion
}

func (s *State) CSRFToken() string {
	if s.sess == nil {
		return ""
	}
	token, _ := s.sess.Get(keyCSRFToken).(string)
	return token
}

// EnsureCSRFToken returns the session's token, minting one first if the
// session has none.
func (s *State) EnsureCSRFToken() (string, error) {
	if token := s.CSRFToken(); token != "" {
		return token, nil
	}

	token, err := s.utils.NewCSRFToken()
	if err != nil {
		return "", err
	}
	s.sess.Set(keyCSRFToken, token)
	s.dirty = true
	return token, nil
}

// Authenticate marks the session as admin for the given PIN version and
// returns its CSRF token.
func (s *State) Authenticate(pinVersion string) (string, error) {
	s.sess.Set(keyAuthenticated, true)
	s.sess.Set(keyPinVersion, pinVersion)
	s.dirty = true
	return s.EnsureCSRFToken()
}

// Clear drops the admin flag, its PIN version and the CSRF token.
func (s *State) Clear() {
	s.sess.Delete(keyAuthenticated)
	s.sess.Delete(keyPinVersion)
	s.sess.Delete(keyCSRFToken)
	s.dirty = true
}

// Save persists pending changes. The underlying session is released by
// fiber afterwards, so Save must be the last call on the state.
func (s *State) Save() error {
	if s.sess == nil || !s.dirty {
		return nil
	}
	err := s.sess.Save()
	s.sess = nil
	return err
}

// Close releases the backing storage.
func (m *Manager) Close() error {
	if m.store.Storage == nil {
		return nil
	}
	return m.store.Storage.Close()
}
