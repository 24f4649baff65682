package auth

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var (
	// ErrNotSignedIn means no usable token was found.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrExpired means the stored JWT is past its exp claim.
	ErrExpired = errors.Wrap(ErrNotSignedIn, "token expired")
)

// Gate is checked once, before the list view is built.
type Gate struct {
	store *Store
	now   func() time.Time
}

func NewGate(store *Store) *Gate {
	return &Gate{store: store, now: time.Now}
}

// Authorize returns a Session when a valid token is present.
// Both ErrNotSignedIn and ErrExpired match errors.Is(err, ErrNotSignedIn).
func (g *Gate) Authorize() (*Session, error) {
	ti, err := g.store.Get()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if ti == nil || ti.Token == "" {
		return nil, ErrNotSignedIn
	}
	if ti.Expired(g.now()) {
		log.Info("stored token has expired", "source", ti.Source, "expires_at", ti.ExpiresAt)
		return nil, ErrExpired
	}
	return &Session{info: *ti, store: g.store}, nil
}

// Session is handed to the list view. Its only action is SignOut.
type Session struct {
	info  TokenInfo
	store *Store
}

// Source tells where the session token came from.
func (s *Session) Source() Source { return s.info.Source }

// Subject returns the user name found in the token, if any.
func (s *Session) Subject() string { return Subject(s.info.Token) }

// SignOut forgets the stored token. A token coming from TADA_TOKEN cannot
// be forgotten; signedOut is false in that case.
func (s *Session) SignOut() (signedOut bool, err error) {
	if s.info.Source == SourceEnv {
		log.Info("sign out requested, token comes from the environment", "env", EnvToken)
		return false, nil
	}
	if err := s.store.Delete(); err != nil {
		return false, errors.WithStack(err)
	}
	log.Info("signed out", "source", s.info.Source)
	return true, nil
}
