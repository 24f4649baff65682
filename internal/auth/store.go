package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

const (
	keyringService = "tada"
	keyringUser    = "default"
)

// Store keeps the token in the OS keyring, or in a 0600 JSON file when
// the keyring is disabled or unavailable. TADA_TOKEN beats both.
type Store struct {
	file       string
	useKeyring bool
	now        func() time.Time
}

func NewStore(file string, useKeyring bool) *Store {
	return &Store{file: file, useKeyring: useKeyring, now: time.Now}
}

// Get returns the current token, or nil when nobody is signed in.
func (s *Store) Get() (*TokenInfo, error) {
	if env := strings.TrimSpace(os.Getenv(EnvToken)); env != "" {
		token := stripBearer(env)
		return &TokenInfo{Token: token, Source: SourceEnv, ExpiresAt: expiry(token)}, nil
	}

	if s.useKeyring {
		ti, err := s.getKeyring()
		switch {
		case err == nil && ti != nil:
			return ti, nil
		case err != nil:
			log.Debug("keyring unavailable, trying credential file", "err", err)
		}
	}

	return s.getFile()
}

func (s *Store) getKeyring() (*TokenInfo, error) {
	secret, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	var ti TokenInfo
	if err := json.Unmarshal([]byte(secret), &ti); err != nil {
		return nil, errors.Wrap(err, "parse keyring entry")
	}
	ti.Token = stripBearer(ti.Token)
	ti.Source = SourceKeyring
	return &ti, nil
}

func (s *Store) getFile() (*TokenInfo, error) {
	b, err := os.ReadFile(s.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read credentials")
	}
	var ti TokenInfo
	if err := json.Unmarshal(b, &ti); err != nil {
		return nil, errors.Wrap(err, "parse credentials")
	}
	ti.Token = stripBearer(ti.Token)
	ti.Source = SourceFile
	return &ti, nil
}

// Set stores token and returns where it went.
func (s *Store) Set(token string) (Source, error) {
	token = stripBearer(strings.TrimSpace(token))
	if token == "" {
		return "", errors.New("empty token")
	}

	ti := TokenInfo{
		Token:     token,
		CreatedAt: s.now(),
		ExpiresAt: expiry(token),
	}

	if s.useKeyring {
		ti.Source = SourceKeyring
		b, err := json.Marshal(ti)
		if err != nil {
			return "", errors.Wrap(err, "marshal")
		}
		err = keyring.Set(keyringService, keyringUser, string(b))
		if err == nil {
			return SourceKeyring, nil
		}
		log.Warn("could not store token in keyring, using credential file", "err", err)
	}

	ti.Source = SourceFile
	if err := os.MkdirAll(filepath.Dir(s.file), 0o700); err != nil {
		return "", errors.Wrap(err, "mkdir")
	}
	b, err := json.MarshalIndent(ti, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal")
	}
	if err := os.WriteFile(s.file, b, 0o600); err != nil {
		return "", errors.Wrap(err, "write")
	}
	return SourceFile, nil
}

// Delete removes the stored token from both the keyring and the file.
// Nothing stored is not an error. A keyring failure is returned unless the
// token was found in the credential file and removed from there.
func (s *Store) Delete() error {
	var keyringErr error
	if s.useKeyring {
		if err := keyring.Delete(keyringService, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			keyringErr = errors.Wrap(err, "delete from keyring")
		}
	}

	err := os.Remove(s.file)
	switch {
	case err == nil:
		if keyringErr != nil {
			log.Warn("token removed from credential file, keyring not reachable", "err", keyringErr)
		}
		return nil
	case errors.Is(err, os.ErrNotExist):
		return keyringErr
	default:
		return errors.Wrap(err, "remove")
	}
}
