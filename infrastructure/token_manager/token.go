package token_manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
)

const DefaultTokenFile = "token.json"

// TokenService reads and writes the OAuth token the job refreshes between
// runs. The store never removes the file.
type TokenService interface {
	LoadToken() (*oauth2.Token, error)
	SaveToken(token *oauth2.Token) error
}

type fileTokenStore struct {
	path string
}

func NewTokenService(tokenFilePath string) TokenService {
	if tokenFilePath == "" {
		tokenFilePath = DefaultTokenFile
	}

	return &fileTokenStore{path: tokenFilePath}
}

func (s *fileTokenStore) LoadToken() (*oauth2.Token, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal(b, token); err != nil {
		return nil, fmt.Errorf("failed to decode token file %s: %w", s.path, err)
	}

	if token.RefreshToken == "" && token.AccessToken == "" {
		return nil, fmt.Errorf("token file %s holds neither an access nor a refresh token", s.path)
	}

	return token, nil
}

// SaveToken replaces the token file through a temp file in the same
// directory, so a crash mid-write leaves the previous token intact.
func (s *fileTokenStore) SaveToken(token *oauth2.Token) error {
	b, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create temp token file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write token file %s: %w", s.path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write token file %s: %w", s.path, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("unable to replace token file %s: %w", s.path, err)
	}

	return nil
}

type persistingTokenSource struct {
	mu    sync.Mutex
	base  oauth2.TokenSource
	store TokenService
	last  *oauth2.Token
}

// NewPersistingTokenSource saves every token base hands out that differs
// from the last one seen, starting from the token loaded off disk.
func NewPersistingTokenSource(store TokenService, loaded *oauth2.Token, base oauth2.TokenSource) oauth2.TokenSource {
	return &persistingTokenSource{
		base:  base,
		store: store,
		last:  loaded,
	}
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := p.base.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !tokenChanged(p.last, token) {
		return token, nil
	}

	if err := p.store.SaveToken(token); err != nil {
		return nil, fmt.Errorf("unable to save refreshed token: %w", err)
	}
	p.last = token

	return token, nil
}

func tokenChanged(old, fresh *oauth2.Token) bool {
	if old == nil {
		return true
	}

	return fresh.AccessToken != old.AccessToken ||
		(fresh.RefreshToken != "" && fresh.RefreshToken != old.RefreshToken)
}
