package token_manager

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type sequenceTokenSource struct {
	tokens []*oauth2.Token
	err    error
	calls  int
}

func (s *sequenceTokenSource) Token() (*oauth2.Token, error) {
	if s.err != nil {
		return nil, s.err
	}

	token := s.tokens[s.calls]
	if s.calls < len(s.tokens)-1 {
		s.calls++
	}

	return token, nil
}

type countingStore struct {
	TokenService
	saves int
}

func (c *countingStore) SaveToken(token *oauth2.Token) error {
	c.saves++
	return c.TokenService.SaveToken(token)
}

func TestSaveAndLoadToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	svc := NewTokenService(path)

	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SaveToken(&oauth2.Token{AccessToken: "at", RefreshToken: "rt", Expiry: expiry}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	token, err := svc.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "at", token.AccessToken)
	assert.Equal(t, "rt", token.RefreshToken)
	assert.True(t, expiry.Equal(token.Expiry))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSaveTokenOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	svc := NewTokenService(path)

	require.NoError(t, svc.SaveToken(&oauth2.Token{AccessToken: "first-with-a-long-value", RefreshToken: "rt"}))
	require.NoError(t, svc.SaveToken(&oauth2.Token{AccessToken: "second", RefreshToken: "rt"}))

	token, err := svc.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "second", token.AccessToken)
}

func TestLoadTokenMissingFile(t *testing.T) {
	_, err := NewTokenService(filepath.Join(t.TempDir(), "token.json")).LoadToken()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTokenRejectsEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token_type":"Bearer"}`), 0600))

	_, err := NewTokenService(path).LoadToken()
	assert.Error(t, err)
}

func TestDefaultTokenPath(t *testing.T) {
	svc := NewTokenService("").(*fileTokenStore)
	assert.Equal(t, DefaultTokenFile, svc.path)
}

func TestPersistingTokenSourceSavesOnlyChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := &countingStore{TokenService: NewTokenService(path)}

	loaded := &oauth2.Token{AccessToken: "old", RefreshToken: "rt"}
	base := &sequenceTokenSource{tokens: []*oauth2.Token{
		{AccessToken: "old", RefreshToken: "rt"},
		{AccessToken: "new", RefreshToken: "rt"},
		{AccessToken: "new", RefreshToken: "rt"},
	}}

	src := NewPersistingTokenSource(store, loaded, base)

	for i := 0; i < 3; i++ {
		_, err := src.Token()
		require.NoError(t, err)
	}

	assert.Equal(t, 1, store.saves)

	saved, err := store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "new", saved.AccessToken)
	assert.Equal(t, "rt", saved.RefreshToken)
}

func TestPersistingTokenSourceKeepsFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenService(path)
	loaded := &oauth2.Token{AccessToken: "old", RefreshToken: "rt"}
	require.NoError(t, store.SaveToken(loaded))

	src := NewPersistingTokenSource(store, loaded, &sequenceTokenSource{err: errors.New("503 Service Unavailable")})

	_, err := src.Token()
	require.Error(t, err)

	saved, err := store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "rt", saved.RefreshToken)
}
