package auth

import (
	"context"
	"errors"
	"fmt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
	"os"
	"youtube_etl/infrastructure/token_manager"
)

var (
	ErrNoCredentials = errors.New("no youtube credentials configured: set an API key or a token file with a client secret")
	// ErrTokenRevoked means the token endpoint rejected the refresh token
	// itself; a new token file has to be issued out of band.
	ErrTokenRevoked = errors.New("youtube refresh token was revoked or expired")
)

type authenticationServiceImpl struct {
	apiKey               string
	clientSecretFilePath string
	tokenService         token_manager.TokenService
}

type AuthenticationService interface {
	ClientOptions(ctx context.Context) ([]option.ClientOption, error)
}

// NewAuthenticationService prefers apiKey; tokenService and clientSecretFilePath
// are only consulted when no key is given.
func NewAuthenticationService(apiKey, clientSecretFilePath string, tokenService token_manager.TokenService) AuthenticationService {
	return &authenticationServiceImpl{
		apiKey:               apiKey,
		clientSecretFilePath: clientSecretFilePath,
		tokenService:         tokenService,
	}
}

func (a *authenticationServiceImpl) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if a.apiKey != "" {
		return []option.ClientOption{option.WithAPIKey(a.apiKey)}, nil
	}

	if a.tokenService == nil || a.clientSecretFilePath == "" {
		return nil, ErrNoCredentials
	}

	tokenSource, err := a.tokenSource(ctx)
	if err != nil {
		return nil, err
	}

	return []option.ClientOption{option.WithTokenSource(tokenSource)}, nil
}

func (a *authenticationServiceImpl) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	config, err := loadConfig([]string{youtube.YoutubeReadonlyScope}, a.clientSecretFilePath)
	if err != nil {
		return nil, err
	}

	token, err := a.tokenService.LoadToken()
	if err != nil {
		return nil, fmt.Errorf("unable to load token: %w", err)
	}

	tokenSource := token_manager.NewPersistingTokenSource(a.tokenService, token, config.TokenSource(ctx, token))
	if _, err := tokenSource.Token(); err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
			return nil, fmt.Errorf("%w: %w", ErrTokenRevoked, err)
		}
		return nil, fmt.Errorf("unable to refresh token: %w", err)
	}

	return tokenSource, nil
}

func loadConfig(scopes []string, clientSecretFilePath string) (*oauth2.Config, error) {
	b, err := os.ReadFile(clientSecretFilePath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file (%s): %w", clientSecretFilePath, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file: %w", err)
	}

	return config, nil
}
