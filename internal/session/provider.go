package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
)

// LocalProvider adapts the in-process auth commands to the AuthProvider
// surface, so embedded consoles run against the same backend code the
// HTTP API uses. It holds the refresh token of the live session so that
// SignOut can revoke it.
type LocalProvider struct {
	auth commands.AuthCommands

	mu           sync.Mutex
	refreshToken string
}

func NewLocalProvider(auth commands.AuthCommands) *LocalProvider {
	return &LocalProvider{auth: auth}
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	result, err := p.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	p.remember(result.TokenPair.RefreshToken)
	return &Identity{ID: result.ProfileID, Email: email}, nil
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password, fullName string) (*Identity, error) {
	// New accounts start with a workspace named after the registrant;
	// it can be renamed from the console afterwards.
	result, err := p.auth.Register(ctx, email, password, fullName, fullName)
	if err != nil {
		return nil, err
	}
	p.remember(result.TokenPair.RefreshToken)
	return &Identity{ID: result.ProfileID, Email: email}, nil
}

func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	token := p.refreshToken
	p.refreshToken = ""
	p.mu.Unlock()

	if token == "" {
		return nil
	}
	return p.auth.Logout(ctx, token)
}

func (p *LocalProvider) remember(refreshToken string) {
	p.mu.Lock()
	p.refreshToken = refreshToken
	p.mu.Unlock()
}

// LocalFetcher exposes the ungated profile query as a ProfileFetcher.
type LocalFetcher struct {
	q queries.ProfileQueries
}

func NewLocalFetcher(q queries.ProfileQueries) *LocalFetcher {
	return &LocalFetcher{q: q}
}

func (f *LocalFetcher) FetchProfile(ctx context.Context, profileID uuid.UUID) (*queries.ProfileView, error) {
	return f.q.FetchProfile(ctx, profileID)
}
