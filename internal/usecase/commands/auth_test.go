//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-console/internal/domain/enterprise"
	"wallet-console/internal/domain/identity"
	"wallet-console/internal/domain/profile"
	"wallet-console/internal/infra"
	"wallet-console/internal/infra/db"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/pkg/jwt"
	"wallet-console/internal/pkg/password"
	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
	"wallet-console/internal/usecase/shared"
)

type fakeProfileRepo struct {
	created   []*profile.Profile
	createErr error
	passwords map[uuid.UUID]string
	logins    int
}

func (r *fakeProfileRepo) Create(_ context.Context, _ db.DBTX, p *profile.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProfileRepo) UpdateContact(_ context.Context, _ db.DBTX, _ uuid.UUID, _, _ string) error {
	return nil
}

func (r *fakeProfileRepo) UpdatePassword(_ context.Context, _ db.DBTX, id uuid.UUID, hash string) error {
	if r.passwords == nil {
		r.passwords = map[uuid.UUID]string{}
	}
	r.passwords[id] = hash
	return nil
}

func (r *fakeProfileRepo) SetEnterprise(_ context.Context, _ db.DBTX, _ uuid.UUID, _ *uuid.UUID) error {
	return nil
}

func (r *fakeProfileRepo) SetActive(_ context.Context, _ db.DBTX, _ uuid.UUID, _ bool) error {
	return nil
}

func (r *fakeProfileRepo) SetRole(_ context.Context, _ db.DBTX, _ uuid.UUID, _ identity.Role) error {
	return nil
}

func (r *fakeProfileRepo) MarkEmailVerified(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

func (r *fakeProfileRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	r.logins++
	return nil
}

type fakeEnterpriseRepo struct {
	created []*enterprise.Enterprise
	exists  bool
}

func (r *fakeEnterpriseRepo) Create(_ context.Context, _ db.DBTX, e *enterprise.Enterprise) error {
	r.created = append(r.created, e)
	return nil
}

func (r *fakeEnterpriseRepo) Exists(_ context.Context, _ db.DBTX, _ uuid.UUID) (bool, error) {
	return r.exists, nil
}

type fakeTx struct {
	profiles    *fakeProfileRepo
	enterprises *fakeEnterpriseRepo
}

func (t *fakeTx) Profiles() shared.ProfileRepository       { return t.profiles }
func (t *fakeTx) Enterprises() shared.EnterpriseRepository { return t.enterprises }
func (t *fakeTx) DB() db.DBTX                              { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeReadStore struct {
	views  map[string]*queries.ProfileView // keyed by email
	hashes map[uuid.UUID]string
}

func (s *fakeReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	for _, v := range s.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("profile not found", errs.New("no rows"), infra.KindNotFound)
}

func (s *fakeReadStore) FindByEmail(_ context.Context, email string) (*queries.ProfileView, string, error) {
	v, ok := s.views[email]
	if !ok {
		return nil, "", infra.WrapRepoErr("profile not found", errs.New("no rows"), infra.KindNotFound)
	}
	return v, s.hashes[v.ID], nil
}

func (s *fakeReadStore) PasswordHashByID(_ context.Context, id uuid.UUID) (string, error) {
	hash, ok := s.hashes[id]
	if !ok {
		return "", infra.WrapRepoErr("profile not found", errs.New("no rows"), infra.KindNotFound)
	}
	return hash, nil
}

func (s *fakeReadStore) List(_ context.Context) ([]queries.ProfileView, error) {
	return nil, nil
}

type fakeTokenStore struct {
	revoked     map[string]bool
	revokeErr   error
	resetTokens map[string]string
}

func (s *fakeTokenStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	if s.revokeErr != nil {
		return s.revokeErr
	}
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[jti] = true
	return nil
}

func (s *fakeTokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

func (s *fakeTokenStore) IssueResetToken(_ context.Context, profileID string) (string, error) {
	if s.resetTokens == nil {
		s.resetTokens = map[string]string{}
	}
	token := "reset-" + profileID
	s.resetTokens[token] = profileID
	return token, nil
}

func (s *fakeTokenStore) ConsumeResetToken(_ context.Context, token string) (string, error) {
	id, ok := s.resetTokens[token]
	if !ok {
		return "", goredis.Nil
	}
	delete(s.resetTokens, token)
	return id, nil
}

func newJWTService(t *testing.T) *jwt.Service {
	t.Helper()
	return jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute, 168*time.Hour)
}

type authFixture struct {
	cmds        commands.AuthCommands
	profiles    *fakeProfileRepo
	enterprises *fakeEnterpriseRepo
	readStore   *fakeReadStore
	tokens      *fakeTokenStore
	jwtSvc      *jwt.Service
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	profiles := &fakeProfileRepo{}
	enterprises := &fakeEnterpriseRepo{exists: true}
	readStore := &fakeReadStore{views: map[string]*queries.ProfileView{}, hashes: map[uuid.UUID]string{}}
	tokens := &fakeTokenStore{}
	jwtSvc := newJWTService(t)

	uow := &fakeUoW{tx: &fakeTx{profiles: profiles, enterprises: enterprises}}
	return &authFixture{
		cmds:        commands.NewAuthCommands(uow, readStore, jwtSvc, tokens),
		profiles:    profiles,
		enterprises: enterprises,
		readStore:   readStore,
		tokens:      tokens,
		jwtSvc:      jwtSvc,
	}
}

func (f *authFixture) seedAccount(t *testing.T, email, pass, role string, active bool) *queries.ProfileView {
	t.Helper()
	hash, err := password.HashPassword(pass)
	require.NoError(t, err)

	view := &queries.ProfileView{
		ID:       uuid.New(),
		Email:    email,
		FullName: "Seeded Account",
		Role:     role,
		IsActive: active,
	}
	f.readStore.views[email] = view
	f.readStore.hashes[view.ID] = hash
	return view
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("self-registration defaults to the ENTERPRISE role", func(t *testing.T) {
		f := newAuthFixture(t)

		result, err := f.cmds.Register(ctx, "owner@example.com", "password123", "Pat Owner", "Owner Corp")
		require.NoError(t, err)
		require.NotNil(t, result)

		require.Len(t, f.profiles.created, 1)
		created := f.profiles.created[0]
		assert.Equal(t, identity.RoleEnterprise, created.Role())

		require.Len(t, f.enterprises.created, 1)
		assert.Equal(t, "Owner Corp", f.enterprises.created[0].CompanyName())
		require.NotNil(t, created.EnterpriseID())
		assert.Equal(t, f.enterprises.created[0].ID(), *created.EnterpriseID())

		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
	})

	t.Run("duplicate email maps to ErrEmailTaken", func(t *testing.T) {
		f := newAuthFixture(t)
		f.profiles.createErr = infra.WrapRepoErr("insert profile", errs.New("unique violation"), infra.KindDuplicateKey)

		_, err := f.cmds.Register(ctx, "dup@example.com", "password123", "Dup", "Dup Co")
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("weak password is rejected before any write", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.Register(ctx, "weak@example.com", "short", "Weak", "")
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
		assert.Empty(t, f.profiles.created)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		f := newAuthFixture(t)
		view := f.seedAccount(t, "user@example.com", "password123", "USER", true)

		result, err := f.cmds.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, view.ID, result.ProfileID)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.Equal(t, 1, f.profiles.logins)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		f := newAuthFixture(t)
		f.seedAccount(t, "user@example.com", "password123", "USER", true)

		_, wrongPass := f.cmds.Login(ctx, "user@example.com", "not-the-password")
		_, unknown := f.cmds.Login(ctx, "nobody@example.com", "password123")

		assert.ErrorIs(t, wrongPass, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		f.seedAccount(t, "gone@example.com", "password123", "USER", false)

		_, err := f.cmds.Login(ctx, "gone@example.com", "password123")
		assert.ErrorIs(t, err, commands.ErrProfileInactive)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	login := func(t *testing.T, f *authFixture) *commands.LoginResult {
		t.Helper()
		f.seedAccount(t, "user@example.com", "password123", "USER", true)
		result, err := f.cmds.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		return result
	}

	t.Run("rotation revokes the spent refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		result := login(t, f)

		pair, err := f.cmds.RefreshToken(ctx, result.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)

		// Replaying the original refresh token must now fail.
		_, err = f.cmds.RefreshToken(ctx, result.TokenPair.RefreshToken)
		assert.ErrorIs(t, err, commands.ErrTokenRevoked)
	})

	t.Run("an access token is not accepted as a refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		result := login(t, f)

		_, err := f.cmds.RefreshToken(ctx, result.TokenPair.AccessToken)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.cmds.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.seedAccount(t, "user@example.com", "password123", "USER", true)
		result, err := f.cmds.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, f.cmds.Logout(ctx, result.TokenPair.RefreshToken))
		assert.Len(t, f.tokens.revoked, 1)
	})

	t.Run("an invalid token is a no-op, not an error", func(t *testing.T) {
		f := newAuthFixture(t)
		assert.NoError(t, f.cmds.Logout(ctx, "expired-or-garbage"))
	})

	t.Run("an empty token is a no-op", func(t *testing.T) {
		f := newAuthFixture(t)
		assert.NoError(t, f.cmds.Logout(ctx, ""))
	})
}

func TestPasswordLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("change verifies the current password first", func(t *testing.T) {
		f := newAuthFixture(t)
		view := f.seedAccount(t, "user@example.com", "password123", "USER", true)

		err := f.cmds.ChangePassword(ctx, view.ID, "wrong-password", "newpassword1")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

		require.NoError(t, f.cmds.ChangePassword(ctx, view.ID, "password123", "newpassword1"))
		newHash := f.profiles.passwords[view.ID]
		require.NotEmpty(t, newHash)
		assert.NoError(t, password.ComparePassword(newHash, "newpassword1"))
	})

	t.Run("reset request never reveals whether the email exists", func(t *testing.T) {
		f := newAuthFixture(t)
		f.seedAccount(t, "user@example.com", "password123", "USER", true)

		known, err := f.cmds.RequestPasswordReset(ctx, "user@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, known)

		unknown, err := f.cmds.RequestPasswordReset(ctx, "stranger@example.com")
		require.NoError(t, err)
		assert.Empty(t, unknown)
	})

	t.Run("reset tokens are single use", func(t *testing.T) {
		f := newAuthFixture(t)
		view := f.seedAccount(t, "user@example.com", "password123", "USER", true)

		token, err := f.cmds.RequestPasswordReset(ctx, "user@example.com")
		require.NoError(t, err)

		require.NoError(t, f.cmds.ResetPassword(ctx, token, "freshpassword1"))
		assert.NotEmpty(t, f.profiles.passwords[view.ID])

		err = f.cmds.ResetPassword(ctx, token, "anotherpassword1")
		assert.ErrorIs(t, err, commands.ErrResetTokenInvalid)
	})
}
