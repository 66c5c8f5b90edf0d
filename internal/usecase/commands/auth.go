package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"wallet-console/internal/domain/enterprise"
	"wallet-console/internal/domain/identity"
	"wallet-console/internal/domain/profile"
	"wallet-console/internal/infra"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/pkg/jwt"
	"wallet-console/internal/pkg/password"
	"wallet-console/internal/usecase/queries"
	"wallet-console/internal/usecase/shared"
)

var (
	ErrProfileNotFound      = errs.New("profile not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrProfileInactive      = errs.New("profile inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrTokenRevoked         = errs.New("token revoked")
	ErrResetTokenInvalid    = errs.New("reset token invalid or expired")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	ProfileID uuid.UUID
	TokenPair *TokenPair
}

// TokenStore is the backend session-invalidation surface (Redis).
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	IssueResetToken(ctx context.Context, profileID string) (string, error)
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

type AuthCommands interface {
	// Register creates an account with a default role of ENTERPRISE:
	// self-registered users become enterprise-owner accounts, not plain
	// users. The owned enterprise row is created in the same transaction.
	Register(ctx context.Context, email, pass, fullName, companyName string) (*LoginResult, error)
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout revokes the refresh token server-side. Revocation failure is
	// reported but never blocks the caller: local sign-out always wins.
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, profileID uuid.UUID, current, next string) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, next string) error
	VerifyEmail(ctx context.Context, profileID uuid.UUID) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.ProfileReadStore
	jwtService *jwt.Service
	tokens     TokenStore
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.ProfileReadStore, jwtService *jwt.Service, tokens TokenStore) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		tokens:     tokens,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, emailStr, passStr, fullNameStr, companyName string) (*LoginResult, error) {
	email, err := profile.NewEmail(emailStr)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	pass, err := profile.NewPassword(passStr)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	fullName, err := profile.NewFullName(fullNameStr)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	if companyName == "" {
		companyName = fullName.Value()
	}
	ent, err := enterprise.NewEnterprise(companyName)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	entID := ent.ID()
	prof := profile.NewProfile(email, hash, fullName, identity.RoleEnterprise, &entID)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Enterprises().Create(ctx, tx.DB(), ent); err != nil {
			return err
		}
		return tx.Profiles().Create(ctx, tx.DB(), prof)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	tokenPair, err := a.issueTokens(prof.ID(), prof.Role())
	if err != nil {
		return nil, err
	}

	return &LoginResult{ProfileID: prof.ID(), TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, emailStr, passStr string) (*LoginResult, error) {
	credentials, err := profile.NewCredentials(emailStr, passStr)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	view, err := a.validateProfile(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := identity.NewRole(view.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	tokenPair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Profiles().UpdateLastLogin(ctx, tx.DB(), view.ID); updateErr != nil {
			slog.Warn("failed to update last login", "profile_id", view.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "profile_id", view.ID, "error", err.Error())
		// Continue without failing - login was successful, only last_login update failed
	}

	return &LoginResult{ProfileID: view.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	revoked, err := a.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		// Fail closed: an unreachable denylist must not mint new tokens.
		return nil, ErrTokenValidation
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	role, err := identity.NewRole(claims.Role)
	if err != nil {
		return nil, ErrTokenValidation
	}

	// Validate profile still exists and is active
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrProfileNotFound
	}

	if !view.IsActive {
		return nil, ErrProfileInactive
	}

	// Rotate: the old refresh token is revoked for its remaining lifetime.
	if claims.ExpiresAt != nil {
		if err := a.tokens.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			slog.Warn("failed to revoke rotated refresh token", "error", err.Error())
		}
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		// An invalid token cannot be replayed; nothing to revoke.
		return nil
	}

	if claims.ExpiresAt == nil {
		return nil
	}

	if err := a.tokens.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		slog.Warn("failed to revoke refresh token on logout", "error", err.Error())
		return err
	}
	return nil
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, profileID uuid.UUID, current, next string) error {
	nextPass, err := profile.NewPassword(next)
	if err != nil {
		return ErrAuthenticationFailed
	}

	hash, err := a.readStore.PasswordHashByID(ctx, profileID)
	if err != nil {
		return ErrProfileNotFound
	}

	if err := password.ComparePassword(hash, current); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := password.HashPassword(nextPass.Value())
	if err != nil {
		return ErrAuthenticationFailed
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().UpdatePassword(ctx, tx.DB(), profileID, newHash)
	})
}

func (a *authCommandsImpl) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	view, _, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the address is registered.
		return "", nil
	}

	return a.tokens.IssueResetToken(ctx, view.ID.String())
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, next string) error {
	nextPass, err := profile.NewPassword(next)
	if err != nil {
		return ErrAuthenticationFailed
	}

	profileIDStr, err := a.tokens.ConsumeResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrResetTokenInvalid
		}
		return err
	}

	profileID, err := uuid.Parse(profileIDStr)
	if err != nil {
		return ErrResetTokenInvalid
	}

	newHash, err := password.HashPassword(nextPass.Value())
	if err != nil {
		return ErrAuthenticationFailed
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().UpdatePassword(ctx, tx.DB(), profileID, newHash)
	})
}

func (a *authCommandsImpl) VerifyEmail(ctx context.Context, profileID uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().MarkEmailVerified(ctx, tx.DB(), profileID)
	})
}

func (a *authCommandsImpl) validateProfile(ctx context.Context, credentials profile.Credentials) (*queries.ProfileView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrProfileNotFound
	}

	if !view.IsActive {
		return nil, ErrProfileInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func (a *authCommandsImpl) issueTokens(profileID uuid.UUID, role identity.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(profileID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(profileID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
