package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetTokenTTL = 30 * time.Minute

// TokenStore backs session invalidation and one-time tokens.
// Key formats:
//
//	revoked:<jti>     refresh token denylist, expires with the token
//	pwreset:<token>   password reset token -> profile id
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke denylists a refresh token id until its natural expiry.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	if err := s.client.Set(ctx, "revoked:"+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a refresh token id has been denylisted.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, "revoked:"+jti).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// IssueResetToken creates a one-time password reset token for profileID.
func (s *TokenStore) IssueResetToken(ctx context.Context, profileID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.client.Set(ctx, "pwreset:"+token, profileID, resetTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// ConsumeResetToken atomically fetches and deletes a reset token,
// returning the profile id it was issued for. An unknown or already
// consumed token returns redis.Nil via the wrapped error.
func (s *TokenStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	profileID, err := s.client.GetDel(ctx, "pwreset:"+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", err
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return profileID, nil
}
