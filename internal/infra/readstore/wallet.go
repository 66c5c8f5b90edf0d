package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wallet-console/internal/domain/enterprise"
	"wallet-console/internal/infra"
	"wallet-console/internal/infra/db"
	"wallet-console/internal/usecase/queries"
)

// WalletAccessStore answers the wallet eligibility check with a single
// SQL predicate. Access is granted when the profile's own subscription
// is active and unexpired, or when its enterprise holds such a
// subscription while both the enterprise and the profile itself are
// active.
type WalletAccessStore struct {
	db db.DBTX
}

func NewWalletAccessStore(dbtx db.DBTX) *WalletAccessStore {
	return &WalletAccessStore{db: dbtx}
}

const walletAccessQuery = `
SELECT EXISTS (
	SELECT 1
	FROM subscriptions s
	WHERE s.profile_id = $1
	  AND s.status = 'active'
	  AND (s.expires_at IS NULL OR s.expires_at > now())
) OR EXISTS (
	SELECT 1
	FROM profiles p
	JOIN enterprises e ON e.id = p.enterprise_id
	JOIN subscriptions s ON s.enterprise_id = e.id
	WHERE p.id = $1
	  AND p.is_active
	  AND e.is_active
	  AND s.status = 'active'
	  AND (s.expires_at IS NULL OR s.expires_at > now())
)`

func (r *WalletAccessStore) HasWalletAccess(ctx context.Context, profileID uuid.UUID) (bool, error) {
	var allowed bool
	if err := r.db.QueryRow(ctx, walletAccessQuery, profileID).Scan(&allowed); err != nil {
		return false, infra.WrapRepoErr("failed to evaluate wallet access", err)
	}
	return allowed, nil
}

// WalletStanding collects the flags and latest subscriptions the support
// diagnosis re-derives the verdict from.
func (r *WalletAccessStore) WalletStanding(ctx context.Context, profileID uuid.UUID) (*queries.WalletStanding, error) {
	row := r.db.QueryRow(ctx, `
		SELECT p.is_active, e.is_active
		FROM profiles p
		LEFT JOIN enterprises e ON e.id = p.enterprise_id
		WHERE p.id = $1`, profileID)

	var standing queries.WalletStanding
	if err := row.Scan(&standing.ProfileActive, &standing.EnterpriseActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load wallet standing", err)
	}

	own, err := r.latestSubscription(ctx, `
		SELECT s.id, s.profile_id, s.enterprise_id, s.plan_name, s.status, s.expires_at
		FROM subscriptions s
		WHERE s.profile_id = $1
		ORDER BY s.created_at DESC
		LIMIT 1`, profileID)
	if err != nil {
		return nil, err
	}
	standing.OwnSubscription = own

	ent, err := r.latestSubscription(ctx, `
		SELECT s.id, s.profile_id, s.enterprise_id, s.plan_name, s.status, s.expires_at
		FROM subscriptions s
		JOIN profiles p ON p.enterprise_id = s.enterprise_id
		WHERE p.id = $1
		ORDER BY s.created_at DESC
		LIMIT 1`, profileID)
	if err != nil {
		return nil, err
	}
	standing.EnterpriseSubscription = ent

	return &standing, nil
}

func (r *WalletAccessStore) latestSubscription(ctx context.Context, sql string, profileID uuid.UUID) (*enterprise.Subscription, error) {
	var sub enterprise.Subscription
	var status string
	err := r.db.QueryRow(ctx, sql, profileID).Scan(
		&sub.ID, &sub.ProfileID, &sub.EnterpriseID, &sub.PlanName, &status, &sub.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load subscription", err)
	}
	sub.Status = enterprise.SubscriptionStatus(status)
	return &sub, nil
}
