//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"wallet-console/internal/infra/db"
)

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE subscriptions, profiles, enterprises CASCADE")
	return err
}

func CreateTestEnterprise(t *testing.T, db db.DBTX, companyName string) uuid.UUID {
	t.Helper()

	enterpriseID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO enterprises (id, company_name) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		enterpriseID, companyName)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM enterprises WHERE company_name = $1", companyName).Scan(&enterpriseID)
	}

	return enterpriseID
}

// SetRole flips a registered account's role directly; accounts are always
// created through the register endpoint so password hashing stays in-process.
func SetRole(t *testing.T, db db.DBTX, email, role string) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE profiles SET role = $1 WHERE email = $2", role, email)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "no profile found for %s", email)
}

func ProfileIDByEmail(t *testing.T, db db.DBTX, email string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM profiles WHERE email = $1", email).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateSubscription attaches an active plan to either a profile or an
// enterprise; exactly one of the two owner IDs must be non-nil.
func CreateSubscription(t *testing.T, db db.DBTX, profileID, enterpriseID *uuid.UUID, status string, expiresAt time.Time) uuid.UUID {
	t.Helper()

	subID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO subscriptions (id, profile_id, enterprise_id, plan_name, status, expires_at)
		 VALUES ($1, $2, $3, 'standard', $4, $5)`,
		subID, profileID, enterpriseID, status, expiresAt)
	require.NoError(t, err)
	return subID
}
