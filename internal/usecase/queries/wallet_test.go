//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-console/internal/domain/enterprise"
	"wallet-console/internal/infra"
	"wallet-console/internal/pkg/clock"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/queries"
)

type stubChecker struct {
	allowed bool
	err     error
	calls   int
}

func (c *stubChecker) HasWalletAccess(_ context.Context, _ uuid.UUID) (bool, error) {
	c.calls++
	return c.allowed, c.err
}

type stubStanding struct {
	standing *queries.WalletStanding
	err      error
}

func (s *stubStanding) WalletStanding(_ context.Context, _ uuid.UUID) (*queries.WalletStanding, error) {
	return s.standing, s.err
}

type recordingReporter struct {
	reports []string
}

func (r *recordingReporter) Report(_ context.Context, op string, _ error) {
	r.reports = append(r.reports, op)
}

func newWalletQueries(checker *stubChecker, standing *stubStanding, reporter *recordingReporter, now time.Time) queries.WalletQueries {
	if standing == nil {
		standing = &stubStanding{}
	}
	return queries.NewWalletQueries(checker, standing, reporter, clock.NewMockClock(now))
}

func TestHasWalletAccess(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no identity denies without touching the backend", func(t *testing.T) {
		checker := &stubChecker{allowed: true}
		reporter := &recordingReporter{}
		q := newWalletQueries(checker, nil, reporter, now)

		assert.False(t, q.HasWalletAccess(ctx, nil))
		assert.Zero(t, checker.calls, "backend must not be consulted for an absent identity")
		assert.Empty(t, reporter.reports)
	})

	t.Run("backend verdict passes through", func(t *testing.T) {
		checker := &stubChecker{allowed: true}
		q := newWalletQueries(checker, nil, &recordingReporter{}, now)

		assert.True(t, q.HasWalletAccess(ctx, &profileID))
		assert.Equal(t, 1, checker.calls)
	})

	t.Run("backend denial passes through", func(t *testing.T) {
		checker := &stubChecker{allowed: false}
		q := newWalletQueries(checker, nil, &recordingReporter{}, now)

		assert.False(t, q.HasWalletAccess(ctx, &profileID))
	})

	t.Run("evaluation failure denies and reports exactly once", func(t *testing.T) {
		checker := &stubChecker{allowed: true, err: errs.New("subscription backend down")}
		reporter := &recordingReporter{}
		q := newWalletQueries(checker, nil, reporter, now)

		assert.False(t, q.HasWalletAccess(ctx, &profileID), "errors must read as denied")
		assert.Equal(t, []string{"wallet_access_check"}, reporter.reports)
	})
}

func TestDiagnoseWalletAccess(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-time.Hour)
	active := true
	inactive := false

	ownSub := func(status enterprise.SubscriptionStatus, expiresAt *time.Time) *enterprise.Subscription {
		id := uuid.New()
		return &enterprise.Subscription{ID: uuid.New(), ProfileID: &id, PlanName: "standard", Status: status, ExpiresAt: expiresAt}
	}

	t.Run("a current personal subscription grants access", func(t *testing.T) {
		standing := &stubStanding{standing: &queries.WalletStanding{
			ProfileActive:   true,
			OwnSubscription: ownSub(enterprise.SubscriptionActive, &future),
		}}
		q := newWalletQueries(&stubChecker{}, standing, &recordingReporter{}, now)

		diagnosis, err := q.DiagnoseWalletAccess(ctx, profileID)
		require.NoError(t, err)
		assert.True(t, diagnosis.WalletAccess)
		assert.True(t, diagnosis.OwnSubscriptionCurrent)
		require.NotNil(t, diagnosis.OwnSubscription)
		assert.Equal(t, "standard", diagnosis.OwnSubscription.PlanName)
	})

	t.Run("an expired enterprise subscription denies access", func(t *testing.T) {
		standing := &stubStanding{standing: &queries.WalletStanding{
			ProfileActive:          true,
			EnterpriseActive:       &active,
			EnterpriseSubscription: ownSub(enterprise.SubscriptionActive, &past),
		}}
		q := newWalletQueries(&stubChecker{}, standing, &recordingReporter{}, now)

		diagnosis, err := q.DiagnoseWalletAccess(ctx, profileID)
		require.NoError(t, err)
		assert.False(t, diagnosis.WalletAccess)
		assert.False(t, diagnosis.EnterpriseSubscriptionCurrent)
	})

	t.Run("a deactivated enterprise blocks an otherwise current grant", func(t *testing.T) {
		standing := &stubStanding{standing: &queries.WalletStanding{
			ProfileActive:          true,
			EnterpriseActive:       &inactive,
			EnterpriseSubscription: ownSub(enterprise.SubscriptionActive, &future),
		}}
		q := newWalletQueries(&stubChecker{}, standing, &recordingReporter{}, now)

		diagnosis, err := q.DiagnoseWalletAccess(ctx, profileID)
		require.NoError(t, err)
		assert.False(t, diagnosis.WalletAccess)
		assert.True(t, diagnosis.EnterpriseSubscriptionCurrent, "the subscription itself is current; the enterprise flag is the blocker")
	})

	t.Run("an inactive profile blocks the enterprise grant but not a personal one", func(t *testing.T) {
		standing := &stubStanding{standing: &queries.WalletStanding{
			ProfileActive:          false,
			EnterpriseActive:       &active,
			EnterpriseSubscription: ownSub(enterprise.SubscriptionActive, &future),
		}}
		q := newWalletQueries(&stubChecker{}, standing, &recordingReporter{}, now)

		diagnosis, err := q.DiagnoseWalletAccess(ctx, profileID)
		require.NoError(t, err)
		assert.False(t, diagnosis.WalletAccess)
	})

	t.Run("a missing profile propagates not-found", func(t *testing.T) {
		standing := &stubStanding{err: infra.WrapRepoErr("profile not found", errs.New("no rows"), infra.KindNotFound)}
		q := newWalletQueries(&stubChecker{}, standing, &recordingReporter{}, now)

		_, err := q.DiagnoseWalletAccess(ctx, profileID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
