package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"wallet-console/internal/domain/enterprise"
	"wallet-console/internal/pkg/clock"
)

// WalletAccessChecker is the backend predicate deciding whether a profile
// may use wallet features right now. The server-side implementation
// encapsulates individual subscriptions, enterprise-inherited
// subscriptions, expiry and active flags in a single check.
type WalletAccessChecker interface {
	HasWalletAccess(ctx context.Context, profileID uuid.UUID) (bool, error)
}

// ErrorReporter receives non-actionable diagnostics that must not block
// the caller.
type ErrorReporter interface {
	Report(ctx context.Context, op string, err error)
}

type SlogReporter struct{}

func (SlogReporter) Report(ctx context.Context, op string, err error) {
	slog.ErrorContext(ctx, "background check failed", "op", op, "error", err.Error())
}

// WalletStanding is the raw material for a support-side diagnosis:
// account and enterprise flags plus the latest subscription on each
// side, as domain values.
type WalletStanding struct {
	ProfileActive          bool
	EnterpriseActive       *bool
	OwnSubscription        *enterprise.Subscription
	EnterpriseSubscription *enterprise.Subscription
}

type WalletStandingReader interface {
	WalletStanding(ctx context.Context, profileID uuid.UUID) (*WalletStanding, error)
}

// WalletDiagnosis explains a wallet-access verdict for support staff:
// which grant path applied, and why the other did not.
type WalletDiagnosis struct {
	WalletAccess                  bool
	ProfileActive                 bool
	EnterpriseActive              *bool
	OwnSubscriptionCurrent        bool
	EnterpriseSubscriptionCurrent bool
	OwnSubscription               *SubscriptionView
	EnterpriseSubscription        *SubscriptionView
}

type WalletQueries interface {
	// HasWalletAccess evaluates wallet-feature eligibility. The result
	// is fail-closed: an absent identity resolves false without touching
	// the backend, and any backend error resolves false after being
	// reported exactly once.
	HasWalletAccess(ctx context.Context, profileID *uuid.UUID) bool
	// DiagnoseWalletAccess re-derives the verdict step by step so support
	// can tell a ticket holder which condition failed.
	DiagnoseWalletAccess(ctx context.Context, profileID uuid.UUID) (*WalletDiagnosis, error)
}

type walletQueriesImpl struct {
	checker  WalletAccessChecker
	standing WalletStandingReader
	reporter ErrorReporter
	clock    clock.Clock
}

func NewWalletQueries(checker WalletAccessChecker, standing WalletStandingReader, reporter ErrorReporter, clk clock.Clock) WalletQueries {
	return &walletQueriesImpl{
		checker:  checker,
		standing: standing,
		reporter: reporter,
		clock:    clk,
	}
}

func (q *walletQueriesImpl) HasWalletAccess(ctx context.Context, profileID *uuid.UUID) bool {
	if profileID == nil {
		return false
	}

	ok, err := q.checker.HasWalletAccess(ctx, *profileID)
	if err != nil {
		q.reporter.Report(ctx, "wallet_access_check", err)
		return false
	}

	return ok
}

func (q *walletQueriesImpl) DiagnoseWalletAccess(ctx context.Context, profileID uuid.UUID) (*WalletDiagnosis, error) {
	standing, err := q.standing.WalletStanding(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	diagnosis := &WalletDiagnosis{
		ProfileActive:    standing.ProfileActive,
		EnterpriseActive: standing.EnterpriseActive,
	}

	if sub := standing.OwnSubscription; sub != nil {
		diagnosis.OwnSubscriptionCurrent = sub.IsCurrent(now)
		diagnosis.OwnSubscription = subscriptionViewOf(sub)
	}
	if sub := standing.EnterpriseSubscription; sub != nil {
		diagnosis.EnterpriseSubscriptionCurrent = sub.IsCurrent(now)
		diagnosis.EnterpriseSubscription = subscriptionViewOf(sub)
	}

	enterpriseGrant := standing.ProfileActive &&
		standing.EnterpriseActive != nil && *standing.EnterpriseActive &&
		diagnosis.EnterpriseSubscriptionCurrent
	diagnosis.WalletAccess = diagnosis.OwnSubscriptionCurrent || enterpriseGrant

	return diagnosis, nil
}

func subscriptionViewOf(sub *enterprise.Subscription) *SubscriptionView {
	return &SubscriptionView{
		PlanName:  sub.PlanName,
		Status:    string(sub.Status),
		ExpiresAt: sub.ExpiresAt,
	}
}
