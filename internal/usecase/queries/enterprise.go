package queries

import (
	"context"

	"github.com/google/uuid"

	"wallet-console/internal/infra"
	"wallet-console/internal/pkg/errs"
)

var (
	ErrEnterpriseNotFound = errs.New("enterprise not found")
	ErrNoEnterprise       = errs.New("profile has no enterprise association")
)

type EnterpriseQueries interface {
	// GetForProfile returns the enterprise the profile is associated
	// with: the one it owns for ENTERPRISE accounts, the one it joined
	// for USER accounts.
	GetForProfile(ctx context.Context, profileID uuid.UUID) (*EnterpriseView, error)
	GetMembers(ctx context.Context, enterpriseID uuid.UUID) ([]MemberView, error)
}

type EnterpriseReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EnterpriseView, error)
	FindMembers(ctx context.Context, enterpriseID uuid.UUID) ([]MemberView, error)
}

type enterpriseQueriesImpl struct {
	profiles    ProfileReadStore
	enterprises EnterpriseReadStore
}

func NewEnterpriseQueries(profiles ProfileReadStore, enterprises EnterpriseReadStore) EnterpriseQueries {
	return &enterpriseQueriesImpl{
		profiles:    profiles,
		enterprises: enterprises,
	}
}

func (q *enterpriseQueriesImpl) GetForProfile(ctx context.Context, profileID uuid.UUID) (*EnterpriseView, error) {
	view, err := q.profiles.FindByID(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if view.EnterpriseID == nil {
		return nil, ErrNoEnterprise
	}

	ent, err := q.enterprises.FindByID(ctx, *view.EnterpriseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEnterpriseNotFound
		}
		return nil, err
	}

	return ent, nil
}

func (q *enterpriseQueriesImpl) GetMembers(ctx context.Context, enterpriseID uuid.UUID) ([]MemberView, error) {
	return q.enterprises.FindMembers(ctx, enterpriseID)
}
