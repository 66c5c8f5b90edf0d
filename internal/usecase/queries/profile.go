package queries

import (
	"context"

	"github.com/google/uuid"

	"wallet-console/internal/infra"
	"wallet-console/internal/pkg/errs"
)

var (
	ErrProfileNotFound = errs.New("profile not found")
	ErrProfileInactive = errs.New("profile inactive")
)

type ProfileQueries interface {
	GetCurrentProfile(ctx context.Context, profileID uuid.UUID) (*ProfileView, error)
	// FetchProfile resolves an identity to its profile without the
	// active-account gate; the session layer decides what an inactive
	// or missing profile means for the viewer.
	FetchProfile(ctx context.Context, profileID uuid.UUID) (*ProfileView, error)
	FindByEmail(ctx context.Context, email string) (*ProfileView, error)
	List(ctx context.Context) ([]ProfileView, error)
}

type ProfileReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	FindByEmail(ctx context.Context, email string) (*ProfileView, string, error)
	PasswordHashByID(ctx context.Context, id uuid.UUID) (string, error)
	List(ctx context.Context) ([]ProfileView, error)
}

type profileQueriesImpl struct {
	readStore ProfileReadStore
}

func NewProfileQueries(readStore ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{
		readStore: readStore,
	}
}

func (q *profileQueriesImpl) GetCurrentProfile(ctx context.Context, profileID uuid.UUID) (*ProfileView, error) {
	view, err := q.readStore.FindByID(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, ErrProfileInactive
	}

	return view, nil
}

func (q *profileQueriesImpl) FetchProfile(ctx context.Context, profileID uuid.UUID) (*ProfileView, error) {
	view, err := q.readStore.FindByID(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *profileQueriesImpl) FindByEmail(ctx context.Context, email string) (*ProfileView, error) {
	view, _, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *profileQueriesImpl) List(ctx context.Context) ([]ProfileView, error) {
	return q.readStore.List(ctx)
}
