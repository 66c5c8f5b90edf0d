package commands

import (
	"context"

	"github.com/google/uuid"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/infra"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/queries"
	"wallet-console/internal/usecase/shared"
)

var (
	ErrEnterpriseNotFound = errs.New("enterprise not found")
	ErrNotEnterpriseUser  = errs.New("only USER accounts can join or leave an enterprise")
	ErrAlreadyMember      = errs.New("profile already belongs to an enterprise")
	ErrNotMember          = errs.New("profile has no enterprise association")
)

type EnterpriseCommands interface {
	// Join associates a USER profile with an enterprise.
	Join(ctx context.Context, profileID, enterpriseID uuid.UUID) error
	// OptOut clears the association. The caller must re-run the profile
	// fetch and the wallet-access evaluation afterwards; inherited
	// subscription benefits end here.
	OptOut(ctx context.Context, profileID uuid.UUID) error
}

type enterpriseCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.ProfileReadStore
}

func NewEnterpriseCommands(uow shared.UnitOfWork, readStore queries.ProfileReadStore) EnterpriseCommands {
	return &enterpriseCommandsImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (e *enterpriseCommandsImpl) Join(ctx context.Context, profileID, enterpriseID uuid.UUID) error {
	view, err := e.readStore.FindByID(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if view.Role != identity.RoleUser.String() {
		return ErrNotEnterpriseUser
	}
	if view.EnterpriseID != nil {
		return ErrAlreadyMember
	}

	return e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Enterprises().Exists(ctx, tx.DB(), enterpriseID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrEnterpriseNotFound
		}
		return tx.Profiles().SetEnterprise(ctx, tx.DB(), profileID, &enterpriseID)
	})
}

func (e *enterpriseCommandsImpl) OptOut(ctx context.Context, profileID uuid.UUID) error {
	view, err := e.readStore.FindByID(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if view.Role != identity.RoleUser.String() {
		return ErrNotEnterpriseUser
	}
	if view.EnterpriseID == nil {
		return ErrNotMember
	}

	return e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().SetEnterprise(ctx, tx.DB(), profileID, nil)
	})
}
