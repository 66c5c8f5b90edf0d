package commands

import (
	"context"

	"github.com/google/uuid"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/shared"
)

var ErrUnknownRole = errs.New("unknown role")

type AdminCommands interface {
	SetActive(ctx context.Context, profileID uuid.UUID, active bool) error
	// ChangeRole reassigns an account role. Live sessions observe the
	// change on their next profile re-fetch, never by assumption.
	ChangeRole(ctx context.Context, profileID uuid.UUID, role string) error
}

type adminCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAdminCommands(uow shared.UnitOfWork) AdminCommands {
	return &adminCommandsImpl{uow: uow}
}

func (a *adminCommandsImpl) SetActive(ctx context.Context, profileID uuid.UUID, active bool) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().SetActive(ctx, tx.DB(), profileID, active)
	})
}

func (a *adminCommandsImpl) ChangeRole(ctx context.Context, profileID uuid.UUID, roleStr string) error {
	role, err := identity.NewRole(roleStr)
	if err != nil {
		return ErrUnknownRole
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().SetRole(ctx, tx.DB(), profileID, role)
	})
}
