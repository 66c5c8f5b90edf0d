package commands

import (
	"context"

	"github.com/google/uuid"

	"wallet-console/internal/domain/profile"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/usecase/shared"
)

var ErrInvalidProfileUpdate = errs.New("invalid profile update")

type ProfileCommands interface {
	// UpdateContact mutates the viewer's own profile. Callers are
	// expected to re-fetch through the session layer afterwards.
	UpdateContact(ctx context.Context, profileID uuid.UUID, fullName, phoneNumber string) error
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

func (p *profileCommandsImpl) UpdateContact(ctx context.Context, profileID uuid.UUID, fullNameStr, phoneStr string) error {
	fullName, err := profile.NewFullName(fullNameStr)
	if err != nil {
		return ErrInvalidProfileUpdate
	}

	phone, err := profile.NewPhoneNumber(phoneStr)
	if err != nil {
		return ErrInvalidProfileUpdate
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().UpdateContact(ctx, tx.DB(), profileID, fullName.Value(), phone.Value())
	})
}
