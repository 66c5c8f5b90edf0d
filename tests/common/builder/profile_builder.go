//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/domain/profile"
	"wallet-console/internal/usecase/queries"
)

type ProfileBuilder struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	FullName        string
	PhoneNumber     string
	Role            string
	EnterpriseID    *uuid.UUID
	IsActive        bool
	IsEmailVerified bool
}

func NewProfileBuilder() *ProfileBuilder {
	enterpriseID := uuid.New()
	return &ProfileBuilder{
		ID:              uuid.New(),
		Email:           "test@example.com",
		PasswordHash:    "hashed_password",
		FullName:        "Test Account",
		PhoneNumber:     "",
		Role:            "ENTERPRISE",
		EnterpriseID:    &enterpriseID,
		IsActive:        true,
		IsEmailVerified: false,
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

func (b *ProfileBuilder) WithRole(role string) *ProfileBuilder {
	b.Role = role
	return b
}

func (b *ProfileBuilder) WithEmail(email string) *ProfileBuilder {
	b.Email = email
	return b
}

func (b *ProfileBuilder) WithEnterpriseID(id *uuid.UUID) *ProfileBuilder {
	b.EnterpriseID = id
	return b
}

func (b *ProfileBuilder) BuildDomain() (*profile.Profile, error) {
	email, err := profile.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}

	fullName, err := profile.NewFullName(b.FullName)
	if err != nil {
		return nil, err
	}

	role, err := identity.NewRole(b.Role)
	if err != nil {
		return nil, err
	}

	return profile.NewProfile(email, b.PasswordHash, fullName, role, b.EnterpriseID), nil
}

func (b *ProfileBuilder) BuildView() *queries.ProfileView {
	return &queries.ProfileView{
		ID:              b.ID,
		Email:           b.Email,
		FullName:        b.FullName,
		PhoneNumber:     b.PhoneNumber,
		Role:            b.Role,
		EnterpriseID:    b.EnterpriseID,
		IsActive:        b.IsActive,
		IsEmailVerified: b.IsEmailVerified,
	}
}
