package profile

import (
	"time"

	"github.com/google/uuid"

	"wallet-console/internal/domain/identity"
)

// Profile is the application-level account record behind an identity.
// It is created by registration and fetched, never created, by the
// session layer.
type Profile struct {
	id              uuid.UUID
	email           Email
	passwordHash    string
	fullName        FullName
	phoneNumber     PhoneNumber
	role            identity.Role
	enterpriseID    *uuid.UUID
	isActive        bool
	isEmailVerified bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewProfile(email Email, passwordHash string, fullName FullName, role identity.Role, enterpriseID *uuid.UUID) *Profile {
	return &Profile{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         role,
		enterpriseID: enterpriseID,
		isActive:     true,
	}
}

func (p *Profile) ID() uuid.UUID            { return p.id }
func (p *Profile) Email() Email             { return p.email }
func (p *Profile) PasswordHash() string     { return p.passwordHash }
func (p *Profile) FullName() FullName       { return p.fullName }
func (p *Profile) PhoneNumber() PhoneNumber { return p.phoneNumber }
func (p *Profile) Role() identity.Role      { return p.role }
func (p *Profile) EnterpriseID() *uuid.UUID { return p.enterpriseID }
func (p *Profile) IsActive() bool           { return p.isActive }
func (p *Profile) IsEmailVerified() bool    { return p.isEmailVerified }
func (p *Profile) CreatedAt() time.Time     { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time     { return p.updatedAt }
