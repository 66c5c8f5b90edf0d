package shared

import (
	"context"

	"github.com/google/uuid"

	"wallet-console/internal/domain/enterprise"
	"wallet-console/internal/domain/identity"
	"wallet-console/internal/domain/profile"
	"wallet-console/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Profiles() ProfileRepository
	Enterprises() EnterpriseRepository
	DB() db.DBTX
}

type ProfileRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *profile.Profile) error
	UpdateContact(ctx context.Context, dbtx db.DBTX, id uuid.UUID, fullName, phoneNumber string) error
	UpdatePassword(ctx context.Context, dbtx db.DBTX, id uuid.UUID, passwordHash string) error
	SetEnterprise(ctx context.Context, dbtx db.DBTX, id uuid.UUID, enterpriseID *uuid.UUID) error
	SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error
	SetRole(ctx context.Context, dbtx db.DBTX, id uuid.UUID, role identity.Role) error
	MarkEmailVerified(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type EnterpriseRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, e *enterprise.Enterprise) error
	Exists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
}
