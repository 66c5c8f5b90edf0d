package repository

import (
	"context"

	"github.com/google/uuid"

	"wallet-console/internal/domain/enterprise"
	"wallet-console/internal/infra"
	"wallet-console/internal/infra/db"
)

type EnterpriseRepository struct{}

func NewEnterpriseRepository() *EnterpriseRepository {
	return &EnterpriseRepository{}
}

func (r *EnterpriseRepository) Create(ctx context.Context, dbtx db.DBTX, e *enterprise.Enterprise) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO enterprises (id, company_name, is_active)
		VALUES ($1, $2, $3)`,
		e.ID(), e.CompanyName(), e.IsActive())
	if err != nil {
		return wrapWriteErr("failed to create enterprise", err)
	}
	return nil
}

func (r *EnterpriseRepository) Exists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM enterprises WHERE id = $1 AND is_active)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check enterprise existence", err)
	}
	return exists, nil
}
