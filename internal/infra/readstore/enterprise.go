package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wallet-console/internal/infra"
	"wallet-console/internal/infra/db"
	"wallet-console/internal/usecase/queries"
)

type EnterpriseReadStore struct {
	db db.DBTX
}

func NewEnterpriseReadStore(dbtx db.DBTX) *EnterpriseReadStore {
	return &EnterpriseReadStore{db: dbtx}
}

func (r *EnterpriseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EnterpriseView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT e.id, e.company_name, e.is_active, s.plan_name, s.status, s.expires_at
		FROM enterprises e
		LEFT JOIN subscriptions s ON s.enterprise_id = e.id
		WHERE e.id = $1
		ORDER BY s.created_at DESC
		LIMIT 1`, id)

	var (
		view     queries.EnterpriseView
		planName *string
		status   *string
		sub      queries.SubscriptionView
	)
	err := row.Scan(&view.ID, &view.CompanyName, &view.IsActive, &planName, &status, &sub.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("enterprise not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enterprise by ID", err)
	}

	if planName != nil && status != nil {
		sub.PlanName = *planName
		sub.Status = *status
		view.Subscription = &sub
	}

	return &view, nil
}

func (r *EnterpriseReadStore) FindMembers(ctx context.Context, enterpriseID uuid.UUID) ([]queries.MemberView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, full_name, is_active
		FROM profiles
		WHERE enterprise_id = $1
		ORDER BY full_name`, enterpriseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enterprise members", err)
	}
	defer rows.Close()

	var members []queries.MemberView
	for rows.Next() {
		var m queries.MemberView
		if err := rows.Scan(&m.ID, &m.Email, &m.FullName, &m.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan member row", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate members", err)
	}
	return members, nil
}
