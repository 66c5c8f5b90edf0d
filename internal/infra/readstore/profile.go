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

const profileColumns = `id, email, full_name, phone_number, role, enterprise_id, is_active, is_email_verified`

type ProfileReadStore struct {
	db db.DBTX
}

func NewProfileReadStore(dbtx db.DBTX) *ProfileReadStore {
	return &ProfileReadStore{db: dbtx}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)

	view, err := scanProfileView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by ID", err)
	}
	return view, nil
}

func (r *ProfileReadStore) FindByEmail(ctx context.Context, email string) (*queries.ProfileView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`, password_hash FROM profiles WHERE email = $1`, email)

	var (
		view queries.ProfileView
		hash string
	)
	err := row.Scan(&view.ID, &view.Email, &view.FullName, &view.PhoneNumber, &view.Role,
		&view.EnterpriseID, &view.IsActive, &view.IsEmailVerified, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find profile by email", err)
	}
	return &view, hash, nil
}

func (r *ProfileReadStore) PasswordHashByID(ctx context.Context, id uuid.UUID) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT password_hash FROM profiles WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load password hash", err)
	}
	return hash, nil
}

func (r *ProfileReadStore) List(ctx context.Context) ([]queries.ProfileView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles", err)
	}
	defer rows.Close()

	var views []queries.ProfileView
	for rows.Next() {
		view, err := scanProfileView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan profile row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate profiles", err)
	}
	return views, nil
}

func scanProfileView(row pgx.Row) (*queries.ProfileView, error) {
	var view queries.ProfileView
	err := row.Scan(&view.ID, &view.Email, &view.FullName, &view.PhoneNumber, &view.Role,
		&view.EnterpriseID, &view.IsActive, &view.IsEmailVerified)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
