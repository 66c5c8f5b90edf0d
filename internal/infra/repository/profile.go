package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/domain/profile"
	"wallet-console/internal/infra"
	"wallet-console/internal/infra/db"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) Create(ctx context.Context, dbtx db.DBTX, p *profile.Profile) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO profiles (id, email, password_hash, full_name, phone_number, role, enterprise_id, is_active, is_email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID(), p.Email().Value(), p.PasswordHash(), p.FullName().Value(), p.PhoneNumber().Value(),
		p.Role().String(), p.EnterpriseID(), p.IsActive(), p.IsEmailVerified())
	if err != nil {
		return wrapWriteErr("failed to create profile", err)
	}
	return nil
}

func (r *ProfileRepository) UpdateContact(ctx context.Context, dbtx db.DBTX, id uuid.UUID, fullName, phoneNumber string) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE profiles SET full_name = $2, phone_number = $3, updated_at = now()
		WHERE id = $1`, id, fullName, phoneNumber)
	return checkRowUpdated("failed to update profile contact", tag, err)
}

func (r *ProfileRepository) UpdatePassword(ctx context.Context, dbtx db.DBTX, id uuid.UUID, passwordHash string) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE profiles SET password_hash = $2, updated_at = now()
		WHERE id = $1`, id, passwordHash)
	return checkRowUpdated("failed to update password", tag, err)
}

func (r *ProfileRepository) SetEnterprise(ctx context.Context, dbtx db.DBTX, id uuid.UUID, enterpriseID *uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE profiles SET enterprise_id = $2, updated_at = now()
		WHERE id = $1`, id, enterpriseID)
	return checkRowUpdated("failed to set enterprise association", tag, err)
}

func (r *ProfileRepository) SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE profiles SET is_active = $2, updated_at = now()
		WHERE id = $1`, id, active)
	return checkRowUpdated("failed to set active flag", tag, err)
}

func (r *ProfileRepository) SetRole(ctx context.Context, dbtx db.DBTX, id uuid.UUID, role identity.Role) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE profiles SET role = $2, updated_at = now()
		WHERE id = $1`, id, role.String())
	return checkRowUpdated("failed to set role", tag, err)
}

func (r *ProfileRepository) MarkEmailVerified(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE profiles SET is_email_verified = true, updated_at = now()
		WHERE id = $1`, id)
	return checkRowUpdated("failed to mark email verified", tag, err)
}

func (r *ProfileRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE profiles SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func checkRowUpdated(msg string, tag pgconn.CommandTag, err error) error {
	if err != nil {
		return wrapWriteErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
	}
	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
