package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/curelink-health/chat-service/internal/model"
)

func (r *Repository) AddNewUser(ctx context.Context, userInfo *model.UserParams) error {
	query, args, err := sq.Insert("users").
		Columns("id", "name", "email", "role", "avatar_url").
		Values(userInfo.ID, userInfo.Name, userInfo.Email, userInfo.Role, userInfo.AvatarURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetUser(ctx context.Context, userID string) (*model.User, error) {
	query, args, err := sq.Select("id", "name", "email", "role", "avatar_url", "approved_at", "deleted_at").
		From("users").
		Where(sq.Eq{"id": userID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &user, nil
}

// GetVerifiedDoctorIDs returns the ids of every approved, non-deleted doctor.
func (r *Repository) GetVerifiedDoctorIDs(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("id").
		From("users").
		Where(sq.Eq{"role": model.RoleDoctor, "deleted_at": nil}).
		Where(sq.NotEq{"approved_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ids []string
	err = r.Chk(ctx).SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get verified doctors: %v", err)
	}

	return ids, nil
}

// GetVerifiedShopOwners returns every approved, non-deleted shop owner.
// The result is a snapshot: owners approved after the read are not in it.
func (r *Repository) GetVerifiedShopOwners(ctx context.Context) ([]model.User, error) {
	query, args, err := sq.Select("id", "name", "email", "role", "avatar_url", "approved_at", "deleted_at").
		From("users").
		Where(sq.Eq{"role": model.RoleShopOwner, "deleted_at": nil}).
		Where(sq.NotEq{"approved_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var owners []model.User
	err = r.Chk(ctx).SelectContext(ctx, &owners, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get verified shop owners: %v", err)
	}

	return owners, nil
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userID, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("name", newNickname).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userID, avatarLink string) error {
	query, args, err := sq.Update("users").
		Set("avatar_url", avatarLink).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

// SetUserApproval records the outcome of the external approval workflow.
// A nil approvedAt revokes verification.
func (r *Repository) SetUserApproval(ctx context.Context, userID string, approvedAt *time.Time) error {
	query, args, err := sq.Update("users").
		Set("approved_at", approvedAt).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
