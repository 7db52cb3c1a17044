package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/curelink-health/chat-service/internal/model"
)

var broadcastColumns = []string{
	"id",
	"patient_id",
	"message",
	"status",
	"assisted_by",
	"conversation_id",
	"created_at",
	"updated_at",
	"deleted_at",
}

func (r *Repository) CreateBroadcast(ctx context.Context, patientID, message string) (*model.Broadcast, error) {
	query, args, err := sq.Insert("broadcasts").
		Columns("patient_id", "message", "status").
		Values(patientID, message, model.BroadcastStatusOpen).
		Suffix("RETURNING " + joinColumns(broadcastColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var broadcast model.Broadcast
	err = r.Chk(ctx).GetContext(ctx, &broadcast, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create broadcast: %v", err)
	}

	return &broadcast, nil
}

func (r *Repository) GetBroadcast(ctx context.Context, broadcastID string) (*model.Broadcast, error) {
	query, args, err := sq.Select(broadcastColumns...).
		From("broadcasts").
		Where(sq.Eq{"id": broadcastID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var broadcast model.Broadcast
	err = r.Chk(ctx).GetContext(ctx, &broadcast, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("broadcast %s: %w", broadcastID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get broadcast: %v", err)
	}

	return &broadcast, nil
}

func (r *Repository) ListPatientBroadcasts(ctx context.Context, patientID string) (*model.BroadcastList, error) {
	query, args, err := sq.Select(broadcastColumns...).
		From("broadcasts").
		Where(sq.Eq{"patient_id": patientID, "deleted_at": nil}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var broadcasts model.BroadcastList
	err = r.Chk(ctx).SelectContext(ctx, &broadcasts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient broadcasts: %v", err)
	}

	return &broadcasts, nil
}

func (r *Repository) ListOpenBroadcasts(ctx context.Context) (*model.BroadcastList, error) {
	query, args, err := sq.Select(broadcastColumns...).
		From("broadcasts").
		Where(sq.Eq{"status": model.BroadcastStatusOpen, "deleted_at": nil}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var broadcasts model.BroadcastList
	err = r.Chk(ctx).SelectContext(ctx, &broadcasts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list open broadcasts: %v", err)
	}

	return &broadcasts, nil
}

// ClaimBroadcast is the atomic claim primitive. The row moves from open to
// assisted only if it is still open at apply time; a zero-row update on an
// existing row means another doctor won the race and surfaces as ErrConflict,
// distinguishable from ErrNotFound for a missing or soft-deleted row.
func (r *Repository) ClaimBroadcast(ctx context.Context, broadcastID, doctorID, conversationID string) (*model.Broadcast, error) {
	query, args, err := sq.Update("broadcasts").
		Set("status", model.BroadcastStatusAssisted).
		Set("assisted_by", doctorID).
		Set("conversation_id", conversationID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id":         broadcastID,
			"status":     model.BroadcastStatusOpen,
			"deleted_at": nil,
		}).
		Suffix("RETURNING " + joinColumns(broadcastColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var broadcast model.Broadcast
	err = r.Chk(ctx).GetContext(ctx, &broadcast, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		// The precondition failed: either the row is gone or it is no
		// longer open. Re-read to tell the two apart.
		if _, getErr := r.GetBroadcast(ctx, broadcastID); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("broadcast %s is no longer open: %w", broadcastID, model.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim broadcast: %v", err)
	}

	return &broadcast, nil
}

func (r *Repository) SoftDeleteBroadcast(ctx context.Context, broadcastID string) error {
	query, args, err := sq.Update("broadcasts").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": broadcastID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete broadcast: %v", err)
	}

	if rows, rowsErr := res.RowsAffected(); rowsErr == nil && rows == 0 {
		return fmt.Errorf("broadcast %s: %w", broadcastID, model.ErrNotFound)
	}

	return nil
}

func (r *Repository) CountBroadcastsByStatus(ctx context.Context) (map[string]int64, error) {
	query, args, err := sq.Select("status", "COUNT(*) AS total").
		From("broadcasts").
		Where(sq.Eq{"deleted_at": nil}).
		GroupBy("status").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []struct {
		Status string `db:"status"`
		Total  int64  `db:"total"`
	}
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count broadcasts: %v", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	return counts, nil
}
