package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/curelink-health/chat-service/internal/model"
)

var messageColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"receiver_id",
	"type",
	"message",
	"medicine_details",
	"patient_name",
	"source_message_id",
	"status",
	"created_at",
	"deleted_at",
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query := sq.Insert("messages").
		Columns("id", "conversation_id", "sender_id", "receiver_id", "type", "message",
			"medicine_details", "patient_name", "source_message_id", "status").
		Values(message.ID, message.ConversationID, message.SenderID, message.ReceiverID,
			message.Type, message.Message, message.MedicineDetails, message.PatientName,
			message.SourceMessageID, message.Status).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID string) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": messageID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("message %s: %w", messageID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

func (r *Repository) ListConversationMessages(ctx context.Context, conversationID string, cursor string, limit int32) (*model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID, "deleted_at": nil}).
		OrderBy("created_at ASC")

	if cursor != "" {
		queryBuilder = queryBuilder.Where(sq.Gt{"created_at": cursor})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(20)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation messages: %v", err)
	}

	return &messages, nil
}

// ListShopOwnerPrescriptions returns prescription messages received by the
// shop owner, newest first.
func (r *Repository) ListShopOwnerPrescriptions(ctx context.Context, shopOwnerID string, cursor string, limit int32) (*model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{
			"receiver_id": shopOwnerID,
			"type":        model.PrescriptionMessageType,
			"deleted_at":  nil,
		}).
		OrderBy("created_at DESC")

	if cursor != "" {
		queryBuilder = queryBuilder.Where(sq.Lt{"created_at": cursor})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(20)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %v", err)
	}

	return &messages, nil
}

func (r *Repository) UpdateMessageStatus(ctx context.Context, messageID, status string) error {
	query, args, err := sq.Update("messages").
		Set("status", status).
		Where(sq.Eq{"id": messageID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update message status: %v", err)
	}

	if rows, rowsErr := res.RowsAffected(); rowsErr == nil && rows == 0 {
		return fmt.Errorf("message %s: %w", messageID, model.ErrNotFound)
	}

	return nil
}
