package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/curelink-health/chat-service/internal/model"
)

var conversationColumns = []string{
	"id",
	"creator_id",
	"participant_id",
	"broadcast_id",
	"type",
	"status",
	"assisted_by",
	"created_at",
	"updated_at",
	"deleted_at",
}

func (r *Repository) CreateConversation(ctx context.Context, params model.ConversationParams) (*model.Conversation, error) {
	query, args, err := sq.Insert("conversations").
		Columns("creator_id", "participant_id", "broadcast_id", "type", "status", "assisted_by").
		Values(params.CreatorID, params.ParticipantID, params.BroadcastID, params.Type, model.ConversationStatusOpen, params.AssistedBy).
		Suffix("RETURNING " + joinColumns(conversationColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Eq{"id": conversationID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	return &conversation, nil
}

// FindPairConversation looks up the single non-broadcast conversation for
// the unordered (a, b) pair.
func (r *Repository) FindPairConversation(ctx context.Context, userA, userB string) (*model.Conversation, error) {
	return r.findPair(ctx, userA, userB, sq.Eq{"broadcast_id": nil})
}

// FindDoctorShopConversation looks up the single doctor_shop_owner
// conversation for the unordered (doctor, shop owner) pair.
func (r *Repository) FindDoctorShopConversation(ctx context.Context, doctorID, shopOwnerID string) (*model.Conversation, error) {
	return r.findPair(ctx, doctorID, shopOwnerID, sq.Eq{"type": model.DoctorShopOwnerConversationType})
}

func (r *Repository) findPair(ctx context.Context, userA, userB string, extra sq.Eq) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Or{
			sq.Eq{"creator_id": userA, "participant_id": userB},
			sq.Eq{"creator_id": userB, "participant_id": userA},
		}).
		Where(extra).
		Where(sq.Eq{"deleted_at": nil}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("conversation for pair (%s, %s): %w", userA, userB, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pair conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) ListUserConversations(ctx context.Context, userID string) (*model.ConversationList, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Or{
			sq.Eq{"creator_id": userID},
			sq.Eq{"participant_id": userID},
		}).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversations model.ConversationList
	err = r.Chk(ctx).SelectContext(ctx, &conversations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %v", err)
	}

	return &conversations, nil
}

func (r *Repository) ListShopOwnerConversations(ctx context.Context, shopOwnerID string) (*model.ConversationList, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Eq{"type": model.DoctorShopOwnerConversationType, "deleted_at": nil}).
		Where(sq.Or{
			sq.Eq{"creator_id": shopOwnerID},
			sq.Eq{"participant_id": shopOwnerID},
		}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversations model.ConversationList
	err = r.Chk(ctx).SelectContext(ctx, &conversations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shop owner conversations: %v", err)
	}

	return &conversations, nil
}

// TouchConversation bumps the freshness timestamp after message activity.
func (r *Repository) TouchConversation(ctx context.Context, conversationID string) error {
	query, args, err := sq.Update("conversations").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": conversationID}).
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

func (r *Repository) SoftDeleteConversation(ctx context.Context, conversationID string) error {
	query, args, err := sq.Update("conversations").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": conversationID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %v", err)
	}

	return nil
}
