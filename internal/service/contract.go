//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/curelink-health/chat-service/internal/model"
)

type DBRepo interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetVerifiedDoctorIDs(ctx context.Context) ([]string, error)
	GetVerifiedShopOwners(ctx context.Context) ([]model.User, error)

	CreateBroadcast(ctx context.Context, patientID, message string) (*model.Broadcast, error)
	GetBroadcast(ctx context.Context, broadcastID string) (*model.Broadcast, error)
	ListPatientBroadcasts(ctx context.Context, patientID string) (*model.BroadcastList, error)
	ListOpenBroadcasts(ctx context.Context) (*model.BroadcastList, error)
	ClaimBroadcast(ctx context.Context, broadcastID, doctorID, conversationID string) (*model.Broadcast, error)
	SoftDeleteBroadcast(ctx context.Context, broadcastID string) error
	CountBroadcastsByStatus(ctx context.Context) (map[string]int64, error)

	CreateConversation(ctx context.Context, params model.ConversationParams) (*model.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error)
	FindPairConversation(ctx context.Context, userA, userB string) (*model.Conversation, error)
	FindDoctorShopConversation(ctx context.Context, doctorID, shopOwnerID string) (*model.Conversation, error)
	ListUserConversations(ctx context.Context, userID string) (*model.ConversationList, error)
	ListShopOwnerConversations(ctx context.Context, shopOwnerID string) (*model.ConversationList, error)
	TouchConversation(ctx context.Context, conversationID string) error
	SoftDeleteConversation(ctx context.Context, conversationID string) error

	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, messageID string) (*model.Message, error)
	ListConversationMessages(ctx context.Context, conversationID, cursor string, limit int32) (*model.MessageList, error)
	ListShopOwnerPrescriptions(ctx context.Context, shopOwnerID, cursor string, limit int32) (*model.MessageList, error)
	UpdateMessageStatus(ctx context.Context, messageID, status string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Notifier delivers real-time events. Implementations log and swallow
// delivery failures: notification is never part of an operation's outcome.
type Notifier interface {
	Notify(ctx context.Context, recipientIDs []string, event model.Event)
	NotifyAll(ctx context.Context, event model.Event)
}
