//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/curelink-health/chat-service/internal/generated"
	"github.com/curelink-health/chat-service/internal/model"
	"github.com/curelink-health/chat-service/internal/service"
)

type ChatService interface {
	CreateBroadcast(ctx context.Context, patientID, message string) (*model.Broadcast, error)
	ClaimBroadcast(ctx context.Context, broadcastID, doctorID string) (*model.Conversation, error)
	GetBroadcast(ctx context.Context, broadcastID string) (*model.Broadcast, error)
	ListPatientBroadcasts(ctx context.Context, patientID string) (*model.BroadcastList, error)
	ListOpenBroadcasts(ctx context.Context) (*model.BroadcastList, error)
	DeleteBroadcast(ctx context.Context, broadcastID, userID string) error
	CountBroadcasts(ctx context.Context) (map[string]int64, error)

	ResolveConversation(ctx context.Context, creatorID, participantID, convType string, broadcastID *string) (*model.Conversation, error)
	ListConversations(ctx context.Context, userID string) (*model.ConversationList, error)
	GetConversation(ctx context.Context, conversationID, userID string) (*model.Conversation, error)

	SendMessage(ctx context.Context, senderID string, in service.SendMessageInput) (*model.Message, error)
	ListMessages(ctx context.Context, userID, conversationID, cursor string, limit int32) (*model.MessageList, error)
	GetMessage(ctx context.Context, messageID, userID string) (*model.Message, error)
	ReadMessage(ctx context.Context, messageID, userID string) error

	ListShopOwnerPrescriptions(ctx context.Context, shopOwnerID, cursor string, limit int32) (*model.MessageList, error)
	GetShopOwnerPrescription(ctx context.Context, prescriptionID, shopOwnerID string) (*model.Message, error)
	ListShopOwnerConversations(ctx context.Context, shopOwnerID string) (*model.ConversationList, error)
}

type Validator interface {
	ValidateCreateBroadcast(req *api.CreateBroadcastRequest) error
	ValidateCreateConversation(req *api.CreateConversationRequest, creatorID string) error
	ValidateSendMessage(req *api.SendMessageRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, conversationID string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.ConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.SubscribeClaims, error)
}
