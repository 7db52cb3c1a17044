package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/curelink-health/chat-service/internal/model"
	"github.com/curelink-health/chat-service/internal/pkg/tx"
)

type SendMessageInput struct {
	ConversationID  string
	ReceiverID      string
	Type            string
	Message         string
	MedicineDetails *string
	PatientName     *string
}

// SendMessage persists a message in a conversation and pushes it to both
// participants. A prescription message additionally triggers distribution
// to every verified shop owner; distribution failures never fail the send.
func (s *Service) SendMessage(ctx context.Context, senderID string, in SendMessageInput) (*model.Message, error) {
	logger := s.logger(ctx, "SendMessage")

	sender, err := s.repository.GetUser(ctx, senderID)
	if err != nil {
		return nil, err
	}

	messageType := in.Type
	if messageType == "" {
		messageType = model.TextMessageType
	}

	switch messageType {
	case model.PrescriptionMessageType:
		if sender.Role != model.RoleDoctor {
			return nil, fmt.Errorf("only doctors can create prescription messages: %w", model.ErrForbidden)
		}
		if !sender.IsVerified() {
			return nil, fmt.Errorf("doctor account is not verified yet: %w", model.ErrForbidden)
		}
		if in.MedicineDetails == nil || *in.MedicineDetails == "" {
			return nil, fmt.Errorf("medicine details are required for prescription messages: %w", model.ErrBadRequest)
		}
		if in.PatientName == nil || *in.PatientName == "" {
			return nil, fmt.Errorf("patient name is required for prescription messages: %w", model.ErrBadRequest)
		}
	case model.TextMessageType:
		if in.Message == "" {
			return nil, fmt.Errorf("message content is required for text messages: %w", model.ErrBadRequest)
		}
	default:
		return nil, fmt.Errorf("message type %q is not supported: %w", messageType, model.ErrBadRequest)
	}

	conversation, err := s.repository.GetConversation(ctx, in.ConversationID)
	if err != nil {
		return nil, err
	}

	if !conversation.HasParticipant(senderID) {
		return nil, fmt.Errorf("you are not authorized to send messages in this conversation: %w", model.ErrForbidden)
	}

	receiver, err := s.repository.GetUser(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}

	if !conversation.HasParticipant(receiver.ID) {
		return nil, fmt.Errorf("receiver must be part of the conversation: %w", model.ErrBadRequest)
	}

	body := in.Message
	if messageType == model.PrescriptionMessageType && body == "" {
		body = "Prescription"
	}

	message := &model.Message{
		ID:              uuid.New(),
		ConversationID:  conversation.ID,
		SenderID:        senderID,
		ReceiverID:      receiver.ID,
		Type:            messageType,
		Message:         body,
		MedicineDetails: in.MedicineDetails,
		PatientName:     in.PatientName,
		Status:          model.MessageStatusSent,
		CreatedAt:       time.Now(),
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.repository.SaveMessage(ctx, message); err != nil {
			return err
		}
		return s.repository.TouchConversation(ctx, conversation.ID.String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	s.notifier.Notify(ctx, []string{conversation.CreatorID, conversation.ParticipantID}, model.Event{
		Name: model.EventMessage,
		From: senderID,
		Data: message,
	})

	if messageType == model.PrescriptionMessageType {
		if err := s.distributePrescription(ctx, sender, message); err != nil {
			logError(logger, fmt.Sprintf("failed to distribute prescription %s: %v", message.ID, err))
		}
	}

	return message, nil
}

// ListMessages pages through a conversation's messages in send order. Only
// the two participants and admins may read them.
func (s *Service) ListMessages(ctx context.Context, userID, conversationID, cursor string, limit int32) (*model.MessageList, error) {
	user, err := s.repository.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversation, err := s.repository.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if user.Role != model.RoleAdmin && !conversation.HasParticipant(userID) {
		return nil, fmt.Errorf("you are not authorized to access this conversation: %w", model.ErrForbidden)
	}

	return s.repository.ListConversationMessages(ctx, conversationID, cursor, limit)
}

func (s *Service) GetMessage(ctx context.Context, messageID, userID string) (*model.Message, error) {
	user, err := s.repository.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if user.Role == model.RoleAdmin {
		return message, nil
	}

	if message.SenderID == userID || message.ReceiverID == userID {
		return message, nil
	}

	conversation, err := s.repository.GetConversation(ctx, message.ConversationID.String())
	if err == nil && conversation.HasParticipant(userID) {
		return message, nil
	}

	return nil, fmt.Errorf("you are not authorized to access this message: %w", model.ErrForbidden)
}

// ReadMessage marks a message read by its receiver.
func (s *Service) ReadMessage(ctx context.Context, messageID, userID string) error {
	return s.updateStatus(ctx, messageID, userID, model.MessageStatusRead)
}

// DeliverMessage marks a message delivered to its receiver.
func (s *Service) DeliverMessage(ctx context.Context, messageID, userID string) error {
	return s.updateStatus(ctx, messageID, userID, model.MessageStatusDelivered)
}

func (s *Service) updateStatus(ctx context.Context, messageID, userID, status string) error {
	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}

	if message.ReceiverID != userID {
		return fmt.Errorf("only the receiver can update message status: %w", model.ErrForbidden)
	}

	return s.repository.UpdateMessageStatus(ctx, messageID, status)
}
