package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/curelink-health/chat-service/internal/model"
)

// ResolveConversation finds or creates the conversation for a pair of
// actors. With no broadcast id the single non-broadcast conversation per
// unordered pair is reused, signalled by ErrAlreadyExists. With a broadcast
// id the conversation is created first and the broadcast then claimed with
// a conditional update, so the claimed row never references a missing
// conversation. When the claim loses the race the freshly created thread is
// still returned together with ErrConflict, but it stays orphaned: the
// broadcast remains attributed to the winning doctor and the orphan is
// soft-deleted.
func (s *Service) ResolveConversation(ctx context.Context, creatorID, participantID, convType string, broadcastID *string) (*model.Conversation, error) {
	logger := s.logger(ctx, "ResolveConversation")

	if creatorID == "" || participantID == "" {
		return nil, fmt.Errorf("creator and participant are required: %w", model.ErrBadRequest)
	}

	if convType == "" {
		convType = model.PatientDoctorConversationType
	}

	if broadcastID == nil {
		return s.resolvePlain(ctx, creatorID, participantID, convType)
	}

	broadcast, err := s.repository.GetBroadcast(ctx, *broadcastID)
	if err != nil {
		return nil, err
	}

	if broadcast.ConversationID != nil {
		existing, getErr := s.repository.GetConversation(ctx, broadcast.ConversationID.String())
		if getErr != nil {
			return nil, getErr
		}
		return existing, fmt.Errorf("conversation already exists for broadcast %s: %w", *broadcastID, model.ErrAlreadyExists)
	}

	if broadcast.Status != model.BroadcastStatusOpen {
		return nil, fmt.Errorf("broadcast %s has already been assisted: %w", *broadcastID, model.ErrConflict)
	}

	if broadcast.PatientID != creatorID && broadcast.PatientID != participantID {
		return nil, fmt.Errorf("the broadcast patient must be one of the conversation participants: %w", model.ErrBadRequest)
	}

	// The doctor is whichever participant is not the broadcast's patient.
	assistedBy := participantID
	if broadcast.PatientID == participantID {
		assistedBy = creatorID
	}

	conversation, err := s.repository.CreateConversation(ctx, model.ConversationParams{
		CreatorID:     creatorID,
		ParticipantID: participantID,
		BroadcastID:   &broadcast.ID,
		Type:          model.PatientDoctorConversationType,
		AssistedBy:    &assistedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %v", err)
	}

	claimed, err := s.repository.ClaimBroadcast(ctx, *broadcastID, assistedBy, conversation.ID.String())
	if err != nil {
		// Lost the race: the thread was created but never became the
		// broadcast's canonical conversation. Hand it back as
		// non-authoritative and retire it.
		if delErr := s.repository.SoftDeleteConversation(ctx, conversation.ID.String()); delErr != nil {
			logError(logger, fmt.Sprintf("failed to retire orphaned conversation %s: %v", conversation.ID, delErr))
		}
		return conversation, err
	}

	s.notifyConversationCreated(ctx, conversation)
	s.notifyBroadcastClaimed(ctx, logger, claimed, conversation)

	return conversation, nil
}

func (s *Service) resolvePlain(ctx context.Context, creatorID, participantID, convType string) (*model.Conversation, error) {
	existing, err := s.repository.FindPairConversation(ctx, creatorID, participantID)
	if err == nil {
		return existing, fmt.Errorf("conversation already exists: %w", model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	conversation, err := s.repository.CreateConversation(ctx, model.ConversationParams{
		CreatorID:     creatorID,
		ParticipantID: participantID,
		Type:          convType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %v", err)
	}

	s.notifyConversationCreated(ctx, conversation)

	return conversation, nil
}

func (s *Service) notifyConversationCreated(ctx context.Context, conversation *model.Conversation) {
	s.notifier.Notify(ctx, []string{conversation.CreatorID}, model.Event{
		Name: model.EventConversation,
		From: conversation.CreatorID,
		Data: conversation,
	})
	s.notifier.Notify(ctx, []string{conversation.ParticipantID}, model.Event{
		Name: model.EventConversation,
		From: conversation.ParticipantID,
		Data: conversation,
	})
}

func (s *Service) notifyBroadcastClaimed(ctx context.Context, logger loggerIface, broadcast *model.Broadcast, conversation *model.Conversation) {
	recipients := []string{broadcast.PatientID}
	doctorIDs, err := s.repository.GetVerifiedDoctorIDs(ctx)
	if err != nil {
		logError(logger, fmt.Sprintf("failed to get verified doctors for broadcast %s: %v", broadcast.ID, err))
	} else {
		recipients = append(recipients, doctorIDs...)
	}

	s.notifier.Notify(ctx, recipients, model.Event{
		Name: model.EventBroadcastUpdated,
		Data: broadcast,
	})

	s.notifier.NotifyAll(ctx, model.Event{
		Name: model.EventBroadcastAssisted,
		Data: broadcastAssistedPayload{
			BroadcastID:  broadcast.ID,
			Conversation: conversation,
		},
	})
}

type broadcastAssistedPayload struct {
	BroadcastID  uuid.UUID           `json:"broadcast_id"`
	Conversation *model.Conversation `json:"conversation"`
}

// ListConversations returns every thread the user sits on either side of,
// freshest first.
func (s *Service) ListConversations(ctx context.Context, userID string) (*model.ConversationList, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required: %w", model.ErrBadRequest)
	}
	return s.repository.ListUserConversations(ctx, userID)
}

func (s *Service) GetConversation(ctx context.Context, conversationID, userID string) (*model.Conversation, error) {
	conversation, err := s.repository.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if !conversation.HasParticipant(userID) {
		return nil, fmt.Errorf("you are not authorized to access this conversation: %w", model.ErrForbidden)
	}

	return conversation, nil
}
