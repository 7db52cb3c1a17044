package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/curelink-health/chat-service/internal/model"
)

type prescriptionPayload struct {
	Prescription *model.Message  `json:"prescription"`
	Doctor       doctorReference `json:"doctor"`
}

type doctorReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// distributePrescription replicates one prescription message to every shop
// owner verified at call time. Each shop owner is handled independently: a
// failure for one is logged and the loop moves on, and nothing here ever
// rolls back the originating message.
func (s *Service) distributePrescription(ctx context.Context, doctor *model.User, src *model.Message) error {
	logger := s.logger(ctx, "distributePrescription")

	shopOwners, err := s.repository.GetVerifiedShopOwners(ctx)
	if err != nil {
		return fmt.Errorf("failed to get verified shop owners: %v", err)
	}

	if len(shopOwners) == 0 {
		logInfo(logger, "no verified shop owners found to distribute prescription")
		return nil
	}

	delivered := 0
	for _, shopOwner := range shopOwners {
		if err := s.replicateToShopOwner(ctx, doctor, &shopOwner, src); err != nil {
			logError(logger, fmt.Sprintf("failed to distribute prescription %s to shop owner %s: %v", src.ID, shopOwner.ID, err))
			continue
		}
		delivered++
	}

	logInfo(logger, fmt.Sprintf("prescription %s distributed to %d of %d shop owner(s)", src.ID, delivered, len(shopOwners)))

	return nil
}

func (s *Service) replicateToShopOwner(ctx context.Context, doctor *model.User, shopOwner *model.User, src *model.Message) error {
	conversation, err := s.repository.FindDoctorShopConversation(ctx, doctor.ID, shopOwner.ID)
	created := false
	if errors.Is(err, model.ErrNotFound) {
		conversation, err = s.repository.CreateConversation(ctx, model.ConversationParams{
			CreatorID:     doctor.ID,
			ParticipantID: shopOwner.ID,
			Type:          model.DoctorShopOwnerConversationType,
		})
		created = true
	}
	if err != nil {
		return err
	}

	replica := &model.Message{
		ID:              uuid.New(),
		ConversationID:  conversation.ID,
		SenderID:        doctor.ID,
		ReceiverID:      shopOwner.ID,
		Type:            model.PrescriptionMessageType,
		Message:         src.Message,
		MedicineDetails: src.MedicineDetails,
		PatientName:     src.PatientName,
		SourceMessageID: &src.ID,
		Status:          model.MessageStatusSent,
		CreatedAt:       time.Now(),
	}

	if err := s.repository.SaveMessage(ctx, replica); err != nil {
		return err
	}

	if err := s.repository.TouchConversation(ctx, conversation.ID.String()); err != nil {
		return err
	}

	if created {
		s.notifier.Notify(ctx, []string{shopOwner.ID}, model.Event{
			Name: model.EventNewConversation,
			From: doctor.ID,
			Data: conversation,
		})
	}

	s.notifier.Notify(ctx, []string{shopOwner.ID}, model.Event{
		Name: model.EventMessage,
		From: doctor.ID,
		Data: replica,
	})
	s.notifier.Notify(ctx, []string{shopOwner.ID}, model.Event{
		Name: model.EventNewPrescription,
		From: doctor.ID,
		Data: prescriptionPayload{
			Prescription: replica,
			Doctor:       doctorReference{ID: doctor.ID, Name: doctor.Name},
		},
	})

	return nil
}

// ListShopOwnerPrescriptions returns the prescriptions a shop owner has
// received, newest first.
func (s *Service) ListShopOwnerPrescriptions(ctx context.Context, shopOwnerID, cursor string, limit int32) (*model.MessageList, error) {
	if err := s.requireShopOwner(ctx, shopOwnerID); err != nil {
		return nil, err
	}
	return s.repository.ListShopOwnerPrescriptions(ctx, shopOwnerID, cursor, limit)
}

func (s *Service) GetShopOwnerPrescription(ctx context.Context, prescriptionID, shopOwnerID string) (*model.Message, error) {
	if err := s.requireShopOwner(ctx, shopOwnerID); err != nil {
		return nil, err
	}

	message, err := s.repository.GetMessage(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}

	if !message.IsPrescription() || message.ReceiverID != shopOwnerID {
		return nil, fmt.Errorf("prescription %s: %w", prescriptionID, model.ErrNotFound)
	}

	return message, nil
}

func (s *Service) ListShopOwnerConversations(ctx context.Context, shopOwnerID string) (*model.ConversationList, error) {
	if err := s.requireShopOwner(ctx, shopOwnerID); err != nil {
		return nil, err
	}
	return s.repository.ListShopOwnerConversations(ctx, shopOwnerID)
}

func (s *Service) requireShopOwner(ctx context.Context, shopOwnerID string) error {
	shopOwner, err := s.repository.GetUser(ctx, shopOwnerID)
	if err != nil {
		return err
	}

	if shopOwner.Role != model.RoleShopOwner {
		return fmt.Errorf("only shop owners can view prescriptions: %w", model.ErrForbidden)
	}

	return nil
}
