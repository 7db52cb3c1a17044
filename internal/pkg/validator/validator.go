package validator

import (
	"fmt"
	"strings"

	api "github.com/curelink-health/chat-service/internal/generated"
	"github.com/curelink-health/chat-service/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateBroadcast(req *api.CreateBroadcastRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	if len([]rune(req.Message)) > 2000 {
		return fmt.Errorf("message exceeds maximum length of 2000 characters")
	}

	return nil
}

func (v *Validator) ValidateCreateConversation(req *api.CreateConversationRequest, creatorID string) error {
	if strings.TrimSpace(req.ParticipantId) == "" {
		return fmt.Errorf("participant_id is required")
	}

	if req.ParticipantId == creatorID {
		return fmt.Errorf("conversation with yourself is not allowed")
	}

	if req.Type != nil {
		switch *req.Type {
		case model.PatientDoctorConversationType, model.DoctorShopOwnerConversationType:
		default:
			return fmt.Errorf("conversation type '%s' is not supported", *req.Type)
		}
	}

	return nil
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.ReceiverId) == "" {
		return fmt.Errorf("receiver_id is required")
	}

	messageType := model.TextMessageType
	if req.MessageType != nil && strings.TrimSpace(*req.MessageType) != "" {
		messageType = *req.MessageType
	}

	switch messageType {
	case model.TextMessageType:
		if req.Message == nil || strings.TrimSpace(*req.Message) == "" {
			return fmt.Errorf("message cannot be empty")
		}
		if len([]rune(*req.Message)) > 2000 {
			return fmt.Errorf("message exceeds maximum length of 2000 characters")
		}
	case model.PrescriptionMessageType:
		if req.MedicineDetails == nil || strings.TrimSpace(*req.MedicineDetails) == "" {
			return fmt.Errorf("medicine_details is required for prescriptions")
		}
		if req.PatientName == nil || strings.TrimSpace(*req.PatientName) == "" {
			return fmt.Errorf("patient_name is required for prescriptions")
		}
	default:
		return fmt.Errorf("message type '%s' is not supported", messageType)
	}

	return nil
}
