package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TextMessageType         = "text"
	PrescriptionMessageType = "prescription"

	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

type MessageList []Message

// Message is immutable after creation except for its status. A prescription
// message additionally carries medicine details and the patient name; a
// replica distributed to a shop owner references the originating message
// through SourceMessageID.
type Message struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	ConversationID  uuid.UUID  `db:"conversation_id" json:"conversation_id"`
	SenderID        string     `db:"sender_id" json:"sender_id"`
	ReceiverID      string     `db:"receiver_id" json:"receiver_id"`
	Type            string     `db:"type" json:"message_type"`
	Message         string     `db:"message" json:"message"`
	MedicineDetails *string    `db:"medicine_details" json:"medicine_details,omitempty"`
	PatientName     *string    `db:"patient_name" json:"patient_name,omitempty"`
	SourceMessageID *uuid.UUID `db:"source_message_id" json:"source_message_id,omitempty"`
	Status          string     `db:"status" json:"status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	DeletedAt       *time.Time `db:"deleted_at" json:"-"`
}

// IsPrescription reports whether the message carries prescription payload.
func (m *Message) IsPrescription() bool {
	return m.Type == PrescriptionMessageType
}
