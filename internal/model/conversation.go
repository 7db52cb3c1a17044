package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PatientDoctorConversationType   = "patient_doctor"
	DoctorShopOwnerConversationType = "doctor_shop_owner"

	ConversationStatusOpen = "open"
)

type ConversationList []Conversation

// Conversation is a private thread between exactly two actors. A thread
// created by claiming a broadcast carries the broadcast id and the id of
// the doctor who assisted.
type Conversation struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	CreatorID     string     `db:"creator_id" json:"creator_id"`
	ParticipantID string     `db:"participant_id" json:"participant_id"`
	BroadcastID   *uuid.UUID `db:"broadcast_id" json:"broadcast_id,omitempty"`
	Type          string     `db:"type" json:"type"`
	Status        string     `db:"status" json:"status"`
	AssistedBy    *string    `db:"assisted_by" json:"assisted_by,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at" json:"-"`
}

// HasParticipant reports whether userID is on either side of the thread.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.CreatorID == userID || c.ParticipantID == userID
}

type ConversationParams struct {
	CreatorID     string
	ParticipantID string
	BroadcastID   *uuid.UUID
	Type          string
	AssistedBy    *string
}
