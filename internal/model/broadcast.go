package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	BroadcastStatusOpen     = "open"
	BroadcastStatusAssisted = "assisted"
	BroadcastStatusClosed   = "closed"
)

type BroadcastList []Broadcast

// Broadcast is a patient's open call for help, visible to every verified
// doctor until exactly one of them claims it.
type Broadcast struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	PatientID      string     `db:"patient_id" json:"patient_id"`
	Message        string     `db:"message" json:"message"`
	Status         string     `db:"status" json:"status"`
	AssistedBy     *string    `db:"assisted_by" json:"assisted_by,omitempty"`
	ConversationID *uuid.UUID `db:"conversation_id" json:"conversation_id,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at" json:"-"`
}
