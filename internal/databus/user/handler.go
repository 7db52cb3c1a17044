package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/curelink-health/chat-service/internal/config"
	"github.com/curelink-health/chat-service/internal/model"
)

// UpdateMessage is the payload published by the user service whenever a
// profile changes. Optional fields are only applied when present.
type UpdateMessage struct {
	UUID       string     `json:"uuid"`
	Name       *string    `json:"name,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Role       *string    `json:"role,omitempty"`
	Nickname   *string    `json:"nickname,omitempty"`
	AvatarLink *string    `json:"avatar_link,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{repository: repo}
}

// Handler applies one user update event to the local users mirror.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdateHandler")

	var msg UpdateMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return
	}

	if msg.UUID == "" {
		logger.Error("user update without uuid, skipping")
		return
	}

	if msg.Name != nil || msg.Email != nil || msg.Role != nil {
		params := &model.UserParams{
			ID:   msg.UUID,
			Role: model.RolePatient,
		}
		if msg.Name != nil {
			params.Name = *msg.Name
		}
		if msg.Email != nil {
			params.Email = *msg.Email
		}
		if msg.Role != nil {
			params.Role = *msg.Role
		}
		if msg.AvatarLink != nil {
			params.AvatarURL = *msg.AvatarLink
		}

		if err := h.repository.AddNewUser(ctx, params); err != nil {
			logger.Error(fmt.Sprintf("failed to upsert user %s: %v", msg.UUID, err))
			return
		}
	}

	if msg.Nickname != nil {
		if err := h.repository.UpdateUserNickname(ctx, msg.UUID, *msg.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname for %s: %v", msg.UUID, err))
		}
	}

	if msg.AvatarLink != nil {
		if err := h.repository.UpdateUserAvatar(ctx, msg.UUID, *msg.AvatarLink); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar for %s: %v", msg.UUID, err))
		}
	}

	if msg.ApprovedAt != nil {
		if err := h.repository.SetUserApproval(ctx, msg.UUID, msg.ApprovedAt); err != nil {
			logger.Error(fmt.Sprintf("failed to update approval for %s: %v", msg.UUID, err))
		}
	}
}
