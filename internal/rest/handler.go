package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/curelink-health/chat-service/internal/config"
	api "github.com/curelink-health/chat-service/internal/generated"
	"github.com/curelink-health/chat-service/internal/model"
	"github.com/curelink-health/chat-service/internal/service"
)

type Handler struct {
	chatService  ChatService
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(chatService ChatService, validator Validator, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		chatService:  chatService,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) CreateBroadcast(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateBroadcast")

	var req api.CreateBroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	patientID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get patient ID")
		h.writeError(w, "failed to get patient ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateBroadcast(&req); err != nil {
		logger.Error(fmt.Sprintf("broadcast validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("broadcast validation failed: %v", err), http.StatusBadRequest)
		return
	}

	broadcast, err := h.chatService.CreateBroadcast(r.Context(), patientID, req.Message)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create broadcast: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create broadcast: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.BroadcastResponse{
		Success: true,
		Data:    toAPIBroadcast(broadcast),
	}, http.StatusOK)
}

func (h *Handler) GetPatientBroadcasts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPatientBroadcasts")

	patientID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get patient ID")
		h.writeError(w, "failed to get patient ID", http.StatusInternalServerError)
		return
	}

	broadcasts, err := h.chatService.ListPatientBroadcasts(r.Context(), patientID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list broadcasts: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list broadcasts: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, toAPIBroadcastList(broadcasts), http.StatusOK)
}

func (h *Handler) GetOpenBroadcasts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetOpenBroadcasts")

	broadcasts, err := h.chatService.ListOpenBroadcasts(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list open broadcasts: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list open broadcasts: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, toAPIBroadcastList(broadcasts), http.StatusOK)
}

func (h *Handler) GetBroadcastStats(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetBroadcastStats")

	stats, err := h.chatService.CountBroadcasts(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count broadcasts: %v", err))
		h.writeError(w, fmt.Sprintf("failed to count broadcasts: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.BroadcastStatsResponse{
		Success: true,
		Data:    stats,
	}, http.StatusOK)
}

func (h *Handler) GetBroadcast(w http.ResponseWriter, r *http.Request, broadcastId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetBroadcast")

	broadcast, err := h.chatService.GetBroadcast(r.Context(), broadcastId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get broadcast: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get broadcast: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.BroadcastResponse{
		Success: true,
		Data:    toAPIBroadcast(broadcast),
	}, http.StatusOK)
}

func (h *Handler) DeleteBroadcast(w http.ResponseWriter, r *http.Request, broadcastId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteBroadcast")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.chatService.DeleteBroadcast(r.Context(), broadcastId, userID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete broadcast: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete broadcast: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.StatusResponse{
		Success: true,
		Message: "broadcast deleted",
	}, http.StatusOK)
}

func (h *Handler) ClaimBroadcast(w http.ResponseWriter, r *http.Request, broadcastId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ClaimBroadcast")

	doctorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get doctor ID")
		h.writeError(w, "failed to get doctor ID", http.StatusInternalServerError)
		return
	}

	conversation, err := h.chatService.ClaimBroadcast(r.Context(), broadcastId, doctorID)
	if errors.Is(err, model.ErrAlreadyExists) {
		h.writeJSON(w, api.ConversationResponse{
			Success: false,
			Message: "broadcast is already assisted",
			Data:    toAPIConversation(conversation),
		}, http.StatusOK)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to claim broadcast: %v", err))
		h.writeError(w, fmt.Sprintf("failed to claim broadcast: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.ConversationResponse{
		Success: true,
		Data:    toAPIConversation(conversation),
	}, http.StatusOK)
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	creatorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get creator ID")
		h.writeError(w, "failed to get creator ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateConversation(&req, creatorID); err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	convType := ""
	if req.Type != nil {
		convType = *req.Type
	}

	conversation, err := h.chatService.ResolveConversation(r.Context(), creatorID, req.ParticipantId, convType, req.BroadcastId)
	if errors.Is(err, model.ErrAlreadyExists) {
		h.writeJSON(w, api.ConversationResponse{
			Success: false,
			Message: "conversation already exists",
			Data:    toAPIConversation(conversation),
		}, http.StatusOK)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create conversation: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.ConversationResponse{
		Success: true,
		Data:    toAPIConversation(conversation),
	}, http.StatusOK)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	conversations, err := h.chatService.ListConversations(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list conversations: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, toAPIConversationList(conversations), http.StatusOK)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversation")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	conversation, err := h.chatService.GetConversation(r.Context(), conversationId, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.ConversationResponse{
		Success: true,
		Data:    toAPIConversation(conversation),
	}, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request, conversationId string, params api.GetConversationMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	cursor := ""
	if params.Cursor != nil {
		cursor = *params.Cursor
	}
	var limit int32
	if params.Limit != nil {
		limit = int32(*params.Limit)
	}

	messages, err := h.chatService.ListMessages(r.Context(), userID, conversationId, cursor, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, toAPIMessageList(messages), http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	in := service.SendMessageInput{
		ConversationID:  conversationId,
		ReceiverID:      req.ReceiverId,
		Type:            model.TextMessageType,
		MedicineDetails: req.MedicineDetails,
		PatientName:     req.PatientName,
	}
	if req.MessageType != nil && *req.MessageType != "" {
		in.Type = *req.MessageType
	}
	if req.Message != nil {
		in.Message = *req.Message
	}

	message, err := h.chatService.SendMessage(r.Context(), senderID, in)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.MessageResponse{
		Success: true,
		Data:    toAPIMessage(message),
	}, http.StatusOK)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessage")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	message, err := h.chatService.GetMessage(r.Context(), messageId, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get message: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.MessageResponse{
		Success: true,
		Data:    toAPIMessage(message),
	}, http.StatusOK)
}

func (h *Handler) ReadMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ReadMessage")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.chatService.ReadMessage(r.Context(), messageId, userID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark message as read: %v", err))
		h.writeError(w, fmt.Sprintf("failed to mark message as read: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.StatusResponse{
		Success: true,
		Message: "message marked as read",
	}, http.StatusOK)
}

func (h *Handler) GetShopOwnerPrescriptions(w http.ResponseWriter, r *http.Request, params api.GetShopOwnerPrescriptionsParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetShopOwnerPrescriptions")

	shopOwnerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get shop owner ID")
		h.writeError(w, "failed to get shop owner ID", http.StatusInternalServerError)
		return
	}

	cursor := ""
	if params.Cursor != nil {
		cursor = *params.Cursor
	}
	var limit int32
	if params.Limit != nil {
		limit = int32(*params.Limit)
	}

	prescriptions, err := h.chatService.ListShopOwnerPrescriptions(r.Context(), shopOwnerID, cursor, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list prescriptions: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list prescriptions: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, toAPIMessageList(prescriptions), http.StatusOK)
}

func (h *Handler) GetShopOwnerPrescription(w http.ResponseWriter, r *http.Request, prescriptionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetShopOwnerPrescription")

	shopOwnerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get shop owner ID")
		h.writeError(w, "failed to get shop owner ID", http.StatusInternalServerError)
		return
	}

	prescription, err := h.chatService.GetShopOwnerPrescription(r.Context(), prescriptionId, shopOwnerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get prescription: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get prescription: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, api.MessageResponse{
		Success: true,
		Data:    toAPIMessage(prescription),
	}, http.StatusOK)
}

func (h *Handler) GetShopOwnerConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetShopOwnerConversations")

	shopOwnerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get shop owner ID")
		h.writeError(w, "failed to get shop owner ID", http.StatusInternalServerError)
		return
	}

	conversations, err := h.chatService.ListShopOwnerConversations(r.Context(), shopOwnerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list shop owner conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list shop owner conversations: %v", err), statusFromError(err))
		return
	}

	h.writeJSON(w, toAPIConversationList(conversations), http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, http.StatusOK)
}

func (h *Handler) GetConversationSubscribeToken(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationSubscribeToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if _, err := h.chatService.GetConversation(r.Context(), conversationId, userID); err != nil {
		logger.Error(fmt.Sprintf("failed to check conversation membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check conversation membership: %v", err), statusFromError(err))
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userID, conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   conversationId,
	}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toAPIBroadcast(b *model.Broadcast) api.Broadcast {
	out := api.Broadcast{
		Id:         b.ID.String(),
		PatientId:  b.PatientID,
		Message:    b.Message,
		Status:     b.Status,
		AssistedBy: b.AssistedBy,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
	if b.ConversationID != nil {
		conversationID := b.ConversationID.String()
		out.ConversationId = &conversationID
	}
	return out
}

func toAPIBroadcastList(broadcasts *model.BroadcastList) api.BroadcastListResponse {
	data := make([]api.Broadcast, 0, len(*broadcasts))
	for i := range *broadcasts {
		data = append(data, toAPIBroadcast(&(*broadcasts)[i]))
	}
	return api.BroadcastListResponse{
		Success: true,
		Data:    data,
		Count:   len(data),
	}
}

func toAPIConversation(c *model.Conversation) api.Conversation {
	out := api.Conversation{
		Id:            c.ID.String(),
		CreatorId:     c.CreatorID,
		ParticipantId: c.ParticipantID,
		Type:          c.Type,
		Status:        c.Status,
		AssistedBy:    c.AssistedBy,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
	if c.BroadcastID != nil {
		broadcastID := c.BroadcastID.String()
		out.BroadcastId = &broadcastID
	}
	return out
}

func toAPIConversationList(conversations *model.ConversationList) api.ConversationListResponse {
	data := make([]api.Conversation, 0, len(*conversations))
	for i := range *conversations {
		data = append(data, toAPIConversation(&(*conversations)[i]))
	}
	return api.ConversationListResponse{
		Success: true,
		Data:    data,
		Count:   len(data),
	}
}

func toAPIMessage(m *model.Message) api.Message {
	out := api.Message{
		Id:              m.ID.String(),
		ConversationId:  m.ConversationID.String(),
		SenderId:        m.SenderID,
		ReceiverId:      m.ReceiverID,
		MessageType:     m.Type,
		Message:         m.Message,
		MedicineDetails: m.MedicineDetails,
		PatientName:     m.PatientName,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
	if m.SourceMessageID != nil {
		sourceID := m.SourceMessageID.String()
		out.SourceMessageId = &sourceID
	}
	return out
}

func toAPIMessageList(messages *model.MessageList) api.MessageListResponse {
	data := make([]api.Message, 0, len(*messages))
	for i := range *messages {
		data = append(data, toAPIMessage(&(*messages)[i]))
	}
	return api.MessageListResponse{
		Success: true,
		Data:    data,
		Count:   len(data),
	}
}
