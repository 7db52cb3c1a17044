package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/curelink-health/chat-service/internal/model"
)

// CreateBroadcast opens a patient's call for help and announces it to every
// verified doctor currently known.
func (s *Service) CreateBroadcast(ctx context.Context, patientID, message string) (*model.Broadcast, error) {
	logger := s.logger(ctx, "CreateBroadcast")

	patient, err := s.repository.GetUser(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if patient.Role != model.RolePatient {
		return nil, fmt.Errorf("only patients can create broadcasts: %w", model.ErrForbidden)
	}

	broadcast, err := s.repository.CreateBroadcast(ctx, patientID, message)
	if err != nil {
		return nil, fmt.Errorf("failed to create broadcast: %v", err)
	}

	doctorIDs, err := s.repository.GetVerifiedDoctorIDs(ctx)
	if err != nil {
		logError(logger, fmt.Sprintf("failed to get verified doctors for broadcast %s: %v", broadcast.ID, err))
		return broadcast, nil
	}

	s.notifier.Notify(ctx, doctorIDs, model.Event{
		Name: model.EventNewBroadcast,
		From: patientID,
		Data: broadcast,
	})

	return broadcast, nil
}

// ClaimBroadcast is the doctor-facing claim operation. Exactly one doctor
// wins an open broadcast; the losers observe ErrConflict. A retry by the
// winner gets the existing conversation back tagged ErrAlreadyExists.
func (s *Service) ClaimBroadcast(ctx context.Context, broadcastID, doctorID string) (*model.Conversation, error) {
	logger := s.logger(ctx, "ClaimBroadcast")

	broadcast, err := s.repository.GetBroadcast(ctx, broadcastID)
	if err != nil {
		return nil, err
	}

	if broadcast.ConversationID != nil {
		existing, getErr := s.repository.GetConversation(ctx, broadcast.ConversationID.String())
		if getErr != nil {
			return nil, getErr
		}
		return existing, fmt.Errorf("conversation already exists for broadcast %s: %w", broadcastID, model.ErrAlreadyExists)
	}

	if broadcast.Status != model.BroadcastStatusOpen {
		return nil, fmt.Errorf("broadcast %s has already been assisted: %w", broadcastID, model.ErrConflict)
	}

	doctor, err := s.repository.GetUser(ctx, doctorID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("doctor %s is not a verified doctor: %w", doctorID, model.ErrForbidden)
		}
		return nil, err
	}

	if doctor.Role != model.RoleDoctor {
		return nil, fmt.Errorf("only doctors can respond to broadcasts: %w", model.ErrForbidden)
	}

	if !doctor.IsVerified() {
		return nil, fmt.Errorf("doctor %s is not verified yet: %w", doctorID, model.ErrForbidden)
	}

	if _, err := s.repository.GetUser(ctx, broadcast.PatientID); err != nil {
		return nil, err
	}

	conversation, err := s.ResolveConversation(ctx, broadcast.PatientID, doctorID, model.PatientDoctorConversationType, &broadcastID)
	if err != nil && errors.Is(err, model.ErrConflict) {
		logError(logger, fmt.Sprintf("lost claim race for broadcast %s: %v", broadcastID, err))
		return nil, fmt.Errorf("broadcast %s has already been assisted: %w", broadcastID, model.ErrConflict)
	}

	return conversation, err
}

func (s *Service) GetBroadcast(ctx context.Context, broadcastID string) (*model.Broadcast, error) {
	return s.repository.GetBroadcast(ctx, broadcastID)
}

// ListPatientBroadcasts returns the patient's own broadcasts, newest first.
func (s *Service) ListPatientBroadcasts(ctx context.Context, patientID string) (*model.BroadcastList, error) {
	patient, err := s.repository.GetUser(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if patient.Role != model.RolePatient {
		return nil, fmt.Errorf("only patients can view their broadcasts: %w", model.ErrForbidden)
	}

	return s.repository.ListPatientBroadcasts(ctx, patientID)
}

// ListOpenBroadcasts is the doctor inbox: every still-open broadcast.
func (s *Service) ListOpenBroadcasts(ctx context.Context) (*model.BroadcastList, error) {
	return s.repository.ListOpenBroadcasts(ctx)
}

// DeleteBroadcast soft-deletes a broadcast. Only the owning patient may
// delete it.
func (s *Service) DeleteBroadcast(ctx context.Context, broadcastID, userID string) error {
	broadcast, err := s.repository.GetBroadcast(ctx, broadcastID)
	if err != nil {
		return err
	}

	if broadcast.PatientID != userID {
		return fmt.Errorf("only the owning patient can delete a broadcast: %w", model.ErrForbidden)
	}

	return s.repository.SoftDeleteBroadcast(ctx, broadcastID)
}

func (s *Service) CountBroadcasts(ctx context.Context) (map[string]int64, error) {
	return s.repository.CountBroadcastsByStatus(ctx)
}
