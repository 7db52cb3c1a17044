package notify

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/curelink-health/chat-service/internal/config"
	"github.com/curelink-health/chat-service/internal/model"
	"github.com/curelink-health/chat-service/internal/pkg/presence"
)

// GlobalChannel receives events addressed to every connected actor.
const GlobalChannel = "broadcasts"

// Pusher forwards an event to a recipient channel on the external push
// gateway, so actors connected to another process instance still hear it.
type Pusher interface {
	Publish(ctx context.Context, channel string, event model.Event) error
}

// Service fans an event out to each recipient's live channels. Delivery is
// best-effort: failures are logged and swallowed, never surfaced to the
// triggering operation.
type Service struct {
	registry *presence.Registry
	pusher   Pusher
}

// New builds a notifier over the presence registry. pusher may be nil when
// no push gateway is configured.
func New(registry *presence.Registry, pusher Pusher) *Service {
	return &Service{
		registry: registry,
		pusher:   pusher,
	}
}

func (s *Service) Notify(ctx context.Context, recipientIDs []string, event model.Event) {
	for _, recipientID := range recipientIDs {
		s.deliver(ctx, recipientID, event)
	}
}

func (s *Service) NotifyAll(ctx context.Context, event model.Event) {
	for _, recipientID := range s.registry.Online() {
		s.deliver(ctx, recipientID, event)
	}

	if s.pusher != nil {
		if err := s.pusher.Publish(ctx, GlobalChannel, event); err != nil {
			s.logError(ctx, fmt.Sprintf("failed to publish %s to global channel: %v", event.Name, err))
		}
	}
}

func (s *Service) deliver(ctx context.Context, recipientID string, event model.Event) {
	for _, ch := range s.registry.Lookup(recipientID) {
		if err := ch.Send(event); err != nil {
			s.logError(ctx, fmt.Sprintf("failed to deliver %s to %s: %v", event.Name, recipientID, err))
		}
	}

	if s.pusher != nil {
		if err := s.pusher.Publish(ctx, UserChannel(recipientID), event); err != nil {
			s.logError(ctx, fmt.Sprintf("failed to publish %s for %s: %v", event.Name, recipientID, err))
		}
	}
}

func (s *Service) logError(ctx context.Context, msg string) {
	if logger := logger_lib.FromContext(ctx, config.KeyLogger); logger != nil {
		logger.Error(msg)
	}
}

// UserChannel names the push-gateway channel for one actor.
func UserChannel(userID string) string {
	return "user:" + userID
}
