package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/rsvp-service/internal/config"
	"github.com/spec-kit/rsvp-service/internal/events"
)

// NotificationService tells the couple about guest record changes.
type NotificationService struct {
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	cfg         config.NotificationConfig
	unsubscribe []events.Unsubscribe
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to guest change events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.unsubscribe = append(n.unsubscribe,
		n.dispatcher.Subscribe(events.EventGuestCreated, n.handleGuestCreated),
		n.dispatcher.Subscribe(events.EventGuestUpdated, n.handleGuestUpdated),
		n.dispatcher.Subscribe(events.EventGuestDeleted, n.handleGuestDeleted),
	)
}

// Stop detaches all registered handlers.
func (n *NotificationService) Stop() {
	for _, unsub := range n.unsubscribe {
		unsub()
	}
	n.unsubscribe = nil
}

func (n *NotificationService) handleGuestCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("GuestCreated", zap.String("guest_id", event.GuestID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleGuestUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("GuestUpdated", zap.String("guest_id", event.GuestID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleGuestDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("GuestDeleted", zap.String("guest_id", event.GuestID))
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if n.cfg.EmailFrom == "" {
		return
	}
	n.logger.Debug("email notification stub", zap.String("from", n.cfg.EmailFrom), zap.String("event", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if n.cfg.WebhookURL == "" {
		return
	}
	n.logger.Debug("webhook notification stub", zap.String("url", n.cfg.WebhookURL), zap.String("event", string(event.Type)))
}
