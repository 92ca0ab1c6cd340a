package libs

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tourist-safety/config"
	"tourist-safety/models"
	"tourist-safety/services"
)

// MultiNotifier fans an event out to every configured notifier and joins
// their errors. With no notifiers it does nothing.
type MultiNotifier struct {
	notifiers []services.Notifier
}

func NewMultiNotifier(notifiers ...services.Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}

func (m *MultiNotifier) NotifySOS(ctx context.Context, alert models.SOSAlert) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.NotifySOS(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiNotifier) NotifyAuthorityPending(ctx context.Context, profile models.AuthorityProfile) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.NotifyAuthorityPending(ctx, profile); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewNotifier wires Redis and SMTP when they are configured. A backend that
// fails to start is logged and skipped. The returned cleanup closes the
// Redis client.
func NewNotifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*MultiNotifier, func()) {
	var notifiers []services.Notifier
	cleanup := func() {}

	client, err := NewRedisClient(ctx, cfg)
	switch {
	case err != nil:
		logger.Warn("redis unavailable, sos alerts will not be published", zap.Error(err))
	case client != nil:
		notifiers = append(notifiers, NewRedisNotifier(client, cfg.AlertChannel))
		cleanup = func() { client.Close() }
		logger.Info("redis connected", zap.String("channel", cfg.AlertChannel))
	}

	if mailer, err := NewMailNotifier(cfg); err != nil {
		logger.Info("mail notifications disabled", zap.String("reason", err.Error()))
	} else {
		notifiers = append(notifiers, mailer)
	}

	return NewMultiNotifier(notifiers...), cleanup
}
