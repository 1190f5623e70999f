package bootstrap

import (
	"context"
	"time"

	"event-registration/internal/infra/notifier"
	"event-registration/internal/pkg/config"
	"event-registration/internal/usecase/notify"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		func(cfg config.Config) notify.Mailer { return notifier.NewMailer(cfg.SMTP) },
		fx.Annotate(
			func(cfg config.Config) (*notifier.TelegramNotifier, error) {
				return notifier.NewTelegramNotifier(cfg.Telegram)
			},
			fx.As(new(notify.ChatNotifier)),
		),
		fx.Annotate(
			func(loc *time.Location) *notifier.TextTicketRenderer { return notifier.NewTextTicketRenderer(loc) },
			fx.As(new(notify.TicketRenderer)),
		),
		NewDispatcher,
		func(d *notify.Dispatcher) notify.Publisher { return d },
	),
	fx.Invoke(startDispatcher),
)

func NewDispatcher(
	cfg config.Config,
	mailer notify.Mailer,
	renderer notify.TicketRenderer,
	chat notify.ChatNotifier,
	recorder notify.Recorder,
) *notify.Dispatcher {
	opts := notify.Options{
		Workers:     cfg.Notification.Workers,
		QueueSize:   cfg.Notification.QueueSize,
		MaxAttempts: cfg.Notification.MaxAttempts,
		BaseBackoff: cfg.Notification.BaseBackoff,
		Timeout:     cfg.Notification.Timeout,
	}
	return notify.NewDispatcher(opts, mailer, renderer, chat, recorder)
}

// Stop drains the queue within the fx stop timeout.
func startDispatcher(lc fx.Lifecycle, d *notify.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return d.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
}
