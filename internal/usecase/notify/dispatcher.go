package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"event-registration/internal/pkg/backoff"
	"event-registration/internal/pkg/errs"
)

var (
	ErrUnknownKind       = errs.New("unknown notification kind")
	ErrDispatcherStopped = errs.New("notification dispatcher stopped")
)

type Options struct {
	Workers     int
	QueueSize   int
	MaxAttempts int
	BaseBackoff time.Duration
	// Timeout bounds a single attempt of a single step.
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 64
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 1
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// Dispatcher fans a message out to the ticket, email and chat steps on background workers.
// A failing step never affects the registration that produced the message.
type Dispatcher struct {
	opts     Options
	mailer   Mailer
	renderer TicketRenderer
	chat     ChatNotifier
	recorder Recorder

	mu      sync.RWMutex
	closed  bool
	started bool
	queue   chan Message
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewDispatcher(opts Options, mailer Mailer, renderer TicketRenderer, chat ChatNotifier, recorder Recorder) *Dispatcher {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		opts:     opts,
		mailer:   mailer,
		renderer: renderer,
		chat:     chat,
		recorder: recorder,
		queue:    make(chan Message, opts.QueueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (d *Dispatcher) Publish(msg Message) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.recorder.RecordNotificationDropped(string(msg.Kind))
		slog.Warn("notification dropped: dispatcher stopped",
			"kind", msg.Kind, "registration_id", msg.RegistrationID)
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		d.recorder.RecordNotificationDropped(string(msg.Kind))
		slog.Error("notification dropped: queue full",
			"kind", msg.Kind, "registration_id", msg.RegistrationID, "queue_size", d.opts.QueueSize)
		return false
	}
}

func (d *Dispatcher) Start(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDispatcherStopped
	}
	if d.started {
		return nil
	}
	d.started = true

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	slog.Info("notification dispatcher started", "workers", d.opts.Workers, "queue_size", d.opts.QueueSize)
	return nil
}

// Stop drains queued messages until ctx expires, then abandons in-flight retries.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		d.cancel()
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		slog.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		slog.Warn("notification dispatcher stopped before queue drained")
		return ctx.Err()
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for msg := range d.queue {
		d.Process(d.ctx, msg)
	}
	slog.Debug("notification worker exited", "worker", id)
}

// Process runs every step for msg synchronously. Workers call it; tests may call it directly.
func (d *Dispatcher) Process(ctx context.Context, msg Message) {
	d.deliverMail(ctx, msg)
	d.deliverChat(ctx, msg)
}

func (d *Dispatcher) deliverMail(ctx context.Context, msg Message) {
	mail, err := ComposeMail(msg)
	if err != nil {
		d.fail(msg, StepEmail, err)
		return
	}

	if msg.Kind == KindAdmission && d.renderer != nil {
		ticket, renderErr := d.renderTicket(ctx, msg)
		if renderErr != nil {
			// Degrade to a confirmation without the ticket.
			d.fail(msg, StepTicket, renderErr)
		} else {
			mail.Attachments = append(mail.Attachments, ticket)
		}
	}

	err = d.retry(ctx, msg, StepEmail, func(ctx context.Context) error {
		return d.mailer.Send(ctx, mail)
	})
	if err != nil {
		d.fail(msg, StepEmail, err)
	}
}

func (d *Dispatcher) renderTicket(ctx context.Context, msg Message) (Attachment, error) {
	ctx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()
	ticket, err := d.renderer.Render(ctx, msg)
	if err != nil {
		return Attachment{}, err
	}
	d.recorder.RecordNotificationSent(string(msg.Kind), StepTicket)
	return ticket, nil
}

func (d *Dispatcher) deliverChat(ctx context.Context, msg Message) {
	if d.chat == nil {
		return
	}
	text, err := ComposeChat(msg)
	if err != nil {
		d.fail(msg, StepChat, err)
		return
	}
	err = d.retry(ctx, msg, StepChat, func(ctx context.Context) error {
		return d.chat.Notify(ctx, text)
	})
	if err != nil {
		d.fail(msg, StepChat, err)
	}
}

func (d *Dispatcher) retry(ctx context.Context, msg Message, step string, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < d.opts.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
		lastErr = fn(attemptCtx)
		cancel()
		if lastErr == nil {
			d.recorder.RecordNotificationSent(string(msg.Kind), step)
			return nil
		}

		if attempt == d.opts.MaxAttempts-1 {
			break
		}

		waitTime := backoff.Exponential(attempt, d.opts.BaseBackoff)
		slog.Warn("retrying notification step",
			"kind", msg.Kind,
			"step", step,
			"registration_id", msg.RegistrationID,
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", lastErr.Error())

		select {
		case <-ctx.Done():
			return errs.Wrap(ctx.Err(), "notification retry aborted")
		case <-time.After(waitTime):
		}
	}
	return errs.Wrapf(lastErr, "%s failed after %d attempts", step, d.opts.MaxAttempts)
}

func (d *Dispatcher) fail(msg Message, step string, err error) {
	d.recorder.RecordNotificationFailure(string(msg.Kind), step)
	slog.Error("notification step failed",
		"kind", msg.Kind,
		"step", step,
		"message_id", msg.ID.String(),
		"registration_id", msg.RegistrationID,
		"error", err.Error())
}
