//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/infra/memstore"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/pkg/metrics"
	"event-registration/internal/usecase/commands"
	"event-registration/internal/usecase/notify"
	"event-registration/tests/common/builder"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

type capturePublisher struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (p *capturePublisher) Publish(msg notify.Message) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return true
}

func (p *capturePublisher) Messages() []notify.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.Message(nil), p.msgs...)
}

// sequenceCodes hands out ids in order and repeats the last one once exhausted.
type sequenceCodes struct {
	mu  sync.Mutex
	ids []string
	n   int
}

func (g *sequenceCodes) Generate(_ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.ids[min(g.n, len(g.ids)-1)]
	g.n++
	return id, nil
}

type fixture struct {
	store        *memstore.Store
	publisher    *capturePublisher
	metrics      *metrics.Metrics
	clock        *clock.MockClock
	admission    commands.AdmissionCommands
	cancellation commands.CancellationCommands
	admin        commands.AdminCommands
}

func newFixture(t *testing.T, codes registration.CodeGenerator) *fixture {
	t.Helper()
	return newFixtureWithEvents(t, codes, nil)
}

// newFixtureWithEvents wires the commands against events, or the built-in registry when nil.
func newFixtureWithEvents(t *testing.T, codes registration.CodeGenerator, events *event.Registry) *fixture {
	t.Helper()
	if events == nil {
		events = event.DefaultRegistry()
	}
	if codes == nil {
		codes = registration.NewRandomCodeGenerator()
	}
	f := &fixture{
		store:     memstore.New(),
		publisher: &capturePublisher{},
		metrics:   metrics.New(),
		clock:     clock.NewMockClock(baseTime),
	}
	f.admission = commands.NewAdmissionCommands(f.store, events, codes, f.publisher, f.metrics, f.clock)
	f.cancellation = commands.NewCancellationCommands(f.store, events, f.publisher, f.metrics, f.clock)
	f.admin = commands.NewAdminCommands(f.store, f.clock)
	return f
}

func emailN(i int) string {
	return fmt.Sprintf("applicant%03d@example.com", i)
}

// admitN admits n single applicants and fails the test unless every one is accepted.
func (f *fixture) admitN(t *testing.T, kind event.Kind, slot string, n int, offset int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		in := builder.NewRegistrationBuilder().WithEvent(kind, slot).WithEmail(emailN(offset + i)).BuildAdmitInput()
		res, err := f.admission.Admit(context.Background(), in)
		require.NoError(t, err)
		require.True(t, res.Accepted, "applicant %d should be admitted", offset+i)
		ids = append(ids, res.ID)
	}
	return ids
}

func (f *fixture) occupancy(t *testing.T, kind event.Kind, slot string) int {
	t.Helper()
	n, err := f.store.Occupancy(context.Background(), kind, slot)
	require.NoError(t, err)
	return n
}
