package bootstrap

import (
	"event-registration/internal/pkg/metrics"
	"event-registration/internal/usecase/commands"
	"event-registration/internal/usecase/notify"
	"event-registration/internal/usecase/queries"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.Recorder { return m },
		func(m *metrics.Metrics) queries.CapacityRecorder { return m },
		func(m *metrics.Metrics) notify.Recorder { return m },
	),
)
