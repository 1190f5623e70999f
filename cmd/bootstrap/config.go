package bootstrap

import (
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewEventRegistry,
		NewLocation,
	),
)

func NewEventRegistry(cfg config.Config) (*event.Registry, error) {
	return event.LoadRegistry(cfg.Events.File)
}

// NewLocation is the zone used for ticket and CSV timestamps.
func NewLocation(cfg config.Config) *time.Location {
	if loc, err := time.LoadLocation(cfg.Log.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)
}
