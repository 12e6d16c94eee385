// Package timezone pins timestamps to the zone named by APP_TIMEZONE. The zone is loaded on
// first use and falls back to UTC when unset or unknown.
package timezone

import (
	"stay/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	once        sync.Once
)

// Location returns the application timezone.
func Location() *time.Location {
	once.Do(func() {
		appLocation = load(config.Get().App.Timezone)
	})

	return appLocation
}

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the application timezone, truncated to milliseconds so it
// survives a round trip through either store unchanged.
func Now() time.Time {
	return time.Now().In(Location()).Truncate(time.Millisecond)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
