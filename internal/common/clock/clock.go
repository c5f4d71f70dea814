package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/wangandai/ascentbot/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// ZoneClock implements the Clock interface using the system clock pinned to
// a fixed location. Expedition schedules are wall-clock times of day, so
// every comparison happens in the deployment zone.
type ZoneClock struct {
	loc *time.Location
}

// NewZone creates a clock for the named IANA zone.
func NewZone(name string) (*ZoneClock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &ZoneClock{loc: loc}, nil
}

// Now returns the current time in the configured zone
func (c *ZoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}
