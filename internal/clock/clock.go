// Package clock supplies the time source and one-shot alarm facility used by
// auction sites. Sites never read the wall clock directly: they go through an
// AlarmClock so that tests can drive time by hand.
package clock

import (
	"fmt"
	"time"
)

// Alarm is a pending one-shot callback. Cancelling an already fired or
// already cancelled alarm is a no-op.
type Alarm interface {
	Cancel()
}

// AlarmClock is the time source of a single site: tenant-local current time
// plus the ability to schedule callbacks. A callback fires no earlier than
// its duration elapses; "not later than" is best-effort.
type AlarmClock interface {
	Now() time.Time
	InstantiateAlarm(d time.Duration, ring func()) Alarm
}

// Factory builds one AlarmClock per tenant timezone.
type Factory interface {
	AlarmClockForTimezone(timezone int) AlarmClock
}

// SystemClock is the production AlarmClock: wall time shifted into a fixed
// UTC-offset zone, alarms backed by the runtime timer.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a wall clock reporting time in the fixed zone at
// the given whole-hour UTC offset.
func NewSystemClock(timezone int) *SystemClock {
	return &SystemClock{
		loc: time.FixedZone(fmt.Sprintf("UTC%+d", timezone), timezone*3600),
	}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *SystemClock) InstantiateAlarm(d time.Duration, ring func()) Alarm {
	return &systemAlarm{timer: time.AfterFunc(d, ring)}
}

type systemAlarm struct {
	timer *time.Timer
}

func (a *systemAlarm) Cancel() {
	a.timer.Stop()
}

// SystemFactory hands out SystemClocks.
type SystemFactory struct{}

func (SystemFactory) AlarmClockForTimezone(timezone int) AlarmClock {
	return NewSystemClock(timezone)
}
