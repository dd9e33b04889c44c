package clock

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Manual is an AlarmClock whose time only moves when told to. Alarms fire
// synchronously inside Advance/Set, in due order, on the calling goroutine.
// Intended for tests.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	alarms []*manualAlarm
}

// NewManual returns a manual clock frozen at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// ManualFactory hands out the same Manual clock for every timezone, so a test
// controls all sites from one place.
type ManualFactory struct {
	Clock *Manual
}

func (f ManualFactory) AlarmClockForTimezone(timezone int) AlarmClock {
	return f.Clock
}

func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Manual) InstantiateAlarm(d time.Duration, ring func()) Alarm {
	if d < 0 {
		panic(fmt.Sprintf("clock: negative alarm duration %v", d))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	a := &manualAlarm{clock: c, due: c.now.Add(d), ring: ring}
	c.alarms = append(c.alarms, a)
	return a
}

// Advance moves time forward by d, firing every alarm that becomes due.
// Alarms scheduled by a firing callback fire too if they fall inside d.
func (c *Manual) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}

// Set jumps time to t (which must not move backwards) and fires due alarms.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	if t.Before(c.now) {
		c.mu.Unlock()
		panic("clock: manual clock cannot move backwards")
	}
	for {
		a := c.popDue(t)
		if a == nil {
			break
		}
		c.now = a.due
		c.mu.Unlock()
		a.ring()
		c.mu.Lock()
	}
	c.now = t
	c.mu.Unlock()
}

// popDue removes and returns the earliest alarm due at or before t, nil if
// none. Caller holds c.mu.
func (c *Manual) popDue(t time.Time) *manualAlarm {
	sort.SliceStable(c.alarms, func(i, j int) bool {
		return c.alarms[i].due.Before(c.alarms[j].due)
	})
	for i, a := range c.alarms {
		if a.cancelled {
			continue
		}
		if a.due.After(t) {
			return nil
		}
		c.alarms = append(c.alarms[:i], c.alarms[i+1:]...)
		return a
	}
	return nil
}

type manualAlarm struct {
	clock     *Manual
	due       time.Time
	ring      func()
	cancelled bool
}

func (a *manualAlarm) Cancel() {
	a.clock.mu.Lock()
	defer a.clock.mu.Unlock()
	a.cancelled = true
}
