package timer

import (
	"sync/atomic"
	"time"
)

// Layout is the timestamp format of Date and Last-Modified headers. Times must be in UTC
// before being formatted with it.
const Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Resolution is the frequency at which time is updated. Default 500ms are
// precise enough for setting I/O deadlines and for the Date header
const Resolution = 500 * time.Millisecond

// Time contains the unix-time in milliseconds updated every [Resolution] milliseconds
var Time = new(atomic.Int64)

var date = new(atomic.Pointer[string])

func Now() time.Time {
	millis := Time.Load()
	return time.Unix(millis/1000, (millis%1000)*1e6)
}

// Date returns the current time already formatted for the Date header. The string is
// rendered once per tick and shared between all the callers.
func Date() string {
	return *date.Load()
}

// Format renders an arbitrary time using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

func tick() {
	now := time.Now()
	Time.Store(now.UnixMilli())
	formatted := Format(now)
	date.Store(&formatted)
}

func init() {
	// there is no guarantee that the goroutine will be started immediately. If it won't,
	// some rapid usage of the timer will result in zero-time, which isn't great actually
	tick()

	go func() {
		for {
			time.Sleep(Resolution)
			tick()
		}
	}()
}
