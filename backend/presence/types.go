package presence

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// Weekdays holds the weekday abbreviations in bucket order, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Clock is a time of day with second precision.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock parses an HH:MM:SS string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// ClockFromSeconds converts seconds since midnight back to a Clock.
func ClockFromSeconds(seconds int) Clock {
	minutes, secs := seconds/60, seconds%60
	hours, mins := minutes/60, minutes%60
	return Clock{Hour: hours, Minute: mins, Second: secs}
}

// Seconds returns the number of seconds since midnight.
func (c Clock) Seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Presence is a single day's check-in and check-out.
type Presence struct {
	Start Clock
	End   Clock
}

// Record is one parsed CSV row.
type Record struct {
	UserID int
	Date   time.Time
	Presence
}

// UserDays maps a calendar date (UTC midnight) to that day's presence.
type UserDays map[time.Time]Presence

// Table holds every user's presence days keyed by user id.
type Table map[int]UserDays

func (t Table) add(r Record) {
	days, ok := t[r.UserID]
	if !ok {
		days = make(UserDays)
		t[r.UserID] = days
	}
	days[r.Date] = r.Presence
}

// weekdayIndex maps a date onto bucket order, Monday = 0.
func weekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
