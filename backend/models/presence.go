package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is how average start/end timestamps are rendered.
const TimestampLayout = "2006-01-02 15:04:05"

// PresenceHeader is the first row of the presence_weekday report.
var PresenceHeader = [2]string{"Weekday", "Presence (s)"}

// User is an entry of the users listing.
type User struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// WeekdayMean is rendered as ["Mon", 30047.5].
type WeekdayMean struct {
	Weekday string
	Seconds float64
}

func (w WeekdayMean) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{w.Weekday, w.Seconds})
}

func (w *WeekdayMean) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("weekday mean: want 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &w.Weekday); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &w.Seconds)
}

// WeekdayTotal is rendered as ["Mon", 30047].
type WeekdayTotal struct {
	Weekday string
	Seconds int
}

func (w WeekdayTotal) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{w.Weekday, w.Seconds})
}

func (w *WeekdayTotal) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("weekday total: want 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &w.Weekday); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &w.Seconds)
}

// PresenceReport is the presence_weekday payload: a header row followed by
// one total per weekday.
type PresenceReport []WeekdayTotal

func (r PresenceReport) MarshalJSON() ([]byte, error) {
	rows := make([]interface{}, 0, len(r)+1)
	rows = append(rows, PresenceHeader)
	for _, total := range r {
		rows = append(rows, total)
	}
	return json.Marshal(rows)
}

func (r *PresenceReport) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("presence report: missing header row")
	}

	var header [2]string
	if err := json.Unmarshal(raw[0], &header); err != nil || header != PresenceHeader {
		return fmt.Errorf("presence report: bad header row %s", raw[0])
	}

	report := make(PresenceReport, len(raw)-1)
	for i, row := range raw[1:] {
		if err := json.Unmarshal(row, &report[i]); err != nil {
			return err
		}
	}
	*r = report
	return nil
}

// WeekdayStartEnd is rendered as ["Tue", "0001-01-01 09:39:05", "0001-01-01 17:59:52"].
type WeekdayStartEnd struct {
	Weekday string
	Start   time.Time
	End     time.Time
}

func (w WeekdayStartEnd) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{
		w.Weekday,
		w.Start.Format(TimestampLayout),
		w.End.Format(TimestampLayout),
	})
}

func (w *WeekdayStartEnd) UnmarshalJSON(data []byte) error {
	var raw [3]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.Parse(TimestampLayout, raw[1])
	if err != nil {
		return fmt.Errorf("weekday start: %w", err)
	}
	end, err := time.Parse(TimestampLayout, raw[2])
	if err != nil {
		return fmt.Errorf("weekday end: %w", err)
	}
	w.Weekday, w.Start, w.End = raw[0], start, end
	return nil
}
