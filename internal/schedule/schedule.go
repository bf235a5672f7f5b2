package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEndNotAfterStart  = errors.New("end time must be after start time")
	ErrUnknownDay        = errors.New("unknown weekday")
	ErrUnknownField      = errors.New("unknown schedule field")
	ErrMalformedSchedule = errors.New("malformed schedule")
)

const (
	FieldStart = "start"
	FieldEnd   = "end"
)

// Order is the canonical Monday-first weekday order.
var Order = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// DayWindow is the working window of a single weekday.
// An empty Start or End means the day is closed.
type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsOpen reports whether both ends of the window are set.
func (w DayWindow) IsOpen() bool {
	return !IsClosedValue(w.Start) && !IsClosedValue(w.End)
}

// WeeklySchedule holds exactly one window per weekday.
// The zero value is a schedule closed on every day.
type WeeklySchedule struct {
	days [7]DayWindow
}

// ParseDay resolves a weekday name in any case ("monday", "MONDAY", "Mon").
func ParseDay(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, ErrUnknownDay
	}
	for _, d := range Order {
		full := strings.ToLower(d.String())
		if n == full || (len(n) == 3 && strings.HasPrefix(full, n)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, name)
}

// Window returns the window stored for d.
func (s WeeklySchedule) Window(d time.Weekday) DayWindow {
	if d < time.Sunday || d > time.Saturday {
		return DayWindow{}
	}
	return s.days[d]
}

// SetWindow updates one field of one day. When both ends end up set the end
// must be strictly after the start; a rejected update leaves s unchanged.
func (s *WeeklySchedule) SetWindow(day, field, value string) error {
	d, err := ParseDay(day)
	if err != nil {
		return err
	}

	f := strings.ToLower(strings.TrimSpace(field))
	switch f {
	case FieldStart, "open":
		f = FieldStart
	case FieldEnd, "close":
		f = FieldEnd
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	normalized, err := normalizeClock(value)
	if err != nil {
		return fmt.Errorf("%s %s: %w", d, f, err)
	}

	next := s.days[d]
	if f == FieldStart {
		next.Start = normalized
	} else {
		next.End = normalized
	}

	if err := checkWindow(next); err != nil {
		return fmt.Errorf("%s: %w", d, err)
	}

	s.days[d] = next
	return nil
}

// Validate checks that every open day ends after it starts.
func (s WeeklySchedule) Validate() error {
	for _, d := range Order {
		if err := checkWindow(s.days[d]); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
	}
	return nil
}

func checkWindow(w DayWindow) error {
	if !w.IsOpen() {
		return nil
	}
	start, err := ParseClock(w.Start)
	if err != nil {
		return err
	}
	end, err := ParseClock(w.End)
	if err != nil {
		return err
	}
	if end <= start {
		return ErrEndNotAfterStart
	}
	return nil
}

// MarshalJSON always emits all seven days in canonical order.
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(d.String())
		val, err := json.Marshal(s.days[d])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON is the strict decoder used for client input: every value goes
// through SetWindow, so out-of-order windows and unknown days are rejected.
func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = WeeklySchedule{}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	var next WeeklySchedule
	for day, v := range raw {
		var w DayWindow
		if err := json.Unmarshal(v, &w); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedSchedule, day, err)
		}
		if err := next.SetWindow(day, FieldStart, w.Start); err != nil {
			return err
		}
		if err := next.SetWindow(day, FieldEnd, w.End); err != nil {
			return err
		}
	}

	*s = next
	return nil
}

// ParseWeeklySchedule decodes a schedule as the backend may send it: an object,
// a JSON string holding an object, or null. Day keys may be in any case and
// windows may use start/end or open/close. Unknown keys are dropped and days
// with malformed or out-of-order times come back closed. A payload that is not
// a schedule at all yields a fully closed schedule and ErrMalformedSchedule.
func ParseWeeklySchedule(raw []byte) (WeeklySchedule, error) {
	var out WeeklySchedule

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return out, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
		}
		inner = strings.TrimSpace(inner)
		if inner == "" || inner == "null" {
			return out, nil
		}
		trimmed = []byte(inner)
	}

	var days map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &days); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	for key, v := range days {
		d, err := ParseDay(key)
		if err != nil {
			continue
		}
		out.days[d] = lenientWindow(v)
	}
	return out, nil
}

func lenientWindow(v json.RawMessage) DayWindow {
	var fields struct {
		Start *string `json:"start"`
		End   *string `json:"end"`
		Open  *string `json:"open"`
		Close *string `json:"close"`
	}
	if err := json.Unmarshal(v, &fields); err != nil {
		return DayWindow{}
	}

	start, end := fields.Start, fields.End
	if start == nil {
		start = fields.Open
	}
	if end == nil {
		end = fields.Close
	}
	if start == nil || end == nil {
		return DayWindow{}
	}

	s, err := normalizeClock(*start)
	if err != nil {
		return DayWindow{}
	}
	e, err := normalizeClock(*end)
	if err != nil {
		return DayWindow{}
	}
	w := DayWindow{Start: s, End: e}
	if !w.IsOpen() || checkWindow(w) != nil {
		return DayWindow{}
	}
	return w
}
