package schedule

import "time"

// NotAvailable is shown in the weekly hours grid for closed days.
const NotAvailable = "N/A"

// Availability answers "is the artist working on this date".
type Availability struct {
	Open   bool       `json:"open"`
	Day    string     `json:"day"`
	Window *DayWindow `json:"window,omitempty"`
}

// IsOpenOn looks up the window for the weekday of date in date's own location.
func IsOpenOn(s WeeklySchedule, date time.Time) Availability {
	d := date.Weekday()
	w := s.Window(d)
	res := Availability{Day: d.String()}
	if !w.IsOpen() {
		return res
	}
	res.Open = true
	res.Window = &w
	return res
}

// GridRow is one line of the weekly hours table.
type GridRow struct {
	Day   string `json:"day"`
	Open  bool   `json:"open"`
	Start string `json:"start"`
	End   string `json:"end"`
	Hours string `json:"hours"`
}

// WeekGrid renders the schedule Monday through Sunday.
func WeekGrid(s WeeklySchedule) []GridRow {
	rows := make([]GridRow, 0, len(Order))
	for _, d := range Order {
		w := s.Window(d)
		row := GridRow{Day: d.String(), Start: NotAvailable, End: NotAvailable, Hours: NotAvailable}
		if w.IsOpen() {
			row.Open = true
			row.Start = w.Start
			row.End = w.End
			row.Hours = w.Start + " - " + w.End
		}
		rows = append(rows, row)
	}
	return rows
}

// Status is the live open/closed answer for a moment in time.
type Status struct {
	OpenNow bool       `json:"open_now"`
	Day     string     `json:"day"`
	Window  *DayWindow `json:"window,omitempty"`
}

// StatusAt reports whether t falls inside the window of its weekday, with
// start inclusive and end exclusive.
func StatusAt(s WeeklySchedule, t time.Time) Status {
	a := IsOpenOn(s, t)
	st := Status{Day: a.Day, Window: a.Window}
	if !a.Open {
		return st
	}
	start, err1 := ParseClock(a.Window.Start)
	end, err2 := ParseClock(a.Window.End)
	if err1 != nil || err2 != nil {
		return st
	}
	now := t.Hour()*60 + t.Minute()
	st.OpenNow = now >= start && now < end
	return st
}
