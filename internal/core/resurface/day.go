package resurface

import "time"

// DayLayout is the wire and hash form of a calendar day
const DayLayout = "2006-01-02"

// Day is a calendar date stored as midnight UTC
// comparisons and arithmetic stay exact regardless of the caller's location
type Day struct{ t time.Time }

// DayOf returns the calendar day of t as observed in loc (UTC when nil)
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateDay builds a Day from a date value as scanned from postgres
func DateDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses YYYY-MM-DD
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return Day{t: t}, nil
}

// AddDays shifts the day by n calendar days
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

// Before reports whether d is strictly earlier than o
func (d Day) Before(o Day) bool { return d.t.Before(o.t) }

// After reports whether d is strictly later than o
func (d Day) After(o Day) bool { return d.t.After(o.t) }

// Equal reports whether both days are the same date
func (d Day) Equal(o Day) bool { return d.t.Equal(o.t) }

// Time returns midnight UTC of the day
func (d Day) Time() time.Time { return d.t }

// IsZero reports whether d was never set
func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) String() string { return d.t.Format(DayLayout) }

// Window is an inclusive range of calendar days
type Window struct {
	From Day
	To   Day
}

// Contains reports whether d falls inside the window bounds
func (w Window) Contains(d Day) bool { return !d.Before(w.From) && !d.After(w.To) }

// Windows are the day ranges the engine reads for a given today
type Windows struct {
	Recent        Window
	Prior         Window
	OldestAllowed Day
}

// WindowsFor derives the recent, prior and age windows for today
func (r Rules) WindowsFor(today Day) Windows {
	span := r.WindowDays
	return Windows{
		Recent:        Window{From: today.AddDays(-(span - 1)), To: today},
		Prior:         Window{From: today.AddDays(-(2*span - 1)), To: today.AddDays(-span)},
		OldestAllowed: today.AddDays(-r.MinAgeDays),
	}
}
