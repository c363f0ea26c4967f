package schedule

import "time"

// SecondsPerDay is the length of a service day in seconds. Schedule times may
// exceed it for trips that run past midnight.
const SecondsPerDay = 86400

// DateLayout is the GTFS calendar date layout (YYYYMMDD).
const DateLayout = "20060102"

// Weekday identifies a day of the week as used by calendar rules.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(?)"
	}
	return weekdayNames[d]
}

// WeekdayOf maps a time.Weekday to a Weekday.
func WeekdayOf(d time.Weekday) Weekday {
	// time.Sunday is 0, calendar rules start on Monday.
	return Weekday((int(d) + 6) % 7)
}

// Previous returns the day before d.
func (d Weekday) Previous() Weekday {
	return (d + 6) % 7
}

// CivilInstant is an evaluation instant already resolved in the feed's
// reference timezone.
type CivilInstant struct {
	Date    string // YYYYMMDD
	Weekday Weekday
	Seconds int // seconds since local midnight
	// DayLength is the distance in seconds from the previous service day's
	// reference to this one: 82800 or 90000 across a daylight saving
	// transition. Zero means SecondsPerDay.
	DayLength int
}

// CivilInstantAt resolves t into a civil instant in loc. A nil loc means UTC.
//
// Seconds are measured from "noon minus 12h" of the civil date, which is how
// GTFS defines schedule times and differs from wall-clock midnight on days
// with a daylight saving transition.
func CivilInstantAt(t time.Time, loc *time.Location) CivilInstant {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	y, m, d := local.Date()
	ref := time.Date(y, m, d, 12, 0, 0, 0, loc).Add(-12 * time.Hour)
	prevRef := time.Date(y, m, d-1, 12, 0, 0, 0, loc).Add(-12 * time.Hour)
	return CivilInstant{
		Date:      local.Format(DateLayout),
		Weekday:   WeekdayOf(local.Weekday()),
		Seconds:   int(local.Sub(ref) / time.Second),
		DayLength: int(ref.Sub(prevRef) / time.Second),
	}
}

func (c CivilInstant) dayLength() int {
	if c.DayLength > 0 {
		return c.DayLength
	}
	return SecondsPerDay
}

// PreviousDay returns the same instant expressed against the previous service
// day. Seconds grows by the length of that day, which is not always
// SecondsPerDay when a daylight saving transition falls in between.
func (c CivilInstant) PreviousDay() CivilInstant {
	prev := c.Date
	if d, err := time.Parse(DateLayout, c.Date); err == nil {
		prev = d.AddDate(0, 0, -1).Format(DateLayout)
	}
	return CivilInstant{
		Date:    prev,
		Weekday: c.Weekday.Previous(),
		Seconds: c.Seconds + c.dayLength(),
	}
}
