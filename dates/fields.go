package dates

import "time"

// Fields holds the calendar fields of a date. Month is 1-indexed.
// Out of range values are normalised when converted with Time, so
// {2023, 1, 32} is Feb 1 2023.
type Fields struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// FieldsOf extracts the calendar fields of t in its own location.
func FieldsOf(t time.Time) Fields {
	year, month, day := t.Date()
	return Fields{Year: year, Month: int(month), Day: day}
}

// Time returns midnight of the date in loc. A nil loc means time.Local.
func (f Fields) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(f.Year, time.Month(f.Month), f.Day, 0, 0, 0, 0, loc)
}
