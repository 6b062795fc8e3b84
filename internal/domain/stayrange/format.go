package stayrange

import (
	"net/url"
	"time"
)

const (
	naiveLayout = "2006-01-02T15:04:05"
	dateLayout  = "2006-01-02"

	Placeholder = "Select date & time"

	SearchParamStart = "startDateTime"
	SearchParamEnd   = "endDateTime"
)

// FormatNaive renders t as local wall-clock time without an offset.
func FormatNaive(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(naiveLayout)
}

// ParseNaive reads a timestamp without offset as wall-clock time in loc.
func ParseNaive(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(naiveLayout, s, loc)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, s, loc)
}

// SearchParams builds the query the external search API expects. Incomplete
// ranges produce no parameters.
func SearchParams(r TimeRange) url.Values {
	v := url.Values{}
	if !r.IsComplete() {
		return v
	}
	v.Set(SearchParamStart, FormatNaive(r.StartDateTime()))
	v.Set(SearchParamEnd, FormatNaive(r.EndDateTime()))
	return v
}

// Label is the one-line summary shown on the search form.
func Label(r TimeRange) string {
	switch {
	case r.IsEmpty():
		return Placeholder
	case !r.HasStart():
		return r.SelectedDate().Format("Mon, Jan 2")
	case !r.HasEnd():
		return r.SelectedDate().Format("Mon, Jan 2") + " · " + r.StartLabel()
	default:
		return r.SelectedDate().Format("Mon, Jan 2") + " · " + r.StartLabel() + " – " + r.EndLabel() +
			" (" + DurationLabel(r.Duration()) + ")"
	}
}
