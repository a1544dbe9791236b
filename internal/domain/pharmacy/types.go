package pharmacy

import (
	"fmt"
	"strings"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thur"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

var weekdayOrder = map[Weekday]int{
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
	Sunday:    7,
}

// fixture files spell Thursday as "Thu"
var weekdayAliases = map[string]Weekday{
	"thu":       Thursday,
	"thurs":     Thursday,
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) IsValid() bool {
	_, ok := weekdayOrder[w]
	return ok
}

func (w Weekday) Order() int {
	return weekdayOrder[w]
}

func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for w := range weekdayOrder {
		if strings.EqualFold(string(w), s) {
			return w, nil
		}
	}
	if w, ok := weekdayAliases[strings.ToLower(s)]; ok {
		return w, nil
	}
	return "", ErrInvalidWeekday
}

// TimeOfDay is a wall clock time with minute precision.
type TimeOfDay struct {
	minutes int
}

const minutesPerDay = 24 * 60

// ParseTimeOfDay accepts HH:MM or HH:MM:SS; "24:00" wraps to midnight.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "24:00" || s == "24:00:00" {
		return TimeOfDay{}, nil
	}
	var t time.Time
	var err error
	switch len(s) {
	case len("15:04"):
		t, err = time.Parse("15:04", s)
	case len("15:04:05"):
		t, err = time.Parse("15:04:05", s)
	default:
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Minutes() int { return t.minutes % minutesPerDay }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Minutes()/60, t.Minutes()%60)
}

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Minutes() < o.Minutes() }
