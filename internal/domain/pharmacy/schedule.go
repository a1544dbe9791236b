package pharmacy

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidSchedule = errors.New("opening hours must contain entries like \"Mon 08:00 - 17:00\"")

var shiftPattern = regexp.MustCompile(`(\w+) (\d{2}:\d{2}) - (\d{2}:\d{2})`)

type Shift struct {
	Weekday Weekday
	Start   TimeOfDay
	End     TimeOfDay
}

// ParseSchedule reads every "Day HH:MM - HH:MM" entry in s. Text between
// entries is ignored and a blank schedule yields no shifts.
func ParseSchedule(s string) ([]Shift, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	matches := shiftPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, ErrInvalidSchedule
	}

	shifts := make([]Shift, 0, len(matches))
	for _, m := range matches {
		weekday, err := ParseWeekday(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, m[0])
		}
		start, err := ParseTimeOfDay(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, m[0])
		}
		end, err := ParseTimeOfDay(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, m[0])
		}
		shifts = append(shifts, Shift{Weekday: weekday, Start: start, End: end})
	}
	return shifts, nil
}
