package intervention

import (
	"fmt"
	"strings"
	"time"

	"intervia/internal/shared/biztime"
	"intervia/internal/shared/constants"
)

// DateRange is an inclusive day range, both bounds at business-timezone
// midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StorageStrings renders the bounds in the legacy DD/MM/YYYY storage format.
func (r DateRange) StorageStrings() (string, string) {
	return biztime.FormatInBizTimezone(r.Start, constants.StorageDateFormat),
		biztime.FormatInBizTimezone(r.End, constants.StorageDateFormat)
}

// InputStrings renders the bounds in the HTML date-input format YYYY-MM-DD.
func (r DateRange) InputStrings() (string, string) {
	return biztime.FormatInBizTimezone(r.Start, constants.InputDateFormat),
		biztime.FormatInBizTimezone(r.End, constants.InputDateFormat)
}

// ResolvePreset converts a named date preset into a concrete range relative
// to now, in the business timezone. Weeks run Monday through Sunday.
func ResolvePreset(preset string, now time.Time) (DateRange, error) {
	today := biztime.StartOfDay(now)

	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "today":
		return DateRange{Start: today, End: today}, nil
	case "yesterday":
		day := today.AddDate(0, 0, -1)
		return DateRange{Start: day, End: day}, nil
	case "this-week":
		start := biztime.StartOfWeek(now)
		return DateRange{Start: start, End: biztime.StartOfDay(biztime.EndOfWeek(now))}, nil
	case "last-week":
		lastWeek := now.AddDate(0, 0, -7)
		start := biztime.StartOfWeek(lastWeek)
		return DateRange{Start: start, End: biztime.StartOfDay(biztime.EndOfWeek(lastWeek))}, nil
	case "this-month":
		start := biztime.StartOfMonth(now)
		return DateRange{Start: start, End: biztime.StartOfDay(biztime.EndOfMonth(now))}, nil
	case "last-month":
		start := biztime.StartOfMonth(now).AddDate(0, -1, 0)
		end := biztime.StartOfMonth(now).AddDate(0, 0, -1)
		return DateRange{Start: start, End: end}, nil
	}

	return DateRange{}, fmt.Errorf("unknown date preset: %s", preset)
}

// ParseDateFilter parses a date filter value: either a single date or a
// "start - end" range. Both the legacy storage format (DD/MM/YYYY) and the
// HTML input format (YYYY-MM-DD) are accepted.
func ParseDateFilter(value string) (DateRange, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateRange{}, fmt.Errorf("empty date filter")
	}

	if parts := strings.Split(value, " - "); len(parts) == 2 {
		start, err := parseDay(parts[0])
		if err != nil {
			return DateRange{}, err
		}
		end, err := parseDay(parts[1])
		if err != nil {
			return DateRange{}, err
		}
		if end.Before(start) {
			return DateRange{}, fmt.Errorf("date range end %q before start %q", parts[1], parts[0])
		}
		return DateRange{Start: start, End: end}, nil
	}

	day, err := parseDay(value)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: day, End: day}, nil
}

func parseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{constants.StorageDateFormat, constants.InputDateFormat} {
		if t, err := biztime.ParseDateInBizTimezone(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
