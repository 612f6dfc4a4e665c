package analytics

import (
	"sort"
	"time"

	"github.com/studyhall-app/studyhall_api/model"
)

// DayKey identifies a local calendar day (year-month-day, no time component).
type DayKey string

const dayKeyLayout = "2006-01-02"

// DayKeyOf reduces a timestamp to its local calendar day. Two sessions on
// the same local day collapse to the same key no matter how far apart their
// clock times are.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// Time returns the key's midnight in UTC. Day-gap arithmetic runs on these
// values so DST shifts in the local zone can never produce a 23h or 25h "day".
func (k DayKey) Time() time.Time {
	t, err := time.Parse(dayKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Valid reports whether the key parses as a calendar date.
func (k DayKey) Valid() bool {
	_, err := time.Parse(dayKeyLayout, string(k))
	return err == nil
}

// DaysBetween returns the number of calendar days from a to b (positive when
// b is later).
func DaysBetween(a, b DayKey) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

// StudyDays reduces a session list to its unique calendar-day keys, sorted
// descending (most recent first). Sessions without a usable timestamp are
// skipped rather than mapped to a bogus day.
func StudyDays(sessions []model.StudySession) []DayKey {
	seen := make(map[DayKey]struct{}, len(sessions))
	for _, s := range sessions {
		if s.CompletedAt.IsZero() {
			continue
		}
		seen[DayKeyOf(s.CompletedAt)] = struct{}{}
	}

	days := make([]DayKey, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })
	return days
}
