package analytics

// StreakResult is the derived streak view over a set of study days.
type StreakResult struct {
	Current int
	Longest int
}

// ComputeStreak derives current and longest consecutive-day streaks from the
// unique study-day keys, sorted descending. Today and yesterday are passed in
// by the caller so the calculation stays deterministic and testable.
//
// The current streak anchors on today when today is a study day. When it is
// not but yesterday is, the streak is preserved through the grace day and
// counted from yesterday instead. Otherwise it is 0.
func ComputeStreak(days []DayKey, today, yesterday DayKey) StreakResult {
	if len(days) == 0 {
		return StreakResult{}
	}

	current := walkBack(days, today)
	if current == 0 {
		current = walkBack(days, yesterday)
	}

	longest := longestRun(days)
	// A freshly extended run that has not yet been closed by a gap must not
	// under-report as the historical longest.
	if current > longest {
		longest = current
	}

	return StreakResult{Current: current, Longest: longest}
}

// walkBack counts consecutive days backwards starting from anchor. Returns 0
// when anchor itself is not a study day.
func walkBack(days []DayKey, anchor DayKey) int {
	idx := -1
	for i, d := range days {
		if d == anchor {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0
	}

	streak := 1
	for i := idx; i+1 < len(days); i++ {
		// days is sorted descending, so days[i+1] is the earlier one.
		if DaysBetween(days[i+1], days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// longestRun scans the full day list once in ascending order, tracking the
// longest consecutive run ever recorded.
func longestRun(days []DayKey) int {
	if len(days) == 0 {
		return 0
	}

	longest := 1
	run := 1
	// Walk ascending: descending slice traversed from the tail.
	for i := len(days) - 1; i > 0; i-- {
		if DaysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}
	return longest
}
