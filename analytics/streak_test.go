package analytics

import "testing"

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name        string
		days        []DayKey // sorted descending
		today       DayKey
		yesterday   DayKey
		wantCurrent int
		wantLongest int
	}{
		{
			name: "no study days",
		},
		{
			name:        "run broken before today",
			days:        []DayKey{"2024-01-05", "2024-01-03", "2024-01-02", "2024-01-01"},
			today:       "2024-01-05",
			yesterday:   "2024-01-04",
			wantCurrent: 1,
			wantLongest: 3,
		},
		{
			name:        "grace day preserves streak",
			days:        []DayKey{"2024-01-02", "2024-01-01"},
			today:       "2024-01-03",
			yesterday:   "2024-01-02",
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "gap breaks streak",
			days:        []DayKey{"2024-01-03", "2024-01-01"},
			today:       "2024-01-03",
			yesterday:   "2024-01-02",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "neither today nor yesterday studied",
			days:        []DayKey{"2024-01-02", "2024-01-01"},
			today:       "2024-01-05",
			yesterday:   "2024-01-04",
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "single day today",
			days:        []DayKey{"2024-01-05"},
			today:       "2024-01-05",
			yesterday:   "2024-01-04",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "single day yesterday",
			days:        []DayKey{"2024-01-04"},
			today:       "2024-01-05",
			yesterday:   "2024-01-04",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "current run is the longest ever",
			days:        []DayKey{"2024-01-10", "2024-01-09", "2024-01-08", "2024-01-07", "2024-01-04", "2024-01-03"},
			today:       "2024-01-10",
			yesterday:   "2024-01-09",
			wantCurrent: 4,
			wantLongest: 4,
		},
		{
			name:        "historical run longer than current",
			days:        []DayKey{"2024-01-10", "2024-01-05", "2024-01-04", "2024-01-03", "2024-01-02"},
			today:       "2024-01-10",
			yesterday:   "2024-01-09",
			wantCurrent: 1,
			wantLongest: 4,
		},
		{
			name:        "streak across month boundary",
			days:        []DayKey{"2024-02-01", "2024-01-31", "2024-01-30"},
			today:       "2024-02-01",
			yesterday:   "2024-01-31",
			wantCurrent: 3,
			wantLongest: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStreak(tc.days, tc.today, tc.yesterday)
			if got.Current != tc.wantCurrent {
				t.Errorf("current = %d, want %d", got.Current, tc.wantCurrent)
			}
			if got.Longest != tc.wantLongest {
				t.Errorf("longest = %d, want %d", got.Longest, tc.wantLongest)
			}
		})
	}
}

// Longest streak must never decrease as later study days are appended.
func TestLongestStreakMonotonic(t *testing.T) {
	days := []DayKey{}
	prev := 0
	add := []DayKey{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08"}

	for _, day := range add {
		days = append([]DayKey{day}, days...) // keep descending order
		got := ComputeStreak(days, day, DayKey(day.Time().AddDate(0, 0, -1).Format("2006-01-02")))
		if got.Longest < prev {
			t.Fatalf("longest streak decreased from %d to %d after adding %s", prev, got.Longest, day)
		}
		prev = got.Longest
	}

	if prev != 4 {
		t.Fatalf("final longest = %d, want 4", prev)
	}
}
