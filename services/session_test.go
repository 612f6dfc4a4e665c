package services

import (
	"testing"

	"github.com/studyhall-app/studyhall_api/analytics"
)

func TestWeeklyProgress(t *testing.T) {
	today := analytics.DayKey("2024-01-15")

	tests := []struct {
		name string
		days []analytics.DayKey
		goal int
		want int
	}{
		{
			name: "no study days",
			days: nil,
			goal: 5,
			want: 0,
		},
		{
			name: "days inside the window",
			days: []analytics.DayKey{"2024-01-15", "2024-01-13", "2024-01-10"},
			goal: 5,
			want: 3,
		},
		{
			name: "day outside the window ignored",
			days: []analytics.DayKey{"2024-01-15", "2024-01-08"},
			goal: 5,
			want: 1,
		},
		{
			name: "boundary day six days back counts",
			days: []analytics.DayKey{"2024-01-09"},
			goal: 5,
			want: 1,
		},
		{
			name: "progress capped at goal",
			days: []analytics.DayKey{"2024-01-15", "2024-01-14", "2024-01-13", "2024-01-12"},
			goal: 3,
			want: 3,
		},
		{
			name: "future day ignored",
			days: []analytics.DayKey{"2024-01-16", "2024-01-15"},
			goal: 5,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weeklyProgress(tt.days, today, tt.goal)
			if got != tt.want {
				t.Errorf("weeklyProgress() = %d, expected %d", got, tt.want)
			}
		})
	}
}
