package analytics

import (
	"testing"
	"time"

	"github.com/studyhall-app/studyhall_api/model"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return parsed
}

func session(t *testing.T, topic, subtopic string, minutes int, completedAt string) model.StudySession {
	t.Helper()
	return model.StudySession{
		ID:          topic + "/" + subtopic + "/" + completedAt,
		Topic:       topic,
		Subtopic:    subtopic,
		Duration:    minutes,
		CompletedAt: ts(t, completedAt),
	}
}

func TestDayKeyOfCollapsesTimeOfDay(t *testing.T) {
	morning := DayKeyOf(ts(t, "2024-01-05 06:30"))
	night := DayKeyOf(ts(t, "2024-01-05 23:59"))

	if morning != night {
		t.Fatalf("same calendar day produced different keys: %s vs %s", morning, night)
	}
	if morning != "2024-01-05" {
		t.Fatalf("unexpected key %s", morning)
	}
}

func TestStudyDaysUniqueSortedDescending(t *testing.T) {
	sessions := []model.StudySession{
		session(t, "math", "algebra", 30, "2024-01-01 09:00"),
		session(t, "math", "algebra", 45, "2024-01-01 21:00"), // same day, hours apart
		session(t, "math", "calculus", 60, "2024-01-03 10:00"),
		session(t, "physics", "optics", 20, "2024-01-02 08:00"),
	}

	days := StudyDays(sessions)

	want := []DayKey{"2024-01-03", "2024-01-02", "2024-01-01"}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d: %v", len(days), len(want), days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestStudyDaysEmptyAndInvalid(t *testing.T) {
	if got := StudyDays(nil); len(got) != 0 {
		t.Fatalf("empty input should yield empty set, got %v", got)
	}

	// A session missing its timestamp must not map to a bogus day.
	sessions := []model.StudySession{
		{ID: "broken", Topic: "math", Subtopic: "algebra", Duration: 30},
		session(t, "math", "algebra", 30, "2024-01-01 09:00"),
	}
	if got := StudyDays(sessions); len(got) != 1 || got[0] != "2024-01-01" {
		t.Fatalf("got %v, want only 2024-01-01", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b DayKey
		want int
	}{
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-05", "2024-01-01", -4},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2023-12-31", "2024-01-01", 1},
	}
	for _, tc := range tests {
		if got := DaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
