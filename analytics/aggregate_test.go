package analytics

import (
	"reflect"
	"testing"

	"github.com/studyhall-app/studyhall_api/model"
)

func fixtureSessions(t *testing.T) []model.StudySession {
	t.Helper()
	return []model.StudySession{
		session(t, "math", "algebra", 60, "2024-01-08 09:00"),
		session(t, "math", "algebra", 30, "2024-01-08 20:00"),
		session(t, "math", "calculus", 90, "2024-01-09 10:00"),
		session(t, "physics", "optics", 45, "2024-01-09 15:00"),
		session(t, "physics", "optics", 15, "2023-12-20 11:00"), // outside week range
		session(t, "history", "rome", 120, "2023-10-01 11:00"),  // outside month range
	}
}

func TestAggregateTotalsAndAverages(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	res := Aggregate(fixtureSessions(t), Scope{Range: RangeWeek}, now)

	if res.Sessions != 4 {
		t.Errorf("sessions = %d, want 4", res.Sessions)
	}
	if res.TotalMinutes != 225 {
		t.Errorf("total minutes = %d, want 225", res.TotalMinutes)
	}
	if res.TotalHours != 3.8 { // 225/60 = 3.75 rounded to one decimal
		t.Errorf("total hours = %v, want 3.8", res.TotalHours)
	}
	if res.ActiveDays != 2 {
		t.Errorf("active days = %d, want 2", res.ActiveDays)
	}
	// 225 minutes over 2 active days.
	if res.AvgDailyMinutes != 113 {
		t.Errorf("avg daily minutes = %d, want 113", res.AvgDailyMinutes)
	}
	// 225 minutes over 4 sessions.
	if res.AvgSessionMinutes != 56 {
		t.Errorf("avg session minutes = %d, want 56", res.AvgSessionMinutes)
	}
	if res.PerDay["2024-01-08"] != 90 || res.PerDay["2024-01-09"] != 135 {
		t.Errorf("per-day map wrong: %v", res.PerDay)
	}
}

func TestAggregateTopicAndSubtopicFilter(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	sessions := fixtureSessions(t)

	byTopic := Aggregate(sessions, Scope{Range: RangeAll, Topic: "math"}, now)
	if byTopic.Sessions != 3 || byTopic.TotalMinutes != 180 {
		t.Errorf("topic filter: sessions=%d minutes=%d, want 3/180", byTopic.Sessions, byTopic.TotalMinutes)
	}

	bySub := Aggregate(sessions, Scope{Range: RangeAll, Topic: "math", Subtopic: "algebra"}, now)
	if bySub.Sessions != 2 || bySub.TotalMinutes != 90 {
		t.Errorf("subtopic filter: sessions=%d minutes=%d, want 2/90", bySub.Sessions, bySub.TotalMinutes)
	}
}

func TestAggregateRangeCutoffs(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	sessions := fixtureSessions(t)

	month := Aggregate(sessions, Scope{Range: RangeMonth}, now)
	if month.Sessions != 5 { // everything but the October session
		t.Errorf("month scope sessions = %d, want 5", month.Sessions)
	}

	all := Aggregate(sessions, Scope{Range: RangeAll}, now)
	if all.Sessions != 6 {
		t.Errorf("all scope sessions = %d, want 6", all.Sessions)
	}
}

func TestAggregateEmptyScopeIsZeroNotNaN(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	res := Aggregate(fixtureSessions(t), Scope{Range: RangeWeek, Topic: "chemistry"}, now)

	if res.Sessions != 0 || res.TotalMinutes != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if res.AvgDailyMinutes != 0 || res.AvgSessionMinutes != 0 {
		t.Errorf("averages over empty scope must be 0, got daily=%d session=%d", res.AvgDailyMinutes, res.AvgSessionMinutes)
	}
	if res.TotalHours != 0 {
		t.Errorf("total hours = %v, want 0", res.TotalHours)
	}
}

func TestAggregateNegativeDurationCoerced(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	sessions := []model.StudySession{
		session(t, "math", "algebra", -50, "2024-01-09 10:00"),
		session(t, "math", "algebra", 30, "2024-01-09 11:00"),
	}

	res := Aggregate(sessions, Scope{Range: RangeWeek}, now)
	if res.TotalMinutes != 30 {
		t.Errorf("negative duration leaked into sum: %d", res.TotalMinutes)
	}
}

func TestWeeklyRollup(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	sessions := []model.StudySession{
		session(t, "math", "algebra", 60, "2024-01-09 10:00"),  // bucket 0
		session(t, "math", "algebra", 30, "2024-01-08 10:00"),  // bucket 0
		session(t, "math", "algebra", 45, "2024-01-01 10:00"),  // bucket 1
		session(t, "math", "algebra", 15, "2023-12-20 10:00"),  // bucket 3
		session(t, "math", "algebra", 120, "2023-11-01 10:00"), // outside window
	}

	res := Aggregate(sessions, Scope{Range: RangeAll}, now)
	if len(res.Weekly) != 4 {
		t.Fatalf("got %d weekly buckets, want 4", len(res.Weekly))
	}
	if res.Weekly[0].Sessions != 2 || res.Weekly[0].TotalMinutes != 90 {
		t.Errorf("bucket 0 = %+v, want 2 sessions / 90 min", res.Weekly[0])
	}
	if res.Weekly[1].Sessions != 1 || res.Weekly[1].TotalMinutes != 45 {
		t.Errorf("bucket 1 = %+v, want 1 session / 45 min", res.Weekly[1])
	}
	if res.Weekly[2].Sessions != 0 {
		t.Errorf("bucket 2 should be empty: %+v", res.Weekly[2])
	}
	if res.Weekly[3].Sessions != 1 || res.Weekly[3].TotalMinutes != 15 {
		t.Errorf("bucket 3 = %+v, want 1 session / 15 min", res.Weekly[3])
	}
}

func TestMonthlyRollup(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	sessions := []model.StudySession{
		session(t, "math", "algebra", 60, "2024-01-05 10:00"),
		session(t, "math", "algebra", 30, "2023-12-20 10:00"),
		session(t, "math", "algebra", 45, "2023-08-15 10:00"),
		session(t, "math", "algebra", 90, "2023-06-01 10:00"), // older than 6 months
	}

	res := Aggregate(sessions, Scope{Range: RangeAll}, now)
	if len(res.Monthly) != 6 {
		t.Fatalf("got %d monthly buckets, want 6", len(res.Monthly))
	}
	if res.Monthly[0].Month != "2024-01" || res.Monthly[0].TotalMinutes != 60 {
		t.Errorf("bucket 0 = %+v", res.Monthly[0])
	}
	if res.Monthly[1].Month != "2023-12" || res.Monthly[1].TotalMinutes != 30 {
		t.Errorf("bucket 1 = %+v", res.Monthly[1])
	}
	if res.Monthly[5].Month != "2023-08" || res.Monthly[5].TotalMinutes != 45 {
		t.Errorf("bucket 5 = %+v", res.Monthly[5])
	}
}

func TestDailyTrendWindow(t *testing.T) {
	now := ts(t, "2024-01-30 12:00")
	sessions := []model.StudySession{
		session(t, "math", "algebra", 60, "2024-01-30 10:00"),
		session(t, "physics", "optics", 30, "2024-01-30 11:00"),
		session(t, "math", "calculus", 45, "2024-01-15 10:00"),
		session(t, "math", "algebra", 90, "2023-12-01 10:00"), // outside window
	}

	res := Aggregate(sessions, Scope{Range: RangeAll}, now)
	if len(res.Trend) != 30 {
		t.Fatalf("got %d trend points, want 30", len(res.Trend))
	}
	if res.Trend[0].Day != "2024-01-01" || res.Trend[29].Day != "2024-01-30" {
		t.Fatalf("trend window bounds wrong: %s .. %s", res.Trend[0].Day, res.Trend[29].Day)
	}

	last := res.Trend[29]
	if last.Sessions != 2 || last.TotalMinutes != 90 || last.Topics != 2 {
		t.Errorf("today's trend point = %+v, want 2 sessions / 90 min / 2 topics", last)
	}

	// A zero-activity day is present, not skipped.
	if res.Trend[1].Sessions != 0 || res.Trend[1].TotalMinutes != 0 || res.Trend[1].Topics != 0 {
		t.Errorf("zero day not zeroed: %+v", res.Trend[1])
	}
}

func TestTopicBreakdownOrdering(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	res := Aggregate(fixtureSessions(t), Scope{Range: RangeAll}, now)

	if len(res.Topics) != 3 {
		t.Fatalf("got %d topics, want 3: %+v", len(res.Topics), res.Topics)
	}
	// math 180 > history 120 > physics 60, descending by total duration.
	if res.Topics[0].Topic != "math" || res.Topics[1].Topic != "history" || res.Topics[2].Topic != "physics" {
		t.Fatalf("topic order wrong: %s, %s, %s", res.Topics[0].Topic, res.Topics[1].Topic, res.Topics[2].Topic)
	}

	math := res.Topics[0]
	if math.Sessions != 3 || math.TotalMinutes != 180 || math.AvgMinutes != 60 {
		t.Errorf("math stat = %+v", math)
	}
	// algebra and calculus tie at 90 minutes; ties break alphabetically.
	if len(math.Subtopics) != 2 || math.Subtopics[0].Subtopic != "algebra" {
		t.Errorf("subtopic order wrong: %+v", math.Subtopics)
	}
}

func TestAggregateRecomputationConsistency(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	sessions := fixtureSessions(t)

	first := Aggregate(sessions, Scope{Range: RangeMonth, Topic: "math"}, now)
	second := Aggregate(sessions, Scope{Range: RangeMonth, Topic: "math"}, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestMetricsOf(t *testing.T) {
	sessions := fixtureSessions(t)
	m := MetricsOf(sessions, StreakResult{Current: 2, Longest: 5})

	if m.SessionCount != 6 {
		t.Errorf("session count = %d, want 6", m.SessionCount)
	}
	if m.TotalDurationMinutes != 360 {
		t.Errorf("total duration = %d, want 360", m.TotalDurationMinutes)
	}
	if m.DistinctTopicCount != 3 {
		t.Errorf("distinct topics = %d, want 3", m.DistinctTopicCount)
	}
	if m.CurrentStreak != 2 || m.LongestStreak != 5 {
		t.Errorf("streak fields not carried through: %+v", m)
	}
}
