package analytics

import (
	"testing"

	"github.com/studyhall-app/studyhall_api/model"
)

func TestProjectRoundTrip(t *testing.T) {
	// One hour a day over 150 days is exactly 150 hours.
	points := Project(60, Horizons)

	if len(points) != len(Horizons) {
		t.Fatalf("got %d points, want %d", len(points), len(Horizons))
	}
	if points[0].Days != 150 || points[0].TotalHours != 150.0 {
		t.Fatalf("points[0] = %+v, want {150 150.0}", points[0])
	}
	if points[len(points)-1].Days != 500 || points[len(points)-1].TotalHours != 500.0 {
		t.Fatalf("last point = %+v, want {500 500.0}", points[len(points)-1])
	}
}

func TestProjectRounding(t *testing.T) {
	// 25 min/day * 150 days = 3750 min = 62.5 h.
	points := Project(25, []int{150})
	if points[0].TotalHours != 62.5 {
		t.Errorf("total hours = %v, want 62.5", points[0].TotalHours)
	}

	// 37 min/day * 365 days = 13505 min = 225.08333... h -> 225.1.
	points = Project(37, []int{365})
	if points[0].TotalHours != 225.1 {
		t.Errorf("total hours = %v, want 225.1", points[0].TotalHours)
	}
}

func TestProjectZeroAverage(t *testing.T) {
	points := Project(0, Horizons)
	for _, p := range points {
		if p.TotalHours != 0 {
			t.Fatalf("zero average must project to zero hours, got %+v", p)
		}
	}
}

func TestActiveProjections(t *testing.T) {
	now := ts(t, "2024-01-10 12:00")
	sessions := []model.StudySession{
		session(t, "math", "algebra", 60, "2024-01-08 09:00"),
		session(t, "math", "algebra", 60, "2024-01-09 09:00"),
		session(t, "physics", "optics", 30, "2024-01-09 15:00"),
	}

	scopes := ActiveProjections(sessions, RangeWeek, now)

	// Overall, math, math/algebra, physics, physics/optics.
	if len(scopes) != 5 {
		t.Fatalf("got %d projection scopes, want 5: %+v", len(scopes), scopes)
	}

	overall := scopes[0]
	if overall.Topic != "" || overall.Subtopic != "" {
		t.Fatalf("first scope should be overall, got %+v", overall)
	}
	// 150 min over 2 active days = 75 min/day.
	if overall.AvgDailyMinutes != 75 {
		t.Errorf("overall avg = %d, want 75", overall.AvgDailyMinutes)
	}

	for _, sp := range scopes {
		if sp.AvgDailyMinutes == 0 {
			t.Errorf("zero-average scope leaked into active listing: %+v", sp)
		}
		if len(sp.Points) != len(Horizons) {
			t.Errorf("scope %s/%s has %d points, want %d", sp.Topic, sp.Subtopic, len(sp.Points), len(Horizons))
		}
	}
}

func TestActiveProjectionsOmitsInactiveScope(t *testing.T) {
	now := ts(t, "2024-06-01 12:00")
	// Session far outside the week range: every scope inactive.
	sessions := []model.StudySession{
		session(t, "math", "algebra", 60, "2024-01-08 09:00"),
	}

	if scopes := ActiveProjections(sessions, RangeWeek, now); len(scopes) != 0 {
		t.Fatalf("expected no active scopes, got %+v", scopes)
	}
}
