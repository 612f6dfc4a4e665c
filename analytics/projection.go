package analytics

import (
	"time"

	"github.com/studyhall-app/studyhall_api/model"
)

// Horizons is the fixed set of future day-counts projections are computed
// for.
var Horizons = []int{150, 180, 210, 250, 300, 365, 400, 500}

// ProjectionPoint extrapolates total study hours over one horizon.
type ProjectionPoint struct {
	Days       int     `json:"days"`
	TotalHours float64 `json:"total_hours"` // one decimal
}

// ScopeProjection carries the projection series for one scope (overall,
// a topic, or a topic/subtopic pair) using that scope's own historical
// daily average.
type ScopeProjection struct {
	Topic           string            `json:"topic,omitempty"`
	Subtopic        string            `json:"subtopic,omitempty"`
	AvgDailyMinutes int               `json:"avg_daily_minutes"`
	Points          []ProjectionPoint `json:"points"`
}

// Project extrapolates total hours for each horizon from an average daily
// duration in minutes. A zero average yields all-zero projections rather
// than an error.
func Project(avgDailyMinutes int, horizons []int) []ProjectionPoint {
	points := make([]ProjectionPoint, 0, len(horizons))
	for _, days := range horizons {
		points = append(points, ProjectionPoint{
			Days:       days,
			TotalHours: round1(float64(avgDailyMinutes) * float64(days) / 60),
		})
	}
	return points
}

// ActiveProjections computes the projection series at all three
// granularities: overall, per topic, and per subtopic. Each scope uses its
// own daily average. Scopes whose average in the filtered range is 0 are
// omitted from the listing.
func ActiveProjections(sessions []model.StudySession, r TimeRange, now time.Time) []ScopeProjection {
	var out []ScopeProjection

	overall := Aggregate(sessions, Scope{Range: r}, now)
	if overall.AvgDailyMinutes > 0 {
		out = append(out, ScopeProjection{
			AvgDailyMinutes: overall.AvgDailyMinutes,
			Points:          Project(overall.AvgDailyMinutes, Horizons),
		})
	}

	for _, topic := range overall.Topics {
		agg := Aggregate(sessions, Scope{Range: r, Topic: topic.Topic}, now)
		if agg.AvgDailyMinutes > 0 {
			out = append(out, ScopeProjection{
				Topic:           topic.Topic,
				AvgDailyMinutes: agg.AvgDailyMinutes,
				Points:          Project(agg.AvgDailyMinutes, Horizons),
			})
		}
		for _, sub := range topic.Subtopics {
			subAgg := Aggregate(sessions, Scope{Range: r, Topic: topic.Topic, Subtopic: sub.Subtopic}, now)
			if subAgg.AvgDailyMinutes > 0 {
				out = append(out, ScopeProjection{
					Topic:           topic.Topic,
					Subtopic:        sub.Subtopic,
					AvgDailyMinutes: subAgg.AvgDailyMinutes,
					Points:          Project(subAgg.AvgDailyMinutes, Horizons),
				})
			}
		}
	}
	return out
}
