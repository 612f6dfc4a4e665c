package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/studyhall-app/studyhall_api/model"
)

// TimeRange selects the trailing window a scope covers.
type TimeRange string

const (
	RangeWeek  TimeRange = "week"  // last 7 days
	RangeMonth TimeRange = "month" // last 30 days
	RangeAll   TimeRange = "all"
)

// Scope filters aggregation and projection. Zero-value fields mean "no
// filter"; Subtopic is only meaningful together with Topic.
type Scope struct {
	Range    TimeRange
	Topic    string
	Subtopic string
}

// SubtopicStat aggregates the sessions of one subtopic within a topic.
type SubtopicStat struct {
	Subtopic     string `json:"subtopic"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"total_minutes"`
	AvgMinutes   int    `json:"avg_minutes"`
}

// TopicStat aggregates the sessions of one topic, broken down by subtopic.
type TopicStat struct {
	Topic        string         `json:"topic"`
	Sessions     int            `json:"sessions"`
	TotalMinutes int            `json:"total_minutes"`
	AvgMinutes   int            `json:"avg_minutes"`
	Subtopics    []SubtopicStat `json:"subtopics"`
}

// WeekBucket is one of the trailing week-long rollup buckets.
type WeekBucket struct {
	WeekStart    DayKey `json:"week_start"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"total_minutes"`
}

// MonthBucket is one calendar-month rollup bucket, keyed "2006-01".
type MonthBucket struct {
	Month        string `json:"month"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"total_minutes"`
}

// TrendPoint is one day of the fixed 30-day daily trend window. Zero-activity
// days are present with all counts at 0.
type TrendPoint struct {
	Day          DayKey `json:"day"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"total_minutes"`
	Topics       int    `json:"topics"`
}

const (
	weeklyBuckets  = 4
	monthlyBuckets = 6
	trendDays      = 30
)

// Result is the full aggregated view of a session list under a scope.
type Result struct {
	Sessions          int            `json:"sessions"`
	TotalMinutes      int            `json:"total_minutes"`
	TotalHours        float64        `json:"total_hours"` // one decimal
	ActiveDays        int            `json:"active_days"`
	AvgSessionMinutes int            `json:"avg_session_minutes"`
	AvgDailyMinutes   int            `json:"avg_daily_minutes"`
	PerDay            map[DayKey]int `json:"per_day"`
	Weekly            []WeekBucket   `json:"weekly"`
	Monthly           []MonthBucket  `json:"monthly"`
	Trend             []TrendPoint   `json:"trend"`
	Topics            []TopicStat    `json:"topics"`
}

// Aggregate computes grouped statistics over the session list. It is a pure
// function of its inputs: now is supplied by the caller and aggregating the
// same list twice yields identical results. Buckets with no sessions report
// 0, never NaN.
func Aggregate(sessions []model.StudySession, scope Scope, now time.Time) Result {
	byTopic := filterTopic(sessions, scope)
	scoped := filterRange(byTopic, scope.Range, now)

	perDay := make(map[DayKey]int, len(scoped))
	total := 0
	for _, s := range scoped {
		if s.CompletedAt.IsZero() {
			continue
		}
		d := clampDuration(s.Duration)
		perDay[DayKeyOf(s.CompletedAt)] += d
		total += d
	}

	res := Result{
		Sessions:          len(scoped),
		TotalMinutes:      total,
		TotalHours:        round1(float64(total) / 60),
		ActiveDays:        len(perDay),
		AvgSessionMinutes: divRound(total, len(scoped)),
		AvgDailyMinutes:   divRound(total, len(perDay)),
		PerDay:            perDay,
		Weekly:            weeklyRollup(byTopic, now),
		Monthly:           monthlyRollup(byTopic, now),
		Trend:             dailyTrend(byTopic, now),
		Topics:            topicBreakdown(scoped),
	}
	return res
}

// MetricsOf derives the figures achievement evaluation runs against.
func MetricsOf(sessions []model.StudySession, streak StreakResult) Metrics {
	total := 0
	topics := map[string]struct{}{}
	for _, s := range sessions {
		total += clampDuration(s.Duration)
		if s.Topic != "" {
			topics[s.Topic] = struct{}{}
		}
	}
	return Metrics{
		SessionCount:         len(sessions),
		CurrentStreak:        streak.Current,
		LongestStreak:        streak.Longest,
		TotalDurationMinutes: total,
		DistinctTopicCount:   len(topics),
	}
}

func filterTopic(sessions []model.StudySession, scope Scope) []model.StudySession {
	if scope.Topic == "" {
		return sessions
	}
	out := make([]model.StudySession, 0, len(sessions))
	for _, s := range sessions {
		if s.Topic != scope.Topic {
			continue
		}
		if scope.Subtopic != "" && s.Subtopic != scope.Subtopic {
			continue
		}
		out = append(out, s)
	}
	return out
}

func filterRange(sessions []model.StudySession, r TimeRange, now time.Time) []model.StudySession {
	var cutoff time.Time
	switch r {
	case RangeWeek:
		cutoff = now.AddDate(0, 0, -7)
	case RangeMonth:
		cutoff = now.AddDate(0, 0, -30)
	default:
		return sessions
	}

	out := make([]model.StudySession, 0, len(sessions))
	for _, s := range sessions {
		if s.CompletedAt.After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// weeklyRollup buckets the trailing 4 week-long windows ending now, most
// recent first.
func weeklyRollup(sessions []model.StudySession, now time.Time) []WeekBucket {
	buckets := make([]WeekBucket, weeklyBuckets)
	for i := 0; i < weeklyBuckets; i++ {
		start := now.AddDate(0, 0, -7*(i+1))
		buckets[i].WeekStart = DayKeyOf(start)
	}

	for _, s := range sessions {
		if s.CompletedAt.IsZero() {
			continue
		}
		age := now.Sub(s.CompletedAt)
		if age < 0 {
			continue
		}
		idx := int(age.Hours() / (24 * 7))
		if idx < 0 || idx >= weeklyBuckets {
			continue
		}
		buckets[idx].Sessions++
		buckets[idx].TotalMinutes += clampDuration(s.Duration)
	}
	return buckets
}

// monthlyRollup buckets the trailing 6 calendar months including the current
// one, most recent first.
func monthlyRollup(sessions []model.StudySession, now time.Time) []MonthBucket {
	index := make(map[string]int, monthlyBuckets)
	buckets := make([]MonthBucket, monthlyBuckets)
	for i := 0; i < monthlyBuckets; i++ {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		key := m.Format("2006-01")
		buckets[i].Month = key
		index[key] = i
	}

	for _, s := range sessions {
		if s.CompletedAt.IsZero() {
			continue
		}
		if i, ok := index[s.CompletedAt.Format("2006-01")]; ok {
			buckets[i].Sessions++
			buckets[i].TotalMinutes += clampDuration(s.Duration)
		}
	}
	return buckets
}

// dailyTrend produces the fixed 30-day window ending today, oldest first,
// with zero-activity days included.
func dailyTrend(sessions []model.StudySession, now time.Time) []TrendPoint {
	points := make([]TrendPoint, trendDays)
	index := make(map[DayKey]int, trendDays)
	topicsPerDay := make(map[DayKey]map[string]struct{}, trendDays)
	for i := 0; i < trendDays; i++ {
		day := DayKeyOf(now.AddDate(0, 0, i-(trendDays-1)))
		points[i].Day = day
		index[day] = i
	}

	for _, s := range sessions {
		if s.CompletedAt.IsZero() {
			continue
		}
		day := DayKeyOf(s.CompletedAt)
		i, ok := index[day]
		if !ok {
			continue
		}
		points[i].Sessions++
		points[i].TotalMinutes += clampDuration(s.Duration)
		if topicsPerDay[day] == nil {
			topicsPerDay[day] = map[string]struct{}{}
		}
		topicsPerDay[day][s.Topic] = struct{}{}
	}

	for day, topics := range topicsPerDay {
		points[index[day]].Topics = len(topics)
	}
	return points
}

// topicBreakdown groups the scoped sessions by topic then subtopic, sorted
// descending by total duration.
func topicBreakdown(sessions []model.StudySession) []TopicStat {
	type subAgg struct {
		sessions int
		minutes  int
	}
	topics := map[string]map[string]*subAgg{}
	for _, s := range sessions {
		if topics[s.Topic] == nil {
			topics[s.Topic] = map[string]*subAgg{}
		}
		agg := topics[s.Topic][s.Subtopic]
		if agg == nil {
			agg = &subAgg{}
			topics[s.Topic][s.Subtopic] = agg
		}
		agg.sessions++
		agg.minutes += clampDuration(s.Duration)
	}

	out := make([]TopicStat, 0, len(topics))
	for topic, subs := range topics {
		stat := TopicStat{Topic: topic}
		for sub, agg := range subs {
			stat.Sessions += agg.sessions
			stat.TotalMinutes += agg.minutes
			stat.Subtopics = append(stat.Subtopics, SubtopicStat{
				Subtopic:     sub,
				Sessions:     agg.sessions,
				TotalMinutes: agg.minutes,
				AvgMinutes:   divRound(agg.minutes, agg.sessions),
			})
		}
		stat.AvgMinutes = divRound(stat.TotalMinutes, stat.Sessions)
		sort.Slice(stat.Subtopics, func(i, j int) bool {
			if stat.Subtopics[i].TotalMinutes != stat.Subtopics[j].TotalMinutes {
				return stat.Subtopics[i].TotalMinutes > stat.Subtopics[j].TotalMinutes
			}
			return stat.Subtopics[i].Subtopic < stat.Subtopics[j].Subtopic
		})
		out = append(out, stat)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMinutes != out[j].TotalMinutes {
			return out[i].TotalMinutes > out[j].TotalMinutes
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

func clampDuration(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return minutes
}

// divRound is integer division rounded to the nearest minute, with 0 for an
// empty denominator instead of a panic or NaN.
func divRound(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
