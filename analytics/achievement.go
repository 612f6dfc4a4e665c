package analytics

import "time"

// AchievementType selects which metric a template's threshold is compared
// against.
type AchievementType string

const (
	AchievementTypeSession  AchievementType = "session"
	AchievementTypeStreak   AchievementType = "streak"
	AchievementTypeDuration AchievementType = "duration"
	AchievementTypeTopic    AchievementType = "topic"
)

// AchievementTemplate is a static catalog entry: an unlock rule fixed at
// compile time. Templates are never user-editable.
type AchievementTemplate struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Type        AchievementType `json:"type"`
	Threshold   int             `json:"threshold"`
}

// Achievement is an unlocked instance of a template. Once created it is
// permanent; no re-evaluation, no revocation.
type Achievement struct {
	AchievementTemplate
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Metrics are the aggregate figures achievement evaluation runs against.
type Metrics struct {
	SessionCount         int
	CurrentStreak        int
	LongestStreak        int
	TotalDurationMinutes int
	DistinctTopicCount   int
}

// UnlockAchievements evaluates every template not already unlocked and
// returns the newly unlocked instances, each stamped with now. Thresholds
// are inclusive. Templates with an unrecognised type never unlock, so
// catalog changes can never corrupt existing unlocked state. Calling twice
// with the second call's unlockedIDs including the first call's output
// yields an empty result.
func UnlockAchievements(m Metrics, catalog []AchievementTemplate, unlockedIDs []string, now time.Time) []Achievement {
	unlocked := make(map[string]struct{}, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = struct{}{}
	}

	var newly []Achievement
	for _, tpl := range catalog {
		if _, ok := unlocked[tpl.ID]; ok {
			continue
		}
		if !thresholdMet(m, tpl) {
			continue
		}
		newly = append(newly, Achievement{
			AchievementTemplate: tpl,
			UnlockedAt:          now,
		})
	}
	return newly
}

func thresholdMet(m Metrics, tpl AchievementTemplate) bool {
	switch tpl.Type {
	case AchievementTypeSession:
		return m.SessionCount >= tpl.Threshold
	case AchievementTypeStreak:
		return m.CurrentStreak >= tpl.Threshold || m.LongestStreak >= tpl.Threshold
	case AchievementTypeDuration:
		return m.TotalDurationMinutes >= tpl.Threshold
	case AchievementTypeTopic:
		return m.DistinctTopicCount >= tpl.Threshold
	default:
		return false
	}
}

