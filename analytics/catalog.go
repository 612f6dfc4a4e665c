package analytics

// DefaultCatalog is the fixed achievement catalog evaluated after every
// recorded session. It is passed into UnlockAchievements explicitly rather
// than read as hidden global state, so alternative catalogs can be supplied
// in tests.
var DefaultCatalog = []AchievementTemplate{
	{ID: "sessions-1", Title: "First Steps", Description: "Record your first study session", Icon: "🎯", Type: AchievementTypeSession, Threshold: 1},
	{ID: "sessions-10", Title: "Getting Serious", Description: "Record 10 study sessions", Icon: "📚", Type: AchievementTypeSession, Threshold: 10},
	{ID: "sessions-50", Title: "Dedicated Learner", Description: "Record 50 study sessions", Icon: "🎓", Type: AchievementTypeSession, Threshold: 50},
	{ID: "sessions-100", Title: "Centurion", Description: "Record 100 study sessions", Icon: "🏛️", Type: AchievementTypeSession, Threshold: 100},

	{ID: "streak-3", Title: "Warming Up", Description: "Study 3 days in a row", Icon: "🔥", Type: AchievementTypeStreak, Threshold: 3},
	{ID: "streak-7", Title: "Week Warrior", Description: "Study 7 days in a row", Icon: "⚡", Type: AchievementTypeStreak, Threshold: 7},
	{ID: "streak-30", Title: "Unstoppable", Description: "Study 30 days in a row", Icon: "🚀", Type: AchievementTypeStreak, Threshold: 30},
	{ID: "streak-100", Title: "Relentless", Description: "Study 100 days in a row", Icon: "💎", Type: AchievementTypeStreak, Threshold: 100},

	{ID: "hours-10", Title: "Ten Hours In", Description: "Accumulate 10 hours of study time", Icon: "⏱️", Type: AchievementTypeDuration, Threshold: 600},
	{ID: "hours-50", Title: "Deep Work", Description: "Accumulate 50 hours of study time", Icon: "🧠", Type: AchievementTypeDuration, Threshold: 3000},
	{ID: "hours-100", Title: "Master of Time", Description: "Accumulate 100 hours of study time", Icon: "👑", Type: AchievementTypeDuration, Threshold: 6000},

	{ID: "topics-3", Title: "Branching Out", Description: "Study 3 different topics", Icon: "🌱", Type: AchievementTypeTopic, Threshold: 3},
	{ID: "topics-5", Title: "Polymath in Training", Description: "Study 5 different topics", Icon: "🌿", Type: AchievementTypeTopic, Threshold: 5},
	{ID: "topics-10", Title: "Renaissance Mind", Description: "Study 10 different topics", Icon: "🌳", Type: AchievementTypeTopic, Threshold: 10},
}

// CatalogTemplate looks a template up by id. Returns false for ids no longer
// present in the catalog (e.g. unlocked rows persisted under a retired
// template).
func CatalogTemplate(id string) (AchievementTemplate, bool) {
	for _, tpl := range DefaultCatalog {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return AchievementTemplate{}, false
}
