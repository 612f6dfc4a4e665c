package analytics

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestUnlockAchievementsThresholds(t *testing.T) {
	catalog := []AchievementTemplate{
		{ID: "sessions-10", Type: AchievementTypeSession, Threshold: 10},
		{ID: "streak-7", Type: AchievementTypeStreak, Threshold: 7},
		{ID: "hours-100", Type: AchievementTypeDuration, Threshold: 6000},
		{ID: "topics-3", Type: AchievementTypeTopic, Threshold: 3},
	}

	tests := []struct {
		name    string
		metrics Metrics
		wantIDs []string
	}{
		{
			name:    "session threshold met exactly",
			metrics: Metrics{SessionCount: 10},
			wantIDs: []string{"sessions-10"},
		},
		{
			name:    "one below session threshold",
			metrics: Metrics{SessionCount: 9},
			wantIDs: nil,
		},
		{
			name:    "duration boundary is inclusive",
			metrics: Metrics{TotalDurationMinutes: 6000},
			wantIDs: []string{"hours-100"},
		},
		{
			name:    "duration one minute short",
			metrics: Metrics{TotalDurationMinutes: 5999},
			wantIDs: nil,
		},
		{
			name:    "streak unlocks on current",
			metrics: Metrics{CurrentStreak: 7, LongestStreak: 7},
			wantIDs: []string{"streak-7"},
		},
		{
			name:    "streak unlocks on historical longest",
			metrics: Metrics{CurrentStreak: 0, LongestStreak: 8},
			wantIDs: []string{"streak-7"},
		},
		{
			name:    "multiple unlocks in one pass",
			metrics: Metrics{SessionCount: 50, DistinctTopicCount: 4},
			wantIDs: []string{"sessions-10", "topics-3"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := UnlockAchievements(tc.metrics, catalog, nil, testNow)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d unlocks, want %d: %+v", len(got), len(tc.wantIDs), got)
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Errorf("unlock[%d] = %s, want %s", i, got[i].ID, id)
				}
				if !got[i].UnlockedAt.Equal(testNow) {
					t.Errorf("unlock[%d] not stamped with evaluation time", i)
				}
			}
		})
	}
}

func TestUnlockAchievementsIdempotent(t *testing.T) {
	metrics := Metrics{SessionCount: 100, CurrentStreak: 10, LongestStreak: 10, TotalDurationMinutes: 9000, DistinctTopicCount: 5}

	first := UnlockAchievements(metrics, DefaultCatalog, nil, testNow)
	if len(first) == 0 {
		t.Fatal("expected unlocks on first evaluation")
	}

	ids := make([]string, 0, len(first))
	for _, a := range first {
		ids = append(ids, a.ID)
	}

	second := UnlockAchievements(metrics, DefaultCatalog, ids, testNow.Add(time.Minute))
	if len(second) != 0 {
		t.Fatalf("second evaluation produced duplicates: %+v", second)
	}
}

func TestUnlockAchievementsUnknownTypeNeverUnlocks(t *testing.T) {
	catalog := []AchievementTemplate{
		{ID: "mystery", Type: AchievementType("combo"), Threshold: 0},
	}
	metrics := Metrics{SessionCount: 1000, CurrentStreak: 1000, TotalDurationMinutes: 100000, DistinctTopicCount: 100}

	if got := UnlockAchievements(metrics, catalog, nil, testNow); len(got) != 0 {
		t.Fatalf("unknown template type unlocked: %+v", got)
	}
}

func TestCatalogTemplateLookup(t *testing.T) {
	if _, ok := CatalogTemplate("sessions-10"); !ok {
		t.Error("sessions-10 missing from catalog")
	}
	if _, ok := CatalogTemplate("retired-id"); ok {
		t.Error("lookup of unknown id should fail")
	}
}

func TestDefaultCatalogUniqueIDs(t *testing.T) {
	seen := map[string]struct{}{}
	for _, tpl := range DefaultCatalog {
		if _, dup := seen[tpl.ID]; dup {
			t.Errorf("duplicate template id %s", tpl.ID)
		}
		seen[tpl.ID] = struct{}{}
		if tpl.Threshold <= 0 {
			t.Errorf("template %s has non-positive threshold", tpl.ID)
		}
	}
}
