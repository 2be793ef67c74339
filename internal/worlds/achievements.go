package worlds

// Achievement is a one-time badge. Evaluation lives in the progression
// package; this is display data only.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Achievement IDs referenced by the progression engine.
const (
	AchNoviceExplorer = "novice_explorer"
	AchMasterAdd      = "master_add"
	AchSpeedster      = "speedster"
	AchGeoDetective   = "geo_detective"
	AchCollector      = "collector"
)

// Achievements is the badge catalog.
var Achievements = []Achievement{
	{
		ID:          AchNoviceExplorer,
		Title:       "Curious Novice",
		Description: "Complete your first level in any world.",
		Icon:        "🧭",
	},
	{
		ID:          AchMasterAdd,
		Title:       "Master of Addition",
		Description: "Complete the Valley of Sums on hard with 3 stars.",
		Icon:        "➕",
	},
	{
		ID:          AchSpeedster,
		Title:       "Number Speedster",
		Description: "Finish any level with a perfect score in under 45 seconds.",
		Icon:        "⚡",
	},
	{
		ID:          AchGeoDetective,
		Title:       "Geometry Detective",
		Description: "Complete the City of Shapes with 3 stars.",
		Icon:        "📐",
	},
	{
		ID:          AchCollector,
		Title:       "Grand Collector",
		Description: "Own 8 items from the Magic Shop.",
		Icon:        "🎒",
	},
}

// AchievementByID looks up a badge for display. Returns nil if unknown.
func AchievementByID(id string) *Achievement {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}
