package achievements

import (
	"time"

	"github.com/runlog/runlog-backend-go/internal/models"
	"github.com/runlog/runlog-backend-go/internal/stats"
	"github.com/runlog/runlog-backend-go/internal/units"
)

// Badge ids
const (
	BadgeFirstRun      = "first_run"
	BadgeDistance5K    = "distance_5k"
	BadgeDistance10K   = "distance_10k"
	BadgeDistanceHalf  = "distance_half"
	BadgeDistanceFull  = "distance_full"
	BadgeCentury       = "century"
	BadgeWeeklyStreak  = "weekly_streak"
	BadgeMonthlyStreak = "monthly_streak"
	BadgeEarlyBird     = "early_bird"
	BadgeNightOwl      = "night_owl"
	BadgeElevation     = "elevation"
	BadgeSpeedDemon    = "speed_demon"
)

// Unlock thresholds
const (
	halfMarathonKm        = 21.1
	fullMarathonKm        = 42.2
	centuryKm             = 100.0
	weeklyStreakDays      = 7
	monthlyStreakDays     = 30
	earlyBirdBeforeHour   = 7
	nightOwlFromHour      = 21
	elevationGoalMeters   = 500.0
	speedDemonPaceSeconds = 270.0 // 4:30 min/km
)

// NewCatalog creates the fixed badge catalog, all unearned. It is built
// once per session; evaluation mutates the earned flags in place.
func NewCatalog() []*models.Badge {
	return []*models.Badge{
		{ID: BadgeFirstRun, Name: "First Steps", Description: "Complete your first run", IconName: "figure.run", Color: "green"},
		{ID: BadgeDistance5K, Name: "5K Finisher", Description: "Run 5 km in a single run", IconName: "5.circle", Color: "blue"},
		{ID: BadgeDistance10K, Name: "10K Finisher", Description: "Run 10 km in a single run", IconName: "10.circle", Color: "indigo"},
		{ID: BadgeDistanceHalf, Name: "Half Marathoner", Description: "Run 21.1 km in a single run", IconName: "medal", Color: "orange"},
		{ID: BadgeDistanceFull, Name: "Marathoner", Description: "Run 42.2 km in a single run", IconName: "trophy", Color: "yellow"},
		{ID: BadgeCentury, Name: "Century Club", Description: "Run 100 km in total", IconName: "100.circle", Color: "purple"},
		{ID: BadgeWeeklyStreak, Name: "Week Warrior", Description: "Run 7 days in a row", IconName: "flame", Color: "red"},
		{ID: BadgeMonthlyStreak, Name: "Monthly Machine", Description: "Run 30 days in a row", IconName: "calendar", Color: "pink"},
		{ID: BadgeEarlyBird, Name: "Early Bird", Description: "Start a run before 7 AM", IconName: "sunrise", Color: "teal"},
		{ID: BadgeNightOwl, Name: "Night Owl", Description: "Start a run after 9 PM", IconName: "moon.stars", Color: "gray"},
		{ID: BadgeElevation, Name: "Hill Climber", Description: "Climb 500 m across your outdoor runs", IconName: "mountain.2", Color: "brown"},
		{ID: BadgeSpeedDemon, Name: "Speed Demon", Description: "Average faster than 4:30 min/km on a run", IconName: "bolt", Color: "cyan"},
	}
}

// historyFacts are the per-history measurements badge rules test against.
type historyFacts struct {
	hasRun          bool
	longestKm       float64
	totalKm         float64
	activeDays      []time.Time
	hasEarlyStart   bool
	hasNightStart   bool
	elevationMeters float64
	fastestPaceSecs float64 // per km; 0 when no entry carries a pace
}

// Evaluate recomputes the earned state of each unearned badge against
// the full outdoor+indoor history and mutates the catalog in place. An
// earned badge is never revoked. Returns the ids of badges newly earned
// by this evaluation, for the caller to surface.
func Evaluate(badges []*models.Badge, entries []models.RunEntry) []string {
	facts := gatherFacts(entries)

	var newly []string
	for _, b := range badges {
		if b.IsEarned {
			continue
		}
		if unlocked(b.ID, facts) {
			b.IsEarned = true
			newly = append(newly, b.ID)
		}
	}
	return newly
}

func gatherFacts(entries []models.RunEntry) historyFacts {
	facts := historyFacts{hasRun: len(entries) > 0}
	var paces []float64

	for _, e := range entries {
		if km, ok := stats.DistanceKm(e); ok {
			facts.totalKm += km
			if km > facts.longestKm {
				facts.longestKm = km
			}
		}

		if e.CreatedAt != nil {
			facts.activeDays = append(facts.activeDays, *e.CreatedAt)
			hour := e.CreatedAt.Hour()
			if hour < earlyBirdBeforeHour {
				facts.hasEarlyStart = true
			}
			if hour >= nightOwlFromHour {
				facts.hasNightStart = true
			}
		}

		if e.IsOutdoor() && e.ElevationGain != "" {
			if gain, ok := units.ParseMeasure(e.ElevationGain); ok {
				facts.elevationMeters += gain
			}
		}

		if e.AvgPace != "" {
			if secs, ok := units.ParsePaceSecondsPerKm(e.AvgPace); ok && secs > 0 {
				paces = append(paces, secs)
			}
		}
	}

	facts.fastestPaceSecs = stats.Min(paces)
	return facts
}

func unlocked(id string, f historyFacts) bool {
	switch id {
	case BadgeFirstRun:
		return f.hasRun
	case BadgeDistance5K:
		return f.longestKm >= 5
	case BadgeDistance10K:
		return f.longestKm >= 10
	case BadgeDistanceHalf:
		return f.longestKm >= halfMarathonKm
	case BadgeDistanceFull:
		return f.longestKm >= fullMarathonKm
	case BadgeCentury:
		return f.totalKm >= centuryKm
	case BadgeWeeklyStreak:
		return HasConsecutiveDays(f.activeDays, weeklyStreakDays)
	case BadgeMonthlyStreak:
		return HasConsecutiveDays(f.activeDays, monthlyStreakDays)
	case BadgeEarlyBird:
		return f.hasEarlyStart
	case BadgeNightOwl:
		return f.hasNightStart
	case BadgeElevation:
		return f.elevationMeters >= elevationGoalMeters
	case BadgeSpeedDemon:
		return f.fastestPaceSecs > 0 && f.fastestPaceSecs < speedDemonPaceSeconds
	default:
		return false
	}
}
