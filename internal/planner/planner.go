package planner

import "fmt"

// PlanRequest holds the inputs for one weekly plan.
type PlanRequest struct {
	Age               int
	Level             string
	Character         string
	SessionsPerWeek   int
	MinutesPerSession int
}

// Activity is one scheduled practice session.
type Activity struct {
	Day          string   `json:"day"`
	Type         string   `json:"type"`
	Item         string   `json:"item"`
	FocusPhrases []string `json:"focus_phrases"`
	Missions     []string `json:"missions"`
}

// WeeklyPlan is a rule-based practice schedule for one week.
type WeeklyPlan struct {
	WeeklyGoals string     `json:"weekly_goals"`
	Activities  []Activity `json:"activities"`
	TimePerDay  int        `json:"time_per_day"`
}

// FallbackLevel is the phrase bank used for unrecognized level tags.
const FallbackLevel = "A1"

// Levels lists the supported CEFR-like tiers in ascending order.
var Levels = []string{"A0", "A1", "A2", "B1"}

// phraseBank maps each level tag to its three representative phrases.
// Initialized once; BuildPlan hands out copies, never the bank itself.
var phraseBank = map[string][]string{
	"A0": {"Hello!", "My name is ...", "I like ..."},
	"A1": {"Can I ...?", "I want ...", "It's my turn."},
	"A2": {"Yesterday I ...", "Because ...", "Let's try ..."},
	"B1": {"In my opinion ...", "I prefer ...", "Be careful!"},
}

// days is the fixed 7-day cycle starting Monday.
var days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// activityTypes is the fixed listening/speaking/reading/writing rotation.
var activityTypes = []string{"듣기", "말하기", "읽기", "쓰기"}

// missions is the fixed per-activity mission list: find the expression,
// shadow it twice, use it at home once.
var missions = []string{"표현 스티커 찾기", "섀도잉 2회", "가정 대화 1회 사용"}

// BuildPlan maps planner inputs onto a deterministic weekly schedule.
// Pure: no I/O, no clock, no randomness; identical inputs produce
// bit-identical plans. It never fails — an unknown level resolves to the
// fallback bank, and any positive session count simply continues the
// day/type cycles.
//
// Age is accepted but does not influence the schedule.
func BuildPlan(req PlanRequest) *WeeklyPlan {
	phrases := PhrasesForLevel(req.Level)
	planMissions := append([]string(nil), missions...)

	activities := make([]Activity, 0, req.SessionsPerWeek)
	for i := 0; i < req.SessionsPerWeek; i++ {
		activities = append(activities, Activity{
			Day:          days[i%len(days)],
			Type:         activityTypes[i%len(activityTypes)],
			Item:         fmt.Sprintf("%s clip/read", req.Character),
			FocusPhrases: phrases,
			Missions:     planMissions,
		})
	}

	return &WeeklyPlan{
		WeeklyGoals: fmt.Sprintf("%d회 × %d분 / 회", req.SessionsPerWeek, req.MinutesPerSession),
		Activities:  activities,
		TimePerDay:  req.MinutesPerSession,
	}
}

// PhrasesForLevel returns a copy of the phrase bank entry for the given
// level tag, resolving unrecognized tags to the fallback tier. Every
// activity in a plan shares the same returned slice.
func PhrasesForLevel(level string) []string {
	bank, ok := phraseBank[level]
	if !ok {
		bank = phraseBank[FallbackLevel]
	}
	return append([]string(nil), bank...)
}
