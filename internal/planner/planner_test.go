package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_CanonicalExample(t *testing.T) {
	plan := BuildPlan(PlanRequest{
		Age:               7,
		Level:             "A1",
		Character:         "Bluey",
		SessionsPerWeek:   4,
		MinutesPerSession: 15,
	})

	assert.Contains(t, plan.WeeklyGoals, "4")
	assert.Contains(t, plan.WeeklyGoals, "15")
	assert.Equal(t, 15, plan.TimePerDay)
	require.Len(t, plan.Activities, 4)

	for _, act := range plan.Activities {
		assert.Equal(t, []string{"Can I ...?", "I want ...", "It's my turn."}, act.FocusPhrases)
		assert.Equal(t, []string{"표현 스티커 찾기", "섀도잉 2회", "가정 대화 1회 사용"}, act.Missions)
		assert.Equal(t, "Bluey clip/read", act.Item)
	}

	assert.Equal(t, "Mon", plan.Activities[0].Day)
	assert.Equal(t, "Tue", plan.Activities[1].Day)
	assert.Equal(t, "듣기", plan.Activities[0].Type)
	assert.Equal(t, "말하기", plan.Activities[1].Type)
	assert.Equal(t, "읽기", plan.Activities[2].Type)
	assert.Equal(t, "쓰기", plan.Activities[3].Type)
}

func TestBuildPlan_UnknownLevelFallsBackToA1(t *testing.T) {
	plan := BuildPlan(PlanRequest{Level: "ZZ", Character: "Pororo", SessionsPerWeek: 2, MinutesPerSession: 10})

	a1 := PhrasesForLevel("A1")
	for _, act := range plan.Activities {
		assert.Equal(t, a1, act.FocusPhrases)
	}
}

func TestBuildPlan_DayAndTypeCyclesWrap(t *testing.T) {
	plan := BuildPlan(PlanRequest{Level: "A2", Character: "Peppa Pig", SessionsPerWeek: 9, MinutesPerSession: 20})

	require.Len(t, plan.Activities, 9)
	assert.Equal(t, plan.Activities[0].Day, plan.Activities[7].Day, "day cycle wraps at 7")
	assert.Equal(t, plan.Activities[0].Type, plan.Activities[4].Type, "type cycle wraps at 4")
	assert.Equal(t, plan.Activities[1].Day, plan.Activities[8].Day)
}

func TestBuildPlan_Deterministic(t *testing.T) {
	req := PlanRequest{Age: 5, Level: "B1", Character: "Bluey", SessionsPerWeek: 6, MinutesPerSession: 25}

	first := BuildPlan(req)
	second := BuildPlan(req)

	assert.Equal(t, first, second, "identical inputs must produce identical plans")
}

func TestBuildPlan_ReturnedPlanIsIsolatedFromBank(t *testing.T) {
	plan := BuildPlan(PlanRequest{Level: "A0", Character: "Bluey", SessionsPerWeek: 2, MinutesPerSession: 10})
	plan.Activities[0].FocusPhrases[0] = "mutated"
	plan.Activities[0].Missions[0] = "mutated"

	fresh := BuildPlan(PlanRequest{Level: "A0", Character: "Bluey", SessionsPerWeek: 2, MinutesPerSession: 10})
	assert.Equal(t, "Hello!", fresh.Activities[0].FocusPhrases[0])
	assert.Equal(t, "표현 스티커 찾기", fresh.Activities[0].Missions[0])
}

func TestBuildPlan_PhrasesSharedAcrossActivities(t *testing.T) {
	plan := BuildPlan(PlanRequest{Level: "A2", Character: "Bluey", SessionsPerWeek: 5, MinutesPerSession: 15})

	for i := 1; i < len(plan.Activities); i++ {
		assert.Equal(t, plan.Activities[0].FocusPhrases, plan.Activities[i].FocusPhrases,
			"no per-activity phrase variation within a plan")
	}
}

func TestWeeklyPlan_JSONRoundTrip(t *testing.T) {
	plan := BuildPlan(PlanRequest{Age: 7, Level: "A1", Character: "Bluey", SessionsPerWeek: 4, MinutesPerSession: 15})

	data, err := json.MarshalIndent(plan, "", "  ")
	require.NoError(t, err)

	var restored WeeklyPlan
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, *plan, restored, "export and re-parse must reproduce the plan")
}
