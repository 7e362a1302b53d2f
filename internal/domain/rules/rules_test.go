package rules

import (
	"testing"
	"time"

	"gravity/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func runDetail(movingSec int, distanceM float64) *entity.ActivityDetail {
	return &entity.ActivityDetail{
		Category:       "Run",
		MovingTimeSec:  movingSec,
		DistanceMeters: distanceM,
		StartDate:      time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC),
		DisplayName:    "Morning Run",
	}
}

func runRuleSet() entity.RuleSet {
	return entity.RuleSet{
		Default: entity.DefaultRule{
			MinDurationMinutes: intPtr(45),
			MinHeartRate:       intPtr(95),
		},
		Exceptions: map[string]entity.ExceptionRule{
			"Run": {
				MinKm:           floatPtr(4),
				MaxPaceMinPerKm: floatPtr(8.5),
			},
		},
	}
}

func TestEvaluate_SportRulePass(t *testing.T) {
	// 1800s over 5km: 30 minutes, pace 6.0 min/km.
	decision := Evaluate(runDetail(1800, 5000), runRuleSet())

	assert.True(t, decision.Verified)
	assert.Equal(t, NotesSportRule, decision.Notes)
}

func TestEvaluate_SportRuleDistanceFail(t *testing.T) {
	decision := Evaluate(runDetail(1800, 3000), runRuleSet())

	assert.False(t, decision.Verified)
	assert.Contains(t, decision.Notes, "Dist Fail: 3.00km < 4km")
	assert.Contains(t, decision.Notes, "Rejected: ")
}

func TestEvaluate_SportRulePaceFail(t *testing.T) {
	// 3000s over 5km: 50 minutes, pace 10 min/km against an 8.5 ceiling.
	decision := Evaluate(runDetail(3000, 5000), runRuleSet())

	assert.False(t, decision.Verified)
	assert.Contains(t, decision.Notes, "Pace Fail: 10.00min/km > 8.5min/km")
}

func TestEvaluate_SportRuleAccumulatesAllFailures(t *testing.T) {
	// Short and slow: both itemized reasons must appear.
	decision := Evaluate(runDetail(3600, 3000), runRuleSet())

	assert.False(t, decision.Verified)
	assert.Contains(t, decision.Notes, "Dist Fail")
	assert.Contains(t, decision.Notes, "Pace Fail")
}

func TestEvaluate_GeneralRuleBothFailuresItemized(t *testing.T) {
	detail := &entity.ActivityDetail{
		Category:         "WeightTraining",
		MovingTimeSec:    20 * 60,
		AverageHeartrate: 80,
	}

	decision := Evaluate(detail, runRuleSet())

	assert.False(t, decision.Verified)
	assert.Contains(t, decision.Notes, "Time Fail: 20m < 45m")
	assert.Contains(t, decision.Notes, "HR Fail: 80bpm < 95bpm")
}

func TestEvaluate_GeneralRulePass(t *testing.T) {
	detail := &entity.ActivityDetail{
		Category:         "WeightTraining",
		MovingTimeSec:    50 * 60,
		AverageHeartrate: 120,
	}

	decision := Evaluate(detail, runRuleSet())

	assert.True(t, decision.Verified)
	assert.Equal(t, NotesGeneralRule, decision.Notes)
}

func TestEvaluate_GeneralRuleSkipsUnsetThresholds(t *testing.T) {
	detail := &entity.ActivityDetail{Category: "Yoga", MovingTimeSec: 5 * 60}
	ruleSet := entity.RuleSet{Default: entity.DefaultRule{}}

	decision := Evaluate(detail, ruleSet)

	assert.True(t, decision.Verified)
	assert.Equal(t, NotesGeneralRule, decision.Notes)
}

// Zero distance must never divide, and the pace sentinel must not slip
// under a max-pace ceiling: a distance-bearing exception hard-fails.
func TestEvaluate_ZeroDistanceHardFailsMaxPace(t *testing.T) {
	ruleSet := entity.RuleSet{
		Exceptions: map[string]entity.ExceptionRule{
			"Run": {MaxPaceMinPerKm: floatPtr(8.5)},
		},
	}

	decision := Evaluate(runDetail(1800, 0), ruleSet)

	assert.False(t, decision.Verified)
	assert.Contains(t, decision.Notes, "Pace Fail: no distance recorded")
}

func TestEvaluate_ManualEntriesEvaluatedIdentically(t *testing.T) {
	tracked := runDetail(1800, 5000)
	manual := runDetail(1800, 5000)
	manual.IsManualEntry = true

	assert.Equal(t, Evaluate(tracked, runRuleSet()), Evaluate(manual, runRuleSet()))
}

func TestEvaluate_IsPure(t *testing.T) {
	detail := runDetail(1800, 3000)
	ruleSet := runRuleSet()

	first := Evaluate(detail, ruleSet)
	for range 5 {
		assert.Equal(t, first, Evaluate(detail, ruleSet))
	}
}

func TestDerive_Rounding(t *testing.T) {
	detail := &entity.ActivityDetail{
		MovingTimeSec:    1830, // 30.5 minutes rounds to 31 (round half away from zero).
		AverageHeartrate: 132.6,
		DistanceMeters:   5000,
	}

	stats := Derive(detail)

	require.Equal(t, 31, stats.DurationMinutes)
	require.Equal(t, 133, stats.AvgHeartRate)
	require.InDelta(t, 5.0, stats.DistanceKm, 1e-9)
	require.InDelta(t, 6.2, stats.PaceMinPerKm, 1e-9)
}
