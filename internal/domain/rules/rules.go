// Package rules implements the verification rule engine. Evaluation is
// a pure function of the activity's measured stats and the challenge's
// rule set; callers persist the decision, the engine never does.
package rules

import (
	"fmt"
	"math"
	"strings"

	"gravity/internal/domain/entity"
)

// Success notes. The two strings distinguish which rule tier verified
// the activity.
const (
	NotesSportRule   = "Verified by Sport Rule"
	NotesGeneralRule = "Verified by General Rule"
)

// Decision is the outcome of evaluating one activity.
type Decision struct {
	Verified bool
	Notes    string
}

// Stats are the derived quantities the thresholds apply to.
type Stats struct {
	DurationMinutes int
	AvgHeartRate    int
	DistanceKm      float64
	PaceMinPerKm    float64 // 0 when no distance was recorded.
}

// Derive computes the rule-engine quantities from a raw activity detail.
// Pace uses a zero sentinel when distance is zero; distance-bearing
// checks treat that case as a hard failure rather than letting the
// sentinel slip under a max-pace ceiling.
func Derive(detail *entity.ActivityDetail) Stats {
	stats := Stats{
		DurationMinutes: int(math.Round(float64(detail.MovingTimeSec) / 60)),
		AvgHeartRate:    int(math.Round(detail.AverageHeartrate)),
		DistanceKm:      detail.DistanceMeters / 1000,
	}
	if stats.DistanceKm > 0 {
		stats.PaceMinPerKm = float64(stats.DurationMinutes) / stats.DistanceKm
	}

	return stats
}

// Evaluate maps an activity and a rule set to a verified/rejected
// decision with an explanation. Manual (non-GPS) entries are evaluated
// exactly like tracked activities; that is a product decision, not an
// oversight. Repeated calls with equal inputs yield equal decisions.
func Evaluate(detail *entity.ActivityDetail, ruleSet entity.RuleSet) Decision {
	stats := Derive(detail)

	if exception, ok := ruleSet.Exceptions[detail.Category]; ok {
		return evaluateException(stats, exception)
	}

	return evaluateDefault(stats, ruleSet.Default)
}

func evaluateException(stats Stats, rule entity.ExceptionRule) Decision {
	var failures []string

	if rule.MinKm != nil {
		if stats.DistanceKm < *rule.MinKm {
			failures = append(failures, fmt.Sprintf("Dist Fail: %.2fkm < %skm",
				stats.DistanceKm, trimFloat(*rule.MinKm)))
		}
	}
	if rule.MaxPaceMinPerKm != nil {
		if stats.DistanceKm <= 0 {
			// No distance recorded: the pace sentinel (0) must not pass
			// a ceiling check.
			failures = append(failures, "Pace Fail: no distance recorded")
		} else if stats.PaceMinPerKm > *rule.MaxPaceMinPerKm {
			failures = append(failures, fmt.Sprintf("Pace Fail: %.2fmin/km > %smin/km",
				stats.PaceMinPerKm, trimFloat(*rule.MaxPaceMinPerKm)))
		}
	}

	if len(failures) > 0 {
		return Decision{Verified: false, Notes: rejectionNotes(failures)}
	}

	return Decision{Verified: true, Notes: NotesSportRule}
}

func evaluateDefault(stats Stats, rule entity.DefaultRule) Decision {
	var failures []string

	if rule.MinDurationMinutes != nil && stats.DurationMinutes < *rule.MinDurationMinutes {
		failures = append(failures, fmt.Sprintf("Time Fail: %dm < %dm",
			stats.DurationMinutes, *rule.MinDurationMinutes))
	}
	if rule.MinHeartRate != nil && stats.AvgHeartRate < *rule.MinHeartRate {
		failures = append(failures, fmt.Sprintf("HR Fail: %dbpm < %dbpm",
			stats.AvgHeartRate, *rule.MinHeartRate))
	}

	if len(failures) > 0 {
		return Decision{Verified: false, Notes: rejectionNotes(failures)}
	}

	return Decision{Verified: true, Notes: NotesGeneralRule}
}

func rejectionNotes(failures []string) string {
	return "Rejected: " + strings.Join(failures, "; ")
}

// trimFloat renders a threshold without trailing zeros, so configured
// values read back the way they were written ("4" not "4.00").
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	return s
}
