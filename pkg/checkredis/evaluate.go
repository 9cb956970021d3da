package checkredis

import (
	"fmt"
	"strconv"

	"github.com/consol-monitoring/check_redis/pkg/convert"
)

// Evaluate classifies every check against its limits and folds the
// per-check severities into one aggregate state.
//
// The fold visits every check in sorted key order, critical beats
// warning beats ok, and feedback accumulates for each triggered check.
// It never short-circuits on the first failure. A check without a
// resolved value stays out of the fold but leaves an unknown feedback
// line; only when not a single check classified at all does the
// aggregate state become UNKNOWN.
func Evaluate(checks CheckSet) *CheckResult {
	result := &CheckResult{State: -1}

	for _, key := range checks.Keys() {
		check := checks[key]
		if check.IsString() && !check.Forced {
			// text fields like redis_version are only reported on request
			log.Debugf("skipping text valued check: %s=%v", check.Key, check.Value)

			continue
		}

		switch {
		case check.Value == nil:
			result.Feedback = append(result.Feedback,
				fmt.Sprintf("UNKNOWN for %s: value could not be resolved", check.Key))
		case check.IsCritical():
			result.EscalateStatus(CheckExitCritical)
			result.Feedback = append(result.Feedback, feedbackLine("CRITICAL", check, check.CriticalLimit))
		case check.IsWarning():
			result.EscalateStatus(CheckExitWarning)
			result.Feedback = append(result.Feedback, feedbackLine("WARNING", check, check.WarningLimit))
		default:
			result.EscalateStatus(CheckExitOK)
		}

		result.Metrics = append(result.Metrics, &CheckMetric{
			Name:     check.Key,
			Value:    check.Value,
			Warning:  check.WarningLimit,
			Critical: check.CriticalLimit,
			Min:      check.Minimum,
			Max:      check.Maximum,
		})
	}

	if result.State < 0 {
		result.State = CheckExitUnknown
	}

	return result
}

func feedbackLine(severity string, check *Check, limit *float64) string {
	return fmt.Sprintf("%s for %s: %s %s %s",
		severity,
		check.Key,
		formatValue(check.Value),
		check.Operator(),
		strconv.FormatFloat(*limit, 'f', -1, 64),
	)
}

func formatValue(value interface{}) string {
	if str, ok := value.(string); ok {
		return str
	}

	return convert.Num2String(value)
}
