package checkredis

import (
	"strings"
)

const (
	// CheckExitOK is used for normal exits.
	CheckExitOK = int64(0)

	// CheckExitWarning is used for warnings.
	CheckExitWarning = int64(1)

	// CheckExitCritical is used for critical errors.
	CheckExitCritical = int64(2)

	// CheckExitUnknown is used for when the check runs into a problem itself.
	CheckExitUnknown = int64(3)
)

// CheckResult is the aggregated result of one plugin run.
type CheckResult struct {
	State    int64
	Feedback []string
	Metrics  []*CheckMetric
}

func (cr *CheckResult) StateString() string {
	switch cr.State {
	case 0:
		return "OK"
	case 1:
		return "WARNING"
	case 2:
		return "CRITICAL"
	}

	return "UNKNOWN"
}

// EscalateStatus raises the aggregate state, it never lowers it.
func (cr *CheckResult) EscalateStatus(state int64) {
	if state > cr.State {
		cr.State = state
	}
}

// BuildPluginOutput renders the report: the status word followed by the
// feedback lines, then an empty line and the performance data section
// behind a literal pipe. The printed status word and the exit code
// always agree.
func (cr *CheckResult) BuildPluginOutput() []byte {
	lines := make([]string, 0, len(cr.Feedback)+1)
	lines = append(lines, cr.StateString())
	lines = append(lines, cr.Feedback...)

	perf := make([]string, 0, len(cr.Metrics))
	for _, m := range cr.Metrics {
		perf = append(perf, m.String())
	}

	output := strings.Join(lines, "\n") + "\n\n|" + strings.Join(perf, "\n")

	return []byte(output)
}
