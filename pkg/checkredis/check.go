package checkredis

import (
	"sort"

	"github.com/consol-monitoring/check_redis/pkg/convert"
)

// Check describes one metric to evaluate: the metric name, the value
// resolved from the snapshot and the limits to compare it against.
//
// A nil Value means the metric could not be resolved. That is a distinct
// state from zero or an empty string: such a check never triggers a
// threshold and renders as "U" in the performance data.
type Check struct {
	Key           string
	Value         interface{} // int64, float64 or string, nil while unresolved
	WarningLimit  *float64
	CriticalLimit *float64
	Minimum       *float64 // display only, never compared
	Maximum       *float64 // display only, never compared
	Ascending     bool     // true: alert when value exceeds the limit
	Forced        bool     // report even when the value is a text field
}

// NewCheck returns a check with the default ascending comparison.
func NewCheck(key string, forced bool) *Check {
	return &Check{
		Key:       key,
		Ascending: true,
		Forced:    forced,
	}
}

// exceeds returns true if the value breaks the given limit. A check
// without value or limit never triggers and hitting the limit exactly
// does not trigger either.
func (c *Check) exceeds(limit *float64) bool {
	if c.Value == nil || limit == nil {
		return false
	}
	num, err := convert.Float64E(c.Value)
	if err != nil {
		return false
	}
	diff := num - *limit
	if c.Ascending {
		return diff > 0
	}

	return diff < 0
}

// IsCritical returns true if the value breaks the critical limit. Both
// limits are independent, a critical check does not need to be warning.
func (c *Check) IsCritical() bool {
	return c.exceeds(c.CriticalLimit)
}

// IsWarning returns true if the value breaks the warning limit.
func (c *Check) IsWarning() bool {
	return c.exceeds(c.WarningLimit)
}

// IsString returns true if the resolved value stayed a non-numeric
// string after coercion, for example a version or role field.
func (c *Check) IsString() bool {
	_, ok := c.Value.(string)

	return ok
}

// Operator returns the comparison operator used in feedback lines.
func (c *Check) Operator() string {
	if c.Ascending {
		return ">"
	}

	return "<"
}

// CheckSet holds the checks of one run, keyed by metric name so no
// metric can be evaluated twice.
type CheckSet map[string]*Check

// Keys returns the check names sorted alphabetically. Evaluation and
// reporting iterate in this order to keep the output reproducible.
func (cs CheckSet) Keys() []string {
	keys := make([]string, 0, len(cs))
	for key := range cs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// BuildCheckSet assembles the checks for one run. Explicitly included
// names are forced, so they get reported even when text valued. Without
// includes every metric from the snapshot is checked, minus the
// excluded names.
func BuildCheckSet(snapshot *Snapshot, include, exclude []string, forceStrings bool) CheckSet {
	checks := make(CheckSet)
	if len(include) > 0 {
		for _, name := range include {
			checks[name] = NewCheck(name, true)
		}
	} else {
		for _, name := range snapshot.MetricNames() {
			checks[name] = NewCheck(name, forceStrings)
		}
	}
	for _, name := range exclude {
		delete(checks, name)
	}

	return checks
}
