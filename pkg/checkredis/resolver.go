package checkredis

import (
	"sort"
	"strings"

	"github.com/consol-monitoring/check_redis/pkg/convert"
)

const totalKeysPrefix = "total_keys_"

// Snapshot is one point-in-time read of the server statistics, treated
// as immutable for the duration of the run. Fields holds the flat
// metrics, Keyspaces the per-database sections (db0, db1, ...).
type Snapshot struct {
	Fields    map[string]string
	Keyspaces map[string]map[string]string
}

// derivedMetrics maps the recognized derived metric names to their
// computation. Dispatch goes through this table, never by building a
// function name from user input.
var derivedMetrics = map[string]func(*Snapshot) interface{}{
	"hit_ratio":  (*Snapshot).hitRatio,
	"total_keys": (*Snapshot).totalKeys,
}

// Resolve returns the value for the given check name or nil if it
// cannot be resolved. Direct snapshot fields win over derived metrics.
// Raw values coerce to int64 first, float64 second and stay strings
// otherwise, so numeric text compares as a number later on.
func (s *Snapshot) Resolve(name string) interface{} {
	if raw, ok := s.Fields[name]; ok {
		return convert.Coerce(raw)
	}
	if derived, ok := derivedMetrics[name]; ok {
		return derived(s)
	}
	if db, ok := strings.CutPrefix(name, totalKeysPrefix); ok {
		return s.dbKeys(db)
	}

	return nil
}

// ResolveAll fills in the value of every check from the snapshot.
// Unresolvable checks keep their nil value and report as unknown later,
// resolution failures never abort the run.
func (s *Snapshot) ResolveAll(checks CheckSet) {
	for _, check := range checks {
		check.Value = s.Resolve(check.Key)
		log.Tracef("resolved %s=%v", check.Key, check.Value)
	}
}

// MetricNames lists every resolvable metric name sorted alphabetically:
// the flat snapshot fields plus the derived names.
func (s *Snapshot) MetricNames() []string {
	names := make([]string, 0, len(s.Fields)+len(s.Keyspaces)+len(derivedMetrics))
	for name := range s.Fields {
		names = append(names, name)
	}
	for name := range derivedMetrics {
		names = append(names, name)
	}
	for db := range s.Keyspaces {
		names = append(names, totalKeysPrefix+db)
	}
	sort.Strings(names)

	return names
}

// hitRatio computes hits/(hits+misses). A server that has not seen any
// keyspace lookups yet has no meaningful ratio, so a zero denominator
// resolves to nil instead of zero or a division fault.
func (s *Snapshot) hitRatio() interface{} {
	hits, err := convert.Float64E(s.Fields["keyspace_hits"])
	if err != nil {
		return nil
	}
	misses, err := convert.Float64E(s.Fields["keyspace_misses"])
	if err != nil {
		return nil
	}
	if hits+misses == 0 {
		return nil
	}

	return hits / (hits + misses)
}

// totalKeys sums the key count over every keyspace. A server without
// any keyspace legitimately holds zero keys, so the result is int64(0)
// rather than unresolved.
func (s *Snapshot) totalKeys() interface{} {
	total := int64(0)
	for _, keyspace := range s.Keyspaces {
		total += convert.Int64(keyspace["keys"])
	}

	return total
}

// dbKeys returns the key count of a single keyspace, nil if the
// keyspace does not exist on the server.
func (s *Snapshot) dbKeys(db string) interface{} {
	keyspace, ok := s.Keyspaces[db]
	if !ok {
		return nil
	}
	num, err := convert.Int64E(keyspace["keys"])
	if err != nil {
		return nil
	}

	return num
}
