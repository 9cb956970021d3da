package checkredis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDirectField(t *testing.T) {
	snapshot := &Snapshot{Fields: map[string]string{
		"used_memory":             "1024",
		"mem_fragmentation_ratio": "1.5",
		"redis_version":           "6.2.14",
	}}

	assert.Equalf(t, int64(1024), snapshot.Resolve("used_memory"), "integer field")
	assert.Equalf(t, 1.5, snapshot.Resolve("mem_fragmentation_ratio"), "float field")
	assert.Equalf(t, "6.2.14", snapshot.Resolve("redis_version"), "text field stays a string")
	assert.Nilf(t, snapshot.Resolve("no_such_metric"), "unrecognized name resolves to nil")
}

func TestResolveHitRatio(t *testing.T) {
	snapshot := &Snapshot{Fields: map[string]string{
		"keyspace_hits":   "80",
		"keyspace_misses": "20",
	}}
	assert.Equalf(t, 0.8, snapshot.Resolve("hit_ratio"), "hit ratio")

	idle := &Snapshot{Fields: map[string]string{
		"keyspace_hits":   "0",
		"keyspace_misses": "0",
	}}
	assert.Nilf(t, idle.Resolve("hit_ratio"), "zero denominator resolves to nil, not zero")

	empty := &Snapshot{Fields: map[string]string{}}
	assert.Nilf(t, empty.Resolve("hit_ratio"), "missing counters resolve to nil")
}

func TestResolveTotalKeys(t *testing.T) {
	snapshot := &Snapshot{
		Fields: map[string]string{},
		Keyspaces: map[string]map[string]string{
			"db0": {"keys": "871", "expires": "0"},
			"db1": {"keys": "129", "expires": "3"},
		},
	}
	assert.Equalf(t, int64(1000), snapshot.Resolve("total_keys"), "sum over all keyspaces")
	assert.Equalf(t, int64(871), snapshot.Resolve("total_keys_db0"), "single keyspace")
	assert.Nilf(t, snapshot.Resolve("total_keys_db7"), "missing keyspace resolves to nil")

	bare := &Snapshot{Fields: map[string]string{}}
	assert.Equalf(t, int64(0), bare.Resolve("total_keys"), "no keyspaces at all means zero keys")
}

func TestResolveAll(t *testing.T) {
	snapshot := &Snapshot{Fields: map[string]string{"used_memory": "100"}}
	checks := CheckSet{
		"used_memory": NewCheck("used_memory", false),
		"no_such":     NewCheck("no_such", true),
	}

	snapshot.ResolveAll(checks)
	assert.Equalf(t, int64(100), checks["used_memory"].Value, "resolved value")
	assert.Nilf(t, checks["no_such"].Value, "unresolved check keeps nil value")
}

func TestMetricNames(t *testing.T) {
	snapshot := &Snapshot{
		Fields: map[string]string{
			"used_memory":   "100",
			"keyspace_hits": "80",
		},
		Keyspaces: map[string]map[string]string{"db0": {"keys": "5"}},
	}

	assert.Equalf(t, []string{
		"hit_ratio",
		"keyspace_hits",
		"total_keys",
		"total_keys_db0",
		"used_memory",
	}, snapshot.MetricNames(), "sorted names including derived metrics")
}
