package redisinfo

import (
	"strings"
	"unicode"

	"github.com/consol-monitoring/check_redis/pkg/checkredis"
)

// ParseInfo parses a raw INFO reply into a snapshot. Regular lines look
// like "used_memory:1024", keyspace sections like
// "db0:keys=871,expires=0,avg_ttl=0". Section headers and malformed
// lines are skipped.
func ParseInfo(raw string) *checkredis.Snapshot {
	snapshot := &checkredis.Snapshot{
		Fields:    make(map[string]string),
		Keyspaces: make(map[string]map[string]string),
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if isKeyspace(name) {
			snapshot.Keyspaces[name] = parsePairs(value)

			continue
		}
		snapshot.Fields[name] = value
	}

	return snapshot
}

// isKeyspace returns true for per-database section names like db0.
func isKeyspace(name string) bool {
	suffix, ok := strings.CutPrefix(name, "db")
	if !ok || suffix == "" {
		return false
	}
	for _, c := range suffix {
		if !unicode.IsDigit(c) {
			return false
		}
	}

	return true
}

// parsePairs splits "keys=871,expires=0,avg_ttl=0" into a map.
func parsePairs(value string) map[string]string {
	pairs := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		key, val, ok := strings.Cut(pair, "=")
		if ok {
			pairs[key] = val
		}
	}

	return pairs
}
