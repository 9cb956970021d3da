package redisinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// INFO replies use \r\n line endings and # section headers.
var infoReply = "# Server\r\n" +
	"redis_version:6.2.14\r\n" +
	"uptime_in_seconds:86400\r\n" +
	"\r\n" +
	"# Memory\r\n" +
	"used_memory:1048576\r\n" +
	"mem_fragmentation_ratio:1.25\r\n" +
	"\r\n" +
	"# Stats\r\n" +
	"keyspace_hits:80\r\n" +
	"keyspace_misses:20\r\n" +
	"\r\n" +
	"# Keyspace\r\n" +
	"db0:keys=871,expires=0,avg_ttl=0\r\n" +
	"db1:keys=129,expires=3,avg_ttl=100\r\n"

func TestParseInfo(t *testing.T) {
	snapshot := ParseInfo(infoReply)

	assert.Equalf(t, "6.2.14", snapshot.Fields["redis_version"], "text field")
	assert.Equalf(t, "1048576", snapshot.Fields["used_memory"], "numeric field kept raw")
	assert.NotContainsf(t, snapshot.Fields, "db0", "keyspaces are not flat fields")

	require.Containsf(t, snapshot.Keyspaces, "db0", "keyspace parsed")
	assert.Equalf(t, map[string]string{"keys": "871", "expires": "0", "avg_ttl": "0"},
		snapshot.Keyspaces["db0"], "keyspace pairs")
	assert.Equalf(t, int64(1000), snapshot.Resolve("total_keys"), "derived total resolves")
}

func TestParseInfoSkipsJunk(t *testing.T) {
	snapshot := ParseInfo("# Comment\r\nnot a field line\r\n\r\nrole:master\r\n")

	assert.Lenf(t, snapshot.Fields, 1, "only valid lines survive")
	assert.Equalf(t, "master", snapshot.Fields["role"], "field value")
}

func TestIsKeyspace(t *testing.T) {
	tests := []struct {
		name string
		res  bool
	}{
		{"db0", true},
		{"db15", true},
		{"db", false},
		{"dbsize", false},
		{"rdb_changes_since_last_save", false},
	}

	for _, tst := range tests {
		assert.Equalf(t, tst.res, isKeyspace(tst.name), "isKeyspace: %s", tst.name)
	}
}

func TestConnectionError(t *testing.T) {
	err := &ConnectionError{Host: "redis1", Port: 6379, Err: assert.AnError}
	assert.Containsf(t, err.Error(), "cannot connect to redis1:6379", "error carries host and port")
	assert.ErrorIsf(t, err, assert.AnError, "unwraps to the transport error")
}
