package redisinfo

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchConnectionRefused(t *testing.T) {
	// grab a free port and close it again so the dial fails
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoErrorf(t, err, "listener created")
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoErrorf(t, listener.Close(), "listener closed")

	snapshot, err := Fetch(context.Background(), Options{
		Host:    "127.0.0.1",
		Port:    port,
		Timeout: time.Second,
	})
	require.Errorf(t, err, "fetch fails")
	assert.Nilf(t, snapshot, "no partial snapshot")

	var connErr *ConnectionError
	require.ErrorAsf(t, err, &connErr, "failure is a connection error")
	assert.Equalf(t, port, connErr.Port, "error carries the port")
}
