package redisinfo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/consol-monitoring/check_redis/pkg/checkredis"
)

const (
	// DefaultPort is the well-known redis port.
	DefaultPort = 6379

	defaultTimeout = 10 * time.Second
)

// Options configures the connection to the server under test.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// ConnectionError wraps any transport or auth failure while talking to
// the server. The caller reports it as UNKNOWN without producing a
// partial report.
type ConnectionError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s:%d\n%s", e.Host, e.Port, e.Err.Error())
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Fetch connects to the server, measures the ping round trip and
// returns the parsed INFO snapshot. The measured round trip is injected
// as the "latency" field in milliseconds.
func Fetch(ctx context.Context, opts Options) (*checkredis.Snapshot, error) {
	host := opts.Host
	if host == "" {
		host = "localhost"
	}
	port := opts.Port
	if port == 0 {
		port = DefaultPort
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:        fmt.Sprintf("%s:%d", host, port),
		Username:    opts.Username,
		Password:    opts.Password,
		DialTimeout: timeout,
		ReadTimeout: timeout,
		MaxRetries:  -1, // one snapshot per run, fail fast
	})
	defer client.Close()

	start := time.Now()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &ConnectionError{Host: host, Port: port, Err: err}
	}
	latency := time.Since(start)

	raw, err := client.Info(ctx).Result()
	if err != nil {
		return nil, &ConnectionError{Host: host, Port: port, Err: err}
	}

	snapshot := ParseInfo(raw)
	snapshot.Fields["latency"] = strconv.FormatFloat(float64(latency.Microseconds())/1000, 'f', 3, 64)

	return snapshot, nil
}
