package checkredis

import (
	"os"
	"strings"

	"github.com/kdar/factorlog"
)

// LogFormat is the default layout for diagnostic log lines.
var LogFormat = `[%{Date} %{Time "15:04:05.000"}][%{Severity}][%{ShortFile}:%{Line}] %{Message}`

// log writes to stderr so the plugin report on stdout stays parsable.
var log = factorlog.New(os.Stderr, factorlog.NewStdFormatter(LogFormat))

func init() {
	SetLogLevel("error")
}

// SetLogLevel adjusts the diagnostic verbosity, one of off, error,
// info, debug or trace.
func SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "off":
		log.SetMinMaxSeverity(factorlog.StringToSeverity("PANIC"), factorlog.StringToSeverity("PANIC"))
	case "error", "info", "debug", "trace":
		log.SetMinMaxSeverity(factorlog.StringToSeverity(strings.ToUpper(level)), factorlog.StringToSeverity("PANIC"))
	case "":
	default:
		log.Errorf("unknown log level: %s", level)
	}
}
