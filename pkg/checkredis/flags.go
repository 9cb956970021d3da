package checkredis

// VERSION contains the current program version.
const VERSION = "0.2.1"

// Flags contains the command line options shared by all subcommands.
type Flags struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  int // seconds

	LogLevel string
	Verbose  int
	Quiet    bool

	Include      []string
	Exclude      []string
	CheckConfigs []string
	ChecksFile   string
	ForceStrings bool

	// deprecated options kept for compatibility
	Command        string
	EnablePerfData bool
}
