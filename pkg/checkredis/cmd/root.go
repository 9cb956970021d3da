package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/consol-monitoring/check_redis/pkg/checkredis"
	"github.com/consol-monitoring/check_redis/pkg/redisinfo"
)

var rootCmd = &cobra.Command{
	Use:   "check_redis [global flags] [command]",
	Short: "Monitoring plugin to check a redis server.",
	Long: `check_redis connects to a redis instance, evaluates the INFO statistics
against warning and critical thresholds and prints a monitoring plugin
compatible report, one status line plus performance data.`,
	Version: checkredis.VERSION,
	Run: func(_ *cobra.Command, _ []string) {
		// should never reach this point, a bare invocation runs "check"
		fmt.Fprintln(os.Stderr, "check_redis called without a command, see --help for usage.")
		os.Exit(int(checkredis.CheckExitUnknown))
	},
}

var flags = &checkredis.Flags{}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.Host, "host", "H", "", "redis host name or address (required)")
	_ = rootCmd.MarkPersistentFlagRequired("host")
	rootCmd.PersistentFlags().IntVarP(&flags.Port, "port", "p", redisinfo.DefaultPort, "redis tcp port")
	rootCmd.PersistentFlags().StringVarP(&flags.Username, "username", "", "", "redis acl user name")
	rootCmd.PersistentFlags().StringVarP(&flags.Password, "password", "", "", "redis auth password")
	rootCmd.PersistentFlags().IntVarP(&flags.Timeout, "timeout", "t", 10, "connect/read timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "set loglevel to error")
	rootCmd.PersistentFlags().CountVarP(&flags.Verbose, "verbose", "v", "increase loglevel, -v means debug, -vv means trace")
	rootCmd.PersistentFlags().StringVarP(&flags.LogLevel, "loglevel", "", "error", "set loglevel to one of: off, error, info, debug, trace")

	rootCmd.DisableAutoGenTag = true
	rootCmd.DisableSuggestions = true
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.Flags().SortFlags = false
}

// Execute runs the requested subcommand. A bare invocation without any
// known subcommand defaults to "check".
func Execute() error {
	maybeInjectRootAlias(rootCmd, "check")

	return rootCmd.Execute()
}

func maybeInjectRootAlias(rootCmd *cobra.Command, inject string) {
	nonRootAliases := nonRootSubCmds(rootCmd)

	if len(os.Args) > 1 {
		for _, v := range nonRootAliases {
			if os.Args[1] == v {
				return
			}
		}
	}
	os.Args = append([]string{os.Args[0], inject}, os.Args[1:]...)
}

func nonRootSubCmds(rootCmd *cobra.Command) []string {
	res := []string{"help", "completion", "-h", "--help", "-V", "--version"}
	for _, c := range rootCmd.Commands() {
		res = append(res, c.Name())
		res = append(res, c.Aliases...)
	}

	return res
}

// setupLogging applies the verbosity flags before a command runs.
func setupLogging() {
	level := flags.LogLevel
	switch {
	case flags.Quiet:
		level = "error"
	case flags.Verbose == 1:
		level = "debug"
	case flags.Verbose >= 2:
		level = "trace"
	}
	checkredis.SetLogLevel(level)
}

func fetchOptions() redisinfo.Options {
	return redisinfo.Options{
		Host:     flags.Host,
		Port:     flags.Port,
		Username: flags.Username,
		Password: flags.Password,
		Timeout:  time.Duration(flags.Timeout) * time.Second,
	}
}
