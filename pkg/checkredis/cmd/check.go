package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consol-monitoring/check_redis/pkg/checkredis"
	"github.com/consol-monitoring/check_redis/pkg/redisinfo"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate checks against the server and print the report (default)",
		Long: `check fetches the INFO statistics once, resolves the requested checks,
classifies each one against its warning and critical limits and prints
the aggregated report. The exit code matches the printed status word:
0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN.

Examples:

# check everything with no thresholds set:
check_redis check --host redis1

# alert on memory usage and cache efficiency:
check_redis check -H redis1 -c used_memory,50000000,90000000 -c hit_ratio,0.5,0.3,d
`,
		Run: func(_ *cobra.Command, _ []string) {
			setupLogging()
			os.Exit(runCheck())
		},
	}

	checkCmd.Flags().StringArrayVarP(&flags.Include, "include", "i", nil, "evaluate only the given metrics, report them even when text valued (multiple)")
	checkCmd.Flags().StringArrayVarP(&flags.Exclude, "exclude", "e", nil, "drop the given metrics from the default check set (multiple)")
	checkCmd.Flags().StringArrayVarP(&flags.CheckConfigs, "check-config", "c", nil, "per check limits: key,warning,critical,direction,min,max with direction 'a' or 'd' (multiple)")
	checkCmd.Flags().StringVarP(&flags.ChecksFile, "checks-file", "", "", "yaml file with per check limit definitions")
	checkCmd.Flags().BoolVarP(&flags.ForceStrings, "force-strings", "", false, "report text valued metrics even without --include")
	checkCmd.Flags().StringVarP(&flags.Command, "command", "", "", "comma separated list of metrics to check, or 'all'")
	_ = checkCmd.Flags().MarkDeprecated("command", "use --include instead")
	checkCmd.Flags().BoolVarP(&flags.EnablePerfData, "enable-performance-data", "", false, "performance data is always printed")
	_ = checkCmd.Flags().MarkDeprecated("enable-performance-data", "performance data is always printed")
	checkCmd.Flags().SortFlags = false

	rootCmd.AddCommand(checkCmd)
}

func runCheck() int {
	snapshot, err := redisinfo.Fetch(context.Background(), fetchOptions())
	if err != nil {
		fmt.Println(err.Error())

		return int(checkredis.CheckExitUnknown)
	}

	include := flags.Include
	if flags.Command != "" && flags.Command != "all" {
		include = append(include, strings.Split(flags.Command, ",")...)
	}

	checks := checkredis.BuildCheckSet(snapshot, include, flags.Exclude, flags.ForceStrings)
	if flags.ChecksFile != "" {
		if err := checks.ApplyChecksFile(flags.ChecksFile); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			return int(checkredis.CheckExitUnknown)
		}
	}
	for _, spec := range flags.CheckConfigs {
		if err := checks.ApplyConfig(spec); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			return int(checkredis.CheckExitUnknown)
		}
	}

	snapshot.ResolveAll(checks)
	result := checkredis.Evaluate(checks)
	fmt.Println(string(result.BuildPluginOutput()))

	return int(result.State)
}
