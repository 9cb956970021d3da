package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consol-monitoring/check_redis/pkg/checkredis"
	"github.com/consol-monitoring/check_redis/pkg/redisinfo"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every available metric name",
		Long: `list prints every metric the server currently exposes, one per line
and sorted, including the derived metrics hit_ratio, total_keys and
total_keys_<db>. No thresholds are evaluated.`,
		Run: func(_ *cobra.Command, _ []string) {
			setupLogging()
			os.Exit(runList())
		},
	}

	rootCmd.AddCommand(listCmd)
}

func runList() int {
	snapshot, err := redisinfo.Fetch(context.Background(), fetchOptions())
	if err != nil {
		fmt.Println(err.Error())

		return int(checkredis.CheckExitUnknown)
	}

	for _, name := range snapshot.MetricNames() {
		fmt.Println(name)
	}

	return int(checkredis.CheckExitOK)
}
