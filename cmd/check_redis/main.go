package main

import (
	"os"

	"github.com/consol-monitoring/check_redis/pkg/checkredis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// cobra already printed the error, exit unknown
		os.Exit(3)
	}
}
