package main

import (
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
)

var log logger.Logger

// rootCmd collects the corpus drivers. Each subcommand loads keys into
// a container and reports what that cost, so the containers can be
// compared on real data.
var rootCmd = &cobra.Command{
	Use:   "radixt",
	Short: "Drivers exercising the radix containers on line corpora",
}

func main() {
	level := os.Getenv("RADIXT_LOGLEVEL")
	if level == "" {
		level = "INFO"
	}
	logger.New(level)
	defer logger.OnExit()
	log = logger.Sugar.WithServiceName("radixt")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
