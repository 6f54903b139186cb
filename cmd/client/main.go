package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/muzaparoff/rest-api-exam/internal/adapter"
	"github.com/muzaparoff/rest-api-exam/internal/client"
	"github.com/muzaparoff/rest-api-exam/internal/config"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewPretty("client", config.DefaultLogLevel)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewPretty("client", cfg.LogLevel)

	api, err := adapter.NewHTTPUserAPIClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	app := client.NewApp(api, os.Stdout, log)

	// Config flags precede the subcommand; flag.Args holds what is left
	// after GetClientConfig parsed them.
	if err = app.Run(context.Background(), flag.Args()); err != nil {
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprint(os.Stderr, app.Usage())
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("command failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
