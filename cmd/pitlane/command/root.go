// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the pitlane
// services. Commands are organized using the cobra library.
// The "serve" sub-command starts the web server of one service while
// the "db" sub-command can be used for the database migration actions.
//
//	./pitlane [-c /path/of/config.yaml] serve {car|component|driver|race} [--migrate]
//	./pitlane [-c /path/of/config.yaml] db migrate {car|component|driver|race}
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pitlane",
	Short: "Car, component, driver, and race REST services",
	Long: `Car, component, driver, and race REST services.
Each service owns one kind of entity in its own database table and
refers to the entities of other services by their IDs. The car and
race services validate those references by calling the owning
services and the race service can also resolve them in order to
present races along with their cars, drivers, and components.
One service is served by each process, as chosen by the serve
sub-command.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(
			os.Stdout, &slog.HandlerOptions{Level: level},
		)))
	},
}

// serviceArg accepts exactly one service name argument.
var serviceArg = cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code is
// non-zero if the command fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log debug messages",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
