// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/pitlane/pkg/adapter/config"
	"github.com/momeni/pitlane/pkg/adapter/db/postgres/migration"
	"github.com/momeni/pitlane/pkg/adapter/restful/gin/routes"
	"github.com/momeni/pitlane/pkg/core/log"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
Each service keeps its own schema version, so the service name must
be given to each action.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate {car|component|driver|race}",
	Short: "Apply pending migrations of one service database schema",
	Long: `Apply pending migrations of one service database schema.
Migrations are embedded in the binary. Running migrate on an up to
date database is a no-op.`,
	ValidArgs: routes.Services,
	Args:      serviceArg,
	RunE: func(_ *cobra.Command, args []string) error {
		c, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
		}
		return migrateUp(context.Background(), c, args[0])
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback {car|component|driver|race}",
	Short: "Revert all migrations of one service database schema",
	Long: `Revert all migrations of one service database schema.
All tables of the service are dropped along with their rows.`,
	ValidArgs: routes.Services,
	Args:      serviceArg,
	RunE: func(_ *cobra.Command, args []string) error {
		u, err := databaseURL()
		if err != nil {
			return err
		}
		if err = migration.Down(u, args[0]); err != nil {
			return err
		}
		log.Info(context.Background(), "database schema is rolled back",
			slog.String("service", args[0]),
		)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:       "version {car|component|driver|race}",
	Short:     "Print the schema version of one service database",
	ValidArgs: routes.Services,
	Args:      serviceArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := databaseURL()
		if err != nil {
			return err
		}
		v, dirty, err := migration.Version(u, args[0])
		if err != nil {
			return err
		}
		if dirty {
			cmd.Printf("%d (dirty)\n", v)
			return nil
		}
		cmd.Printf("%d\n", v)
		return nil
	},
}

func databaseURL() (string, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return "", fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	u, err := c.Database.URL()
	if err != nil {
		return "", fmt.Errorf("finding database URL: %w", err)
	}
	return u, nil
}

func init() {
	dbCmd.AddCommand(migrateCmd, rollbackCmd, versionCmd)
	rootCmd.AddCommand(dbCmd)
}
