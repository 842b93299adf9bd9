// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys; flags, QLATTICE_* variables and the config file share them.
const (
	keyLogLevel      = "log-level"
	keyRules         = "rules"
	keyMaxPathLength = "max-path-length"
	keyLowercase     = "lowercase"
)

// app carries state shared by the subcommands of one root command.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *slog.Logger
}

var longRootDescription = `qlattice builds term lattices from queries, enumerates their sub-paths
and expands queries with synonym, delete and boost rules.

Settings come from flags, QLATTICE_* environment variables and an optional
YAML config file, in that order of precedence.`

// newRootCmd assembles the command tree with a fresh configuration.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}

	root := &cobra.Command{
		Use:           "qlattice",
		Short:         "Query lattice traversal and rewriting",
		Long:          longRootDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().String(keyLogLevel, "info", "log level: debug, info, warn, error")

	root.AddCommand(a.newWalkCmd(), a.newExpandCmd())

	return root
}

// initConfig binds the executing command's flags, reads the config file and
// environment, and installs the logger.
func (a *app) initConfig(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	a.v.SetEnvPrefix("QLATTICE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded",
		slog.String("config", a.v.ConfigFileUsed()),
		slog.String("command", cmd.Name()))

	return nil
}
