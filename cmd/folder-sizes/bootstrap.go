package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/config"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/logging"
)

// initializeLogging prepares the application directories and the logging
// system. It runs as the root command's PersistentPreRunE so every
// subcommand gets working loggers.
func initializeLogging(_ *cobra.Command, _ []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return err
	}
	if err := config.EnsureDataDir(); err != nil {
		return err
	}
	if err := config.EnsureStateDir(); err != nil {
		return err
	}

	level := viper.GetString("logging.level")
	if getQuiet() {
		level = "error"
	}
	if getVerbose() {
		level = "debug"
	}

	logCfg := logging.Config{
		Level:      level,
		Path:       viper.GetString("logging.path"),
		Components: viper.GetStringMapString("logging.components"),
	}
	if getVerbose() {
		// --verbose overrides any per-component levels too.
		logCfg.Components = nil
	}

	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	return nil
}
