package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/positivus/internal/config"
	"github.com/alexisbeaulieu97/positivus/internal/logger"
	"github.com/alexisbeaulieu97/positivus/internal/stories"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Settings config.Settings
	Logger   *logger.Logger
	Catalog  *stories.Catalog
}

func loadApp(cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	path, err := settingsPath(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "locating settings", err, "Check that the --config path exists.")
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, newCommandError(operation, "loading settings", err, "Fix the settings file shown above and try again.")
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}
	log = log.WithFields(map[string]any{"command": operation})
	if path != "" {
		log.WithFields(map[string]any{"path": path}).Debug("settings loaded")
	}

	catalog, err := stories.Default(log, settings)
	if err != nil {
		return nil, newCommandError(operation, "loading stories", err, "Fix the story file shown above and try again.")
	}

	return &AppContext{Settings: settings, Logger: log, Catalog: catalog}, nil
}

// settingsPath returns the explicit path, or the default file when it exists.
func settingsPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}

	if _, err := os.Stat(defaultConfigFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return defaultConfigFile, nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
