// Package main implements the tl CLI tool.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jfaure/tasklist/internal/config"
	"github.com/jfaure/tasklist/list"
	"github.com/jfaure/tasklist/liststore"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tl",
	Short:         "tl manages personal task lists",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

var (
	flagDir     string
	flagVerbose bool

	cfg    config.Config
	logger *log.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Storage directory for list files")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func setup() error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// storageDir resolves the list directory: flag, then $TL_DIR, then config,
// then the working directory.
func storageDir() string {
	if flagDir != "" {
		return flagDir
	}
	if env := os.Getenv("TL_DIR"); env != "" {
		return env
	}
	if cfg.Dir != "" {
		return cfg.Dir
	}
	return "."
}

func openStore() (*liststore.Store, error) {
	return liststore.Open(storageDir(), liststore.Options{Logger: logger})
}

func defaultPriority() list.Priority {
	if cfg.DefaultPriority != "" {
		if priority, err := list.ParsePriority(cfg.DefaultPriority); err == nil {
			return priority
		}
	}
	return list.PriorityLow
}
