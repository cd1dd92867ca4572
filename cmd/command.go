// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmd provides the bucketc CLI. The commands are a thin
// orchestration shell around the compiler: they own file loading and
// output rendering, never the validation semantics.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/objectplane/bucketc/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "bucketc",
	Short: "bucketc - a bucket-policy compiler",
	Long: `bucketc compiles a declarative bucket descriptor into a validated,
normalized configuration bundle, or reports every violation found in one
pass. It performs no network calls; handing the bundle to a control plane
is the caller's job.`,
	PersistentPreRun: initializeLogging,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().String("log_level", "info", "Log level (trace, debug, info, warn, error)")
}

func initializeLogging(cmd *cobra.Command, args []string) {
	raw, _ := cmd.Flags().GetString("log_level")
	level, err := zerolog.ParseLevel(raw)
	if err != nil || level == zerolog.NoLevel {
		logger.Warn().Str("log_level", raw).Msg("invalid log level, defaulting to info")
		level = zerolog.InfoLevel
	}
	logger.SetLevel(level)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
