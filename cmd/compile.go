// Copyright 2026 ObjectPlane Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/objectplane/bucketc/pkg/compiler"
	"github.com/objectplane/bucketc/pkg/descriptor"
	"github.com/objectplane/bucketc/pkg/logger"
	"github.com/objectplane/bucketc/pkg/violation"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a bucket descriptor into a configuration bundle",
	Long: `Compile reads a bucket descriptor from a YAML, JSON, or TOML file,
runs the full validation and compilation pipeline, and prints the resulting
bundle. On rejection every violation is printed and the exit code is nonzero.`,
	RunE: runCompile,
	Args: cobra.NoArgs,
}

func init() {
	compileCmd.Flags().StringP("file", "f", "", "Path to the bucket descriptor file (required)")
	compileCmd.Flags().String("output", "json", "Output format for the bundle (json, summary)")
	compileCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	output, _ := cmd.Flags().GetString("output")

	desc, err := loadDescriptor(path)
	if err != nil {
		return fmt.Errorf("failed to load descriptor %s: %w", path, err)
	}

	res := compiler.Compile(desc)
	printWarnings(cmd, res.Violations)

	if res.Phase == compiler.PhaseRejected {
		for _, v := range res.Violations.Items() {
			if v.Severity == violation.SeverityError {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", v)
			}
		}
		return fmt.Errorf("descriptor rejected with %d violation(s)", res.Violations.Len())
	}

	logger.Info().
		Str("bucket", res.Bundle.Name).
		Str("bundle_id", res.Bundle.ID.String()).
		Msg("descriptor compiled")

	switch output {
	case "json":
		return printJSON(cmd, res.Bundle)
	case "summary":
		printSummary(cmd, res.Bundle)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected json or summary)", output)
	}
}

// loadDescriptor reads one descriptor file. Viper infers the format from the
// file extension; the descriptor types carry mapstructure tags matching the
// on-disk field names.
func loadDescriptor(path string) (*descriptor.Bucket, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var desc descriptor.Bucket
	if err := v.Unmarshal(&desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

func printWarnings(cmd *cobra.Command, list *violation.List) {
	for _, v := range list.Items() {
		if v.Severity == violation.SeverityWarning {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", v)
		}
	}
}

func printJSON(cmd *cobra.Command, b *compiler.Bundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func printSummary(cmd *cobra.Command, b *compiler.Bundle) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Bucket:        %s (owner %s)\n", b.Name, orDash(b.OwnerAccountID))
	fmt.Fprintf(out, "Bundle ID:     %s\n", b.ID)
	fmt.Fprintf(out, "Versioning:    %t\n", b.VersioningEnabled)
	fmt.Fprintf(out, "Ownership:     %s\n", b.ObjectOwnership)
	if b.Encryption != nil {
		fmt.Fprintf(out, "Encryption:    %s\n", b.Encryption.Algorithm)
	}
	if b.ObjectLock != nil {
		fmt.Fprintf(out, "Object lock:   enabled\n")
	}
	fmt.Fprintf(out, "Lifecycle:     %d rule(s)\n", len(b.Lifecycle))
	for _, lc := range b.Lifecycle {
		if lc.ExpirationDays > 0 {
			fmt.Fprintf(out, "  %s: expires %s day(s) after creation\n",
				lc.Name, humanize.Comma(lc.ExpirationDays))
		}
	}
	fmt.Fprintf(out, "Replication:   %d rule(s)\n", len(b.Replication))
	fmt.Fprintf(out, "Notifications: %d destination(s)\n", countDestinations(b))
	fmt.Fprintf(out, "Inventory:     %d rule(s)\n", len(b.Inventory))
	fmt.Fprintf(out, "Tiering:       %d rule(s)\n", len(b.Tiering))
}

func countDestinations(b *compiler.Bundle) int {
	n := len(b.Notifications.Functions)
	if b.Notifications.Queue != nil {
		n++
	}
	if b.Notifications.Topic != nil {
		n++
	}
	return n
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
