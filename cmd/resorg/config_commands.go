package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"resorg/internal/config"
	"resorg/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
		Args:  cobra.NoArgs,
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file and show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configSeen {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			for _, line := range configStatusLines(cfg, colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func configStatusLines(cfg *config.Config, colorize bool) []string {
	lines := []string{
		renderStatusLine("On existing", statusInfo, cfg.Placement.OnExisting, colorize),
		renderStatusLine("Summary format", statusInfo, cfg.Summary.Format, colorize),
		renderStatusLine("Logging", statusInfo, cfg.Logging.Format+", "+cfg.Logging.Level, colorize),
	}
	if cfg.Placement.MinFreeBytes > 0 {
		lines = append(lines, renderStatusLine("Free space margin", statusInfo, humanize.IBytes(cfg.Placement.MinFreeBytes), colorize))
	}
	if logFile := cfg.LogFile(); logFile != "" {
		lines = append(lines, directoryStatusLine("Log directory", filepath.Dir(logFile), colorize))
	}
	if cfg.Placement.LockDestination {
		lines = append(lines, directoryStatusLine("Lock directory", cfg.Paths.LockDir, colorize))
	}
	return lines
}

// directoryStatusLine reports a missing directory as a warning since it is
// created on first use.
func directoryStatusLine(label, dir string, colorize bool) string {
	result := preflight.CheckDirectoryAccess(label, dir)
	switch {
	case result.Passed:
		return renderStatusLine(label, statusOK, result.Detail, colorize)
	case os.IsNotExist(statErr(dir)):
		return renderStatusLine(label, statusWarn, dir+" (created on first use)", colorize)
	default:
		return renderStatusLine(label, statusError, result.Detail, colorize)
	}
}

func statErr(path string) error {
	_, err := os.Stat(path)
	return err
}
