package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resorg/internal/config"
	"resorg/internal/logging"
	"resorg/internal/placement"
	"resorg/internal/summary"
)

type organizeFlags struct {
	move           bool
	show           bool
	report         bool
	noClobber      bool
	allowEmptyName bool
	verify         bool
	dryRun         bool
	keepGoing      bool
	lock           bool
	showFormat     string
	verbose        bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags organizeFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "resorg [flags] DEST FILE [FILE...]",
		Short: "Sort reservoir storage data files by reservoir and year",
		Long: "Copy (or move) each reservoir data FILE to DEST/<reservoir>/<reservoir>_<year>.txt.\n" +
			"The reservoir name comes from the first header line (after '#') and the year\n" +
			"from the MM/YYYY date on the third line.",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, &flags, args[0], args[1:])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	f := rootCmd.Flags()
	f.BoolVarP(&flags.move, "move", "m", false, "Move files instead of copying them")
	f.BoolVarP(&flags.show, "show", "s", false, "List every .txt file under DEST after processing")
	f.BoolVar(&flags.report, "report", false, "Print a table of the files placed in this run")
	f.BoolVar(&flags.noClobber, "no-clobber", false, "Fail instead of overwriting an existing target file")
	f.BoolVar(&flags.allowEmptyName, "allow-empty-name", false, "Accept headers whose reservoir name is blank")
	f.BoolVar(&flags.verify, "verify", false, "Verify copies with SHA-256")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Parse files and report targets without writing anything")
	f.BoolVar(&flags.keepGoing, "keep-going", false, "Continue past per-file failures and report them at the end")
	f.BoolVar(&flags.lock, "lock", false, "Hold an advisory lock on DEST for the duration of the run")
	f.StringVar(&flags.showFormat, "show-format", "", "Listing format for --show: plain or table")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// applyOverrides folds explicitly set flags into cfg and revalidates it.
func (f *organizeFlags) applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("no-clobber") && f.noClobber {
		cfg.Placement.OnExisting = config.OnExistingRefuse
	}
	if changed("allow-empty-name") {
		cfg.Placement.AllowEmptyName = f.allowEmptyName
	}
	if changed("verify") {
		cfg.Placement.VerifyCopy = f.verify
	}
	if changed("keep-going") {
		cfg.Placement.KeepGoing = f.keepGoing
	}
	if changed("lock") {
		cfg.Placement.LockDestination = f.lock
	}
	if changed("show-format") {
		cfg.Summary.Format = strings.ToLower(strings.TrimSpace(f.showFormat))
	}
	if changed("verbose") && f.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg.Validate()
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, flags *organizeFlags, dest string, files []string) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *base
	if err := flags.applyOverrides(cmd, &cfg); err != nil {
		return err
	}

	logger, err := newRunLogger(&cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts := placement.OptionsFromConfig(&cfg)
	opts.Move = flags.move
	opts.DryRun = flags.dryRun
	if cfg.Placement.LockDestination {
		key, err := placement.LockKey(dest)
		if err != nil {
			return err
		}
		opts.LockPath = cfg.LockPath(key)
	}

	logger.Debug("starting run",
		logging.String("destination", dest),
		logging.Int("files", len(files)),
		logging.Bool("move", opts.Move),
		logging.Bool("dry_run", opts.DryRun),
		logging.String("on_existing", opts.OnExisting),
	)

	started := time.Now()
	engine := placement.NewEngine(opts, logger)
	results, runErr := engine.Run(cmd.Context(), dest, files)

	out := cmd.OutOrStdout()
	if flags.report {
		writeReport(out, results, runErr, shouldColorize(out))
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("run complete",
		logging.Int("files", len(results)),
		logging.Duration("elapsed", time.Since(started).Round(time.Millisecond)),
	)

	if flags.show {
		return writeListing(out, dest, cfg.Summary.Format)
	}
	return nil
}

func writeListing(out io.Writer, dest, format string) error {
	if _, err := os.Stat(dest); errors.Is(err, fs.ErrNotExist) {
		// Only reachable after a dry run.
		return nil
	}
	if format == config.SummaryTable {
		entries, err := summary.List(dest)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderListingTable(entries))
		return nil
	}
	return summary.Walk(dest, func(path string) error {
		_, err := fmt.Fprintln(out, path)
		return err
	})
}
