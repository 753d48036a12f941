// arcprof times commands by name and prints profiler summaries.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colorfulnotion/arcutil/arcerrors"
	"github.com/colorfulnotion/arcutil/config"
	"github.com/colorfulnotion/arcutil/log"
	"github.com/colorfulnotion/arcutil/profile"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	profile.Start("arcprof")
	err := newRootCmd().Execute()
	profile.Record("arcprof")
	profile.SetOutput(os.Stderr)
	profile.PrintSingleSummary("arcprof")

	if err != nil {
		log.Error(log.CLIMonitoring, "arcprof failed", "code", arcerrors.GetErrorCodeWithName(arcerrors.Find(err)))
		fmt.Fprintf(os.Stderr, "arcprof: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel     string
		debugModules string
	)

	var rootCmd = &cobra.Command{
		Use:   "arcprof",
		Short: "Time commands by name and summarise the samples",
		Long: `arcprof runs commands repeatedly, records each run's wall-clock time under
a name and prints per-name summaries. Runs can also be appended to a
timestamped log file and plotted to an HTML chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.InitLoggerTo(cmd.ErrOrStderr(), logLevel); err != nil {
				return err
			}
			log.EnableModules(debugModules)
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&debugModules, "debug", "", "Debug modules to enable (timing,filelog,config,arcprof)")

	rootCmd.AddCommand(newTimeCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "arcprof %s (commit %s, built %s, profiling %v)\n", Version, Commit, BuildTime, profile.Enabled)
		},
	})
	return rootCmd
}

func newTimeCmd() *cobra.Command {
	var (
		name      string
		runs      int
		warmup    int
		logPath   string
		chartPath string
		tree      bool
		verbose   bool
	)

	var timeCmd = &cobra.Command{
		Use:   "time [flags] [--] command [args...]",
		Short: "Time one command",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return arcerrors.ErrNoCommand
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs < 1 {
				return fmt.Errorf("%w: --runs must be positive", arcerrors.ErrConfigInvalid)
			}
			if name == "" {
				name = filepath.Base(args[0])
			}
			c := config.Command{Name: name, Args: args}

			r, err := newRunner(config.Prealloc{Names: 1, Events: runs}, logPath, verbose)
			if err != nil {
				return err
			}
			defer r.Close()

			log.Info(log.CLIMonitoring, "timing command", "name", name, "runs", runs, "warmup", warmup)
			if err := r.timeCommand(cmd.Context(), c, runs, warmup); err != nil {
				return err
			}
			return r.report(cmd.OutOrStdout(), []string{name}, tree, chartPath)
		},
	}
	timeCmd.Flags().SetInterspersed(false)
	timeCmd.Flags().StringVar(&name, "name", "", "Name to record samples under (default: command base name)")
	timeCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "Number of timed runs")
	timeCmd.Flags().IntVar(&warmup, "warmup", 0, "Untimed runs before timing")
	timeCmd.Flags().StringVar(&logPath, "log", "", "Append each run to this log file (truncated first)")
	timeCmd.Flags().StringVar(&chartPath, "chart", "", "Write an HTML chart of the samples to this file")
	timeCmd.Flags().BoolVar(&tree, "tree", false, "Also print the summary as a tree")
	timeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Pass command output through to stderr")
	return timeCmd
}

func newRunCmd() *cobra.Command {
	var verbose bool

	var runCmd = &cobra.Command{
		Use:   "run suite.yaml",
		Short: "Time every command of a YAML suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-level") {
				if err := log.InitLoggerTo(cmd.ErrOrStderr(), suite.LogLevel); err != nil {
					return err
				}
			}

			r, err := newRunner(suite.Prealloc, suite.LogFile, verbose)
			if err != nil {
				return err
			}
			defer r.Close()

			if err := r.note("suite %s: %d commands x %d runs", args[0], len(suite.Commands), suite.Runs); err != nil {
				return err
			}
			for _, c := range suite.Commands {
				log.Info(log.CLIMonitoring, "timing command", "name", c.Name, "runs", suite.Runs)
				if err := r.timeCommand(cmd.Context(), c, suite.Runs, suite.Warmup); err != nil {
					return err
				}
			}
			return r.report(cmd.OutOrStdout(), suite.Names(), suite.Tree, suite.Chart)
		},
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Pass command output through to stderr")
	return runCmd
}
