package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/univt/univt/internal/scenario"
)

// Version of the univt tool.
const Version = "0.1.0"

type options struct {
	Verbose    bool
	Quiet      bool
	Readers    int
	Iterations int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	logFlags := pflag.NewFlagSet("", 0)
	logFlags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every check as it passes")
	logFlags.BoolVarP(&opts.Quiet, "quiet", "q", false, "don't print anything on success")

	checkFlags := pflag.NewFlagSet("", 0)
	checkFlags.IntVar(&opts.Readers, "readers", 4, "goroutines reading one shared value concurrently, 0 to skip")
	checkFlags.IntVar(&opts.Iterations, "iterations", 1000, "unembeds done by each concurrent reader")

	run := func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), out, opts)
	}

	cmdRun := &cobra.Command{
		Use:   "run",
		Short: "check the universal value container",
		Long:  "run embeds sample values, checks which codecs can recover them and reads one shared value from concurrent goroutines.",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	cmdRun.Flags().AddFlagSet(checkFlags)

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print univt version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "univt %s\n", Version)
		},
	}

	rootCmd := &cobra.Command{
		Use:           "univt",
		Short:         "univt checks the univ universal value container",
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().AddFlagSet(checkFlags)
	rootCmd.PersistentFlags().AddFlagSet(logFlags)
	rootCmd.AddCommand(cmdRun, cmdVersion)
	return rootCmd
}

func runChecks(ctx context.Context, out io.Writer, opts *options) error {
	if opts.Readers < 0 || opts.Iterations < 0 {
		return fmt.Errorf("--readers and --iterations must not be negative, got %d and %d", opts.Readers, opts.Iterations)
	}

	logger := log.StandardLogger()
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := scenario.Run(ctx, scenario.Options{
		Readers:    opts.Readers,
		Iterations: opts.Iterations,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("univt: checks failed: %w", err)
	}
	if !opts.Quiet {
		fmt.Fprintln(out, "univt: all checks passed")
	}
	return nil
}
