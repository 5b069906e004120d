// Command chunkpos inspects the line structure of text files loaded as chunks
// and prints the positions reached when composing them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:           "chunkpos",
		Short:         "Row/column positions over chunked text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fragment-size") {
				loaded.FragmentSize = cfg.FragmentSize
			}
			cfg = loaded
			setupTracing(cmd.ErrOrStderr(), tracing.TraceLevelFromString(cfg.TraceLevel))
			return nil
		},
	}
	cmd.PersistentFlags().Int64Var(&cfg.FragmentSize, "fragment-size", 0, "bytes per chunk (0 = choose by file size)")

	cmd.AddCommand(linesCmd(&cfg))
	cmd.AddCommand(positionsCmd(&cfg))
	cmd.AddCommand(locateCmd(&cfg))
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chunkpos version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}

// setupTracing routes the core tracer and every selected library tracer to
// a single Go logger writing to w.
func setupTracing(w io.Writer, level tracing.TraceLevel) {
	tracer := gologadapter.New()
	tracer.SetOutput(w)
	tracer.SetTraceLevel(level)
	gtrace.CoreTracer = tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}
