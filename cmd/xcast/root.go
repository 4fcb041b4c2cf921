package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/xcast"
)

type app struct {
	verbose bool
	engine  *xcast.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "xcast",
		Short:         "xcast coerces command line values into go types",
		Long:          `xcast converts text, JSON and YAML values into typed go values the same way the xcast library does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.engine = xcast.New(xcast.WithLogger(newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log conversion failures to stderr")
	rootCmd.AddCommand(newCoerceCmd(a), newIsCmd(a), newJSONCmd(a), newYAMLCmd(a))
	return rootCmd
}

// newLogger writes text records to w, using "err" for the error key
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
