package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bs3/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bs3",
		Short:         "bs3 renders Bootstrap 3 pages from YAML or JSON page documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logger.FormatConsole, "Log format: console or json")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newWidgetsCmd())
	cmd.AddCommand(newScaffoldCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes to the command's stderr so stdout stays clean for
// rendered markup.
func (f *rootFlags) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Format: f.logFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "configuring the logger", err, "Use --log-format console or --log-format json.")
	}
	return log, nil
}

// pageLogger adapts the CLI logger to page.Logger.
type pageLogger struct {
	log *logger.Logger
}

func (p pageLogger) Debug(msg string, fields map[string]any) {
	p.log.WithFields(fields).Debug(msg)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	msg := fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	if e.suggestion != "" {
		msg += "\n\nSuggestion: " + e.suggestion
	}
	return msg
}

func (e *commandError) Unwrap() error {
	return e.cause
}
