package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	// a nil slice makes cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		switch {
		case exitErr.msg != "" && exitErr.cause != nil:
			fmt.Fprintf(stderr, FmtErrorWithCause, exitErr.msg, exitErr.cause)
		case exitErr.msg != "":
			fmt.Fprintf(stderr, FmtError, exitErr.msg)
		}
		return exitErr.code
	}

	// cobra usage errors: unknown command, bad flag, wrong arg count
	fmt.Fprintf(stderr, FmtError, err)
	return ExitCodeUsageError
}

// exitError carries an exit code and an optional message out of a command
type exitError struct {
	code  int
	msg   string
	cause error
}

func (e *exitError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("exit %d", e.code)
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *exitError) Unwrap() error {
	return e.cause
}

func newExitError(code int, msg string, cause error) *exitError {
	return &exitError{code: code, msg: msg, cause: cause}
}

// silentExit ends a command with code and no message
func silentExit(code int) *exitError {
	return &exitError{code: code}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           CLIName,
		Short:         HelpRootShort,
		Long:          HelpRootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, FlagConfig, FlagConfigShort, "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, FlagVerbose, FlagVerboseShort, false, "log engine activity to stderr")

	root.AddCommand(
		a.formatCommand(),
		a.explainCommand(),
		a.checkCommand(),
		a.typesCommand(),
		a.versionCommand(),
	)
	return root
}
