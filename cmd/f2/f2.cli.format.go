package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// formatConfig holds parsed format command flags
type formatConfig struct {
	typed       bool
	kwargs      string
	stdin       bool
	offsetRight int
	noNewline   bool
}

func (a *app) formatCommand() *cobra.Command {
	cfg := &formatConfig{}
	cmd := &cobra.Command{
		Use:     CmdNameFormat + " PATTERN [ARG...]",
		Short:   HelpFormatShort,
		Example: HelpFormatExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFormat(cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.typed, FlagTyped, FlagTypedShort, false, "decode each argument as a YAML value")
	flags.StringVarP(&cfg.kwargs, FlagKwargs, FlagKwargsShort, "", "YAML or JSON object appended as the keyword argument")
	flags.BoolVar(&cfg.stdin, FlagStdin, false, "read the pattern from stdin; all positional arguments are values")
	flags.IntVar(&cfg.offsetRight, FlagOffsetRight, 0, "number of trailing arguments to ignore")
	flags.BoolVarP(&cfg.noNewline, FlagNoNewline, FlagNoNewlineShort, false, "do not print a trailing newline")
	return cmd
}

func (a *app) runFormat(cfg *formatConfig, rawArgs []string) error {
	var pattern string
	if cfg.stdin {
		p, err := a.readPattern()
		if err != nil {
			return err
		}
		pattern = p
	} else {
		if len(rawArgs) == 0 {
			return newExitError(ExitCodeUsageError, ErrMsgMissingPattern, nil)
		}
		pattern, rawArgs = rawArgs[0], rawArgs[1:]
	}

	args, err := parseArgs(rawArgs, cfg.typed)
	if err != nil {
		return err
	}
	if cfg.kwargs != "" {
		kwargs, err := parseKwargs(cfg.kwargs)
		if err != nil {
			return err
		}
		args = append(args, kwargs)
	}

	engine, err := a.engine()
	if err != nil {
		return err
	}

	out := engine.ApplyArgsTo(pattern, args, 0, cfg.offsetRight)
	if cfg.noNewline {
		fmt.Fprint(a.stdout, out)
	} else {
		fmt.Fprintln(a.stdout, out)
	}
	return nil
}
