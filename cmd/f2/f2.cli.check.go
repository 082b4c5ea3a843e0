package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) checkCommand() *cobra.Command {
	var (
		key string
		pos int
	)
	cmd := &cobra.Command{
		Use:   CmdNameCheck + " PATTERN",
		Short: HelpCheckShort,
		Long:  HelpCheckLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keySet := cmd.Flags().Changed(FlagKey)
			posSet := cmd.Flags().Changed(FlagPos)
			if keySet && posSet {
				return newExitError(ExitCodeUsageError, ErrMsgCheckConflict, nil)
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}

			var found bool
			switch {
			case keySet:
				found = engine.HasKeySub(args[0], key)
			case posSet:
				found = engine.HasPosSub(args[0], pos)
			default:
				found = engine.HasSubs(args[0])
			}

			fmt.Fprintln(a.stdout, found)
			if !found {
				return silentExit(ExitCodeValidationError)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&key, FlagKey, "", "keyword path to look for, e.g. user.name")
	cmd.Flags().IntVar(&pos, FlagPos, 0, "1-based argument position to look for")
	return cmd
}
